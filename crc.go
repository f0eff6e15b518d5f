package edc

import "strings"

// CRCResult is the outcome of a cyclic redundancy check encode.
type CRCResult struct {
	Data      string         `json:"data" yaml:"data"`
	Divisor   string         `json:"divisor" yaml:"divisor"`
	Dividend  string         `json:"dividend" yaml:"dividend"`
	Quotient  string         `json:"quotient" yaml:"quotient"`
	Remainder string         `json:"remainder" yaml:"remainder"`
	Codeword  string         `json:"codeword" yaml:"codeword"`
	Steps     []DivisionStep `json:"steps" yaml:"steps"`
}

func (r *CRCResult) Trace() []Step { return toSteps(r.Steps) }

// CRCVerifyResult is the outcome of dividing a received codeword.
type CRCVerifyResult struct {
	Codeword  string         `json:"codeword" yaml:"codeword"`
	Divisor   string         `json:"divisor" yaml:"divisor"`
	Quotient  string         `json:"quotient" yaml:"quotient"`
	Remainder string         `json:"remainder" yaml:"remainder"`
	IsValid   bool           `json:"is_valid" yaml:"is_valid"`
	Steps     []DivisionStep `json:"steps" yaml:"steps"`
}

func (r *CRCVerifyResult) Trace() []Step { return toSteps(r.Steps) }
func (r *CRCVerifyResult) Valid() bool { return r.IsValid }

// EncodeCRC appends the CRC remainder of data under divisor. Empty data
// yields an all-zero remainder.
func EncodeCRC(data, divisor string) (*CRCResult, error) {
	dv, err := parseGenerator(divisor)
	if err != nil {
		return nil, err
	}
	d, err := ParseBits("data", data)
	if err != nil {
		return nil, err
	}

	padded := make(Bits, 0, len(d)+len(dv)-1)
	padded = append(padded, d...)
	padded = append(padded, Zeros(len(dv)-1)...)

	div := divide(padded, dv)
	return &CRCResult{
		Data:      data,
		Divisor:   divisor,
		Dividend:  div.Dividend,
		Quotient:  div.Quotient,
		Remainder: div.Remainder,
		Codeword:  data + div.Remainder,
		Steps:     div.Steps,
	}, nil
}

// VerifyCRC divides codeword by divisor without re-padding. The codeword is
// accepted when the remainder is all zeros.
func VerifyCRC(codeword, divisor string) (*CRCVerifyResult, error) {
	dv, err := parseGenerator(divisor)
	if err != nil {
		return nil, err
	}
	cw, err := parseNonEmpty("codeword", codeword)
	if err != nil {
		return nil, err
	}

	div := divide(cw, dv)
	return &CRCVerifyResult{
		Codeword:  codeword,
		Divisor:   divisor,
		Quotient:  div.Quotient,
		Remainder: div.Remainder,
		IsValid:   strings.IndexByte(div.Remainder, '1') < 0,
		Steps:     div.Steps,
	}, nil
}

// parseGenerator validates a CRC divisor: binary, at least degree 1, leading one.
func parseGenerator(divisor string) (Bits, error) {
	dv, err := parseNonEmpty("divisor", divisor)
	if err != nil {
		return nil, err
	}
	if dv[0] != 1 {
		return nil, invalid("divisor", divisor, ErrDivisorLeadingZero)
	}
	if len(dv) < 2 {
		return nil, invalid("divisor", divisor, ErrDivisorTooShort)
	}
	return dv, nil
}
