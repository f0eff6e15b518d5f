package edc

import "fmt"

// DivisionStep records one iteration of modulo-2 long division.
type DivisionStep struct {
	Register    string `json:"current_dividend" yaml:"current_dividend"`
	Divisor     string `json:"divisor" yaml:"divisor"`
	QuotientBit string `json:"quotient_bit" yaml:"quotient_bit"`
	XOR         string `json:"xor" yaml:"xor"`
	Next        string `json:"next" yaml:"next"`
}

func (s DivisionStep) Describe() string {
	return fmt.Sprintf("%s XOR %s = %s, quotient bit %s, next %s",
		s.Register, s.Divisor, s.XOR, s.QuotientBit, s.Next)
}

// DivisionResult holds the quotient, remainder and trace of a division.
type DivisionResult struct {
	Dividend  string         `json:"dividend" yaml:"dividend"`
	Divisor   string         `json:"divisor" yaml:"divisor"`
	Quotient  string         `json:"quotient" yaml:"quotient"`
	Remainder string         `json:"remainder" yaml:"remainder"`
	Steps     []DivisionStep `json:"steps" yaml:"steps"`
}

func (r *DivisionResult) Trace() []Step { return toSteps(r.Steps) }

// Divide performs modulo-2 (XOR) long division of dividend by divisor one bit
// at a time. The divisor must start with '1'. A single-bit divisor is valid
// and leaves an empty remainder.
func Divide(dividend, divisor string) (*DivisionResult, error) {
	dv, err := parseNonEmpty("divisor", divisor)
	if err != nil {
		return nil, err
	}
	if dv[0] != 1 {
		return nil, invalid("divisor", divisor, ErrDivisorLeadingZero)
	}
	dd, err := ParseBits("dividend", dividend)
	if err != nil {
		return nil, err
	}
	return divide(dd, dv), nil
}

func divide(dividend, divisor Bits) *DivisionResult {
	n := len(divisor)
	res := &DivisionResult{
		Dividend: dividend.String(),
		Divisor:  divisor.String(),
	}

	// shorter than the divisor: the dividend already is the remainder
	if len(dividend) < n {
		rem := Zeros(n - 1 - len(dividend))
		rem = append(rem, dividend...)
		res.Remainder = rem.String()
		return res
	}

	zeros := Zeros(n)
	register := dividend[:n].Clone()
	count := len(dividend) - n + 1
	quotient := make(Bits, 0, count)
	res.Steps = make([]DivisionStep, 0, count)

	for i := 0; i < count; i++ {
		used := zeros
		if register[0] == 1 {
			used = divisor
		}
		quotient = append(quotient, register[0])

		xored := register.Xor(used)[1:]
		next := xored.Clone()
		if n+i < len(dividend) {
			next = append(next, dividend[n+i])
		}

		res.Steps = append(res.Steps, DivisionStep{
			Register:    register.String(),
			Divisor:     used.String(),
			QuotientBit: bitString(register[0]),
			XOR:         xored.String(),
			Next:        next.String(),
		})
		register = next
	}

	res.Quotient = quotient.String()
	res.Remainder = register.String()
	return res
}
