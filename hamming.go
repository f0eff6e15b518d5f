package edc

import (
	"fmt"
	"strings"
)

// Hamming verification outcomes.
type HammingStatus string

const (
	StatusAccepted      HammingStatus = "ACCEPTED"
	StatusCorrected     HammingStatus = "ERROR CORRECTED"
	StatusUncorrectable HammingStatus = "DETECTED (UNCORRECTABLE)"
)

// HammingParityStep records how one parity bit was derived during encoding.
type HammingParityStep struct {
	Parity   string   `json:"parity" yaml:"parity"`
	Position int      `json:"position" yaml:"position"`
	Covered  []string `json:"covered" yaml:"covered"`
	Bits     string   `json:"bits_str" yaml:"bits_str"`
	Result   string   `json:"result" yaml:"result"`
}

func (s HammingParityStep) Describe() string {
	return fmt.Sprintf("%s = %s = %s", s.Parity, s.Bits, s.Result)
}

// HammingCheckStep records one parity check during verification.
type HammingCheckStep struct {
	Position int      `json:"position" yaml:"position"`
	Covered  []string `json:"covered" yaml:"covered"`
	Bits     string   `json:"bits_str" yaml:"bits_str"`
	Result   string   `json:"result" yaml:"result"`
}

func (s HammingCheckStep) Describe() string {
	return fmt.Sprintf("check %d: %s = %s", s.Position, s.Bits, s.Result)
}

// HammingResult is the outcome of Hamming encoding.
type HammingResult struct {
	Data            string              `json:"data" yaml:"data"`
	RedundancyBits  int                 `json:"redundancy_bits" yaml:"redundancy_bits"`
	TotalLength     int                 `json:"total_length" yaml:"total_length"`
	Codeword        string              `json:"codeword" yaml:"codeword"`
	ParityPositions []int               `json:"parity_positions" yaml:"parity_positions"`
	Steps           []HammingParityStep `json:"steps" yaml:"steps"`
}

func (r *HammingResult) Trace() []Step { return toSteps(r.Steps) }

// HammingVerifyResult is the outcome of syndrome decoding a received codeword.
type HammingVerifyResult struct {
	Codeword          string             `json:"codeword" yaml:"codeword"`
	Syndrome          int                `json:"syndrome" yaml:"syndrome"`
	ErrorPosition     int                `json:"error_position" yaml:"error_position"`
	CorrectedCodeword string             `json:"corrected_codeword" yaml:"corrected_codeword"`
	Data              string             `json:"data" yaml:"data"`
	Status            HammingStatus      `json:"status" yaml:"status"`
	IsValid           bool               `json:"is_valid" yaml:"is_valid"`
	Steps             []HammingCheckStep `json:"steps" yaml:"steps"`
}

func (r *HammingVerifyResult) Trace() []Step { return toSteps(r.Steps) }
func (r *HammingVerifyResult) Valid() bool { return r.IsValid }

// RedundancyBits returns the smallest r with 2^r >= m + r + 1.
func RedundancyBits(m int) int {
	r := 0
	for 1<<uint(r) < m+r+1 {
		r++
	}
	return r
}

// BitName labels a 1-based codeword position: p<pos> for parity positions,
// d<pos> for data positions.
func BitName(pos int) string {
	if IsPow2(pos) {
		return fmt.Sprintf("p%d", pos)
	}
	return fmt.Sprintf("d%d", pos)
}

// EncodeHamming places data bits at the non power-of-two positions of a
// 1-based codeword and fills each power-of-two position with even parity over
// the positions it covers.
func EncodeHamming(data string) (*HammingResult, error) {
	d, err := parseNonEmpty("data", data)
	if err != nil {
		return nil, err
	}

	m := len(d)
	r := RedundancyBits(m)
	total := m + r

	// index 0 is unused
	codeword := make(Bits, total+1)
	parityPositions := make([]int, 0, r)
	next := 0
	for i := 1; i <= total; i++ {
		if IsPow2(i) {
			parityPositions = append(parityPositions, i)
			continue
		}
		codeword[i] = d[next]
		next++
	}

	steps := make([]HammingParityStep, 0, r)
	for _, p := range parityPositions {
		var parity byte
		covered := make([]string, 0, total/2+1)
		values := make([]string, 0, total/2+1)

		for i := p; i <= total; i++ {
			if i&p != p {
				continue
			}
			name := BitName(i)
			covered = append(covered, name)
			if i == p {
				values = append(values, name+"(?)")
				continue
			}
			values = append(values, fmt.Sprintf("%s(%d)", name, codeword[i]))
			parity ^= codeword[i]
		}

		codeword[p] = parity
		steps = append(steps, HammingParityStep{
			Parity:   BitName(p),
			Position: p,
			Covered:  covered,
			Bits:     strings.Join(values, " + "),
			Result:   bitString(parity),
		})
	}

	return &HammingResult{
		Data:            data,
		RedundancyBits:  r,
		TotalLength:     total,
		Codeword:        codeword[1:].String(),
		ParityPositions: parityPositions,
		Steps:           steps,
	}, nil
}

// VerifyHamming computes the syndrome of codeword and corrects a single bit
// error when the syndrome points inside the codeword.
func VerifyHamming(codeword string) (*HammingVerifyResult, error) {
	cw, err := parseNonEmpty("codeword", codeword)
	if err != nil {
		return nil, err
	}

	n := len(cw)
	// position i lives at cw[i-1]
	syndrome := 0
	steps := make([]HammingCheckStep, 0, BitLength(uint64(n)))

	for p := 1; p <= n; p <<= 1 {
		var check byte
		covered := make([]string, 0, n/2+1)
		values := make([]string, 0, n/2+1)

		for i := p; i <= n; i++ {
			if i&p != p {
				continue
			}
			name := BitName(i)
			covered = append(covered, name)
			values = append(values, fmt.Sprintf("%s(%d)", name, cw[i-1]))
			check ^= cw[i-1]
		}

		if check != 0 {
			syndrome += p
		}
		steps = append(steps, HammingCheckStep{
			Position: p,
			Covered:  covered,
			Bits:     strings.Join(values, " + "),
			Result:   bitString(check),
		})
	}

	res := &HammingVerifyResult{
		Codeword: codeword,
		Syndrome: syndrome,
		Steps:    steps,
	}

	switch {
	case syndrome == 0:
		res.Status = StatusAccepted
		res.IsValid = true
		res.CorrectedCodeword = codeword
		res.Data = hammingData(cw)
	case syndrome <= n:
		corrected := cw.Clone()
		corrected[syndrome-1] ^= 1
		res.Status = StatusCorrected
		res.ErrorPosition = syndrome
		res.CorrectedCodeword = corrected.String()
		res.Data = hammingData(corrected)
	default:
		res.Status = StatusUncorrectable
		res.CorrectedCodeword = codeword
	}

	return res, nil
}

// hammingData extracts the bits at non power-of-two positions.
func hammingData(cw Bits) string {
	data := make(Bits, 0, len(cw))
	for i := 1; i <= len(cw); i++ {
		if !IsPow2(i) {
			data = append(data, cw[i-1])
		}
	}
	return data.String()
}
