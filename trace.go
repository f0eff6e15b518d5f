package edc

import "fmt"

// Step is one entry of an algorithm trace.
type Step interface {
	Describe() string
}

// Result is implemented by every encode and verify result.
type Result interface {
	Trace() []Step
}

// Verdict is implemented by verify results.
type Verdict interface {
	Result
	Valid() bool
}

// ParityStep records a single parity decision, either over a whole VRC
// data word or down one LRC column.
type ParityStep struct {
	Column    int    `json:"column" yaml:"column"`
	Bits      string `json:"bits" yaml:"bits"`
	Ones      int    `json:"ones" yaml:"ones"`
	ParityBit string `json:"parity_bit" yaml:"parity_bit"`
}

func (s ParityStep) Describe() string {
	if s.Column < 0 {
		return fmt.Sprintf("%s has %d one(s), parity bit %s", s.Bits, s.Ones, s.ParityBit)
	}
	return fmt.Sprintf("column %d: %s has %d one(s), parity bit %s", s.Column, s.Bits, s.Ones, s.ParityBit)
}

func toSteps[S Step](in []S) []Step {
	out := make([]Step, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
