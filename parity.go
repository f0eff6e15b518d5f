package edc

import "strings"

// ParityPolicy selects whether a parity bit makes the total count of ones
// even or odd.
type ParityPolicy int

const (
	Even ParityPolicy = iota
	Odd
)

func (p ParityPolicy) String() string {
	switch p {
	case Even:
		return "Even"
	case Odd:
		return "Odd"
	default:
		return "Unknown"
	}
}

// MarshalText lets results carry the policy as "Even"/"Odd".
func (p ParityPolicy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *ParityPolicy) UnmarshalText(text []byte) error {
	v, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// ParsePolicy accepts "even" or "odd" in any case.
func ParsePolicy(s string) (ParityPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "even":
		return Even, nil
	case "odd":
		return Odd, nil
	}
	return Even, invalid("parity", s, ErrParity)
}

// PolicyFromBool maps the even_parity flag used by request bodies.
func PolicyFromBool(even bool) ParityPolicy {
	if even {
		return Even
	}
	return Odd
}

// parityBit returns the bit that brings ones up to the policy's parity.
func parityBit(ones int, policy ParityPolicy) byte {
	odd := byte(ones % 2)
	if policy == Odd {
		return odd ^ 1
	}
	return odd
}
