package edc

import "strconv"

// FlipBits inverts the bits at the given 1-based positions, simulating
// single-bit channel errors. Repeated positions flip the same bit again.
func FlipBits(bits string, positions ...int) (string, error) {
	b, err := ParseBits("bits", bits)
	if err != nil {
		return "", err
	}
	for _, pos := range positions {
		if pos < 1 || pos > len(b) {
			return "", invalid("position", strconv.Itoa(pos), ErrPosition)
		}
		b[pos-1] ^= 1
	}
	return b.String(), nil
}

// BurstError inverts length consecutive bits starting at the 1-based
// position start.
func BurstError(bits string, start, length int) (string, error) {
	if length < 1 {
		return "", invalid("length", strconv.Itoa(length), ErrPosition)
	}
	positions := make([]int, length)
	for i := range positions {
		positions[i] = start + i
	}
	return FlipBits(bits, positions...)
}
