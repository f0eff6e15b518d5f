package edc

import (
	"math/bits"
	"strconv"
	"strings"
)

// Bits is a bit vector holding one 0 or 1 per element, most significant
// (leftmost transmitted) bit first.
type Bits []byte

// ParseBits converts a string of '0'/'1' characters into Bits. field names the
// input in the returned ValidationError.
func ParseBits(field, s string) (Bits, error) {
	b := make(Bits, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
		case '1':
			b[i] = 1
		default:
			return nil, invalid(field, s, ErrNotBinary)
		}
	}
	return b, nil
}

// parseNonEmpty is ParseBits with the additional requirement of at least one bit.
func parseNonEmpty(field, s string) (Bits, error) {
	if s == "" {
		return nil, invalid(field, s, ErrEmpty)
	}
	return ParseBits(field, s)
}

func (b Bits) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, v := range b {
		sb.WriteByte('0' + v)
	}
	return sb.String()
}

// OnesCount returns the number of set bits.
func (b Bits) OnesCount() int {
	count := 0
	for _, v := range b {
		count += int(v)
	}
	return count
}

// IsZero reports whether no bit is set. The empty vector is zero.
func (b Bits) IsZero() bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}

// Xor returns b XOR o; both must have the same length.
func (b Bits) Xor(o Bits) Bits {
	out := make(Bits, len(b))
	for i := range b {
		out[i] = b[i] ^ o[i]
	}
	return out
}

// Clone returns an independent copy of b.
func (b Bits) Clone() Bits {
	out := make(Bits, len(b))
	copy(out, b)
	return out
}

// Zeros returns n cleared bits.
func Zeros(n int) Bits {
	return make(Bits, n)
}

// Mask wraps val into width bits.
func Mask(val uint64, width int) uint64 {
	if width >= 64 {
		return val
	}
	return val & (1<<uint(width) - 1)
}

// FormatBinary renders val as a zero-padded binary string of width bits.
// Values wider than width are printed in full.
func FormatBinary(val uint64, width int) string {
	s := strconv.FormatUint(val, 2)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// IsPow2 reports whether i is a positive power of two.
func IsPow2(i int) bool {
	return i > 0 && i&(i-1) == 0
}

// BitLength returns the number of bits needed to represent v.
func BitLength(v uint64) int {
	return bits.Len64(v)
}

func bitString(v byte) string {
	if v == 1 {
		return "1"
	}
	return "0"
}
