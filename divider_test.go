package edc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDivide(t *testing.T) {
	res, err := Divide("1101011011000", "1011")
	require.NoError(t, err)
	assert.Equal(t, "1111010100", res.Quotient)
	assert.Equal(t, "100", res.Remainder)
	require.Len(t, res.Steps, 10)

	assert.Equal(t, DivisionStep{
		Register:    "1101",
		Divisor:     "1011",
		QuotientBit: "1",
		XOR:         "110",
		Next:        "1100",
	}, res.Steps[0])
	assert.Equal(t, DivisionStep{
		Register:    "0100",
		Divisor:     "0000",
		QuotientBit: "0",
		XOR:         "100",
		Next:        "100",
	}, res.Steps[9])
	assert.Equal(t, "1101 XOR 1011 = 110, quotient bit 1, next 1100", res.Trace()[0].Describe())

	// each step feeds the next one
	for i := 1; i < len(res.Steps); i++ {
		assert.Equal(t, res.Steps[i-1].Next, res.Steps[i].Register)
	}
}

func TestDivide_ShortDividend(t *testing.T) {
	res, err := Divide("10", "1011")
	require.NoError(t, err)
	assert.Equal(t, "010", res.Remainder)
	assert.Empty(t, res.Quotient)
	assert.Empty(t, res.Steps)

	res, err = Divide("", "1011")
	require.NoError(t, err)
	assert.Equal(t, "000", res.Remainder)
}

func TestDivide_SingleBitDivisor(t *testing.T) {
	res, err := Divide("1011", "1")
	require.NoError(t, err)
	assert.Equal(t, "1011", res.Quotient)
	assert.Equal(t, "", res.Remainder)
	require.Len(t, res.Steps, 4)
	for _, s := range res.Steps {
		assert.Empty(t, s.XOR)
	}
}

func TestDivide_Invalid(t *testing.T) {
	_, err := Divide("1011", "011")
	assert.True(t, errors.Is(err, ErrDivisorLeadingZero))

	_, err = Divide("1011", "")
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = Divide("10z1", "11")
	assert.True(t, errors.Is(err, ErrNotBinary))
}
