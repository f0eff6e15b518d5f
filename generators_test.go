package edc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"crc-3", "1011"},
		{"crc-4", "10011"},
		{"crc-8", "100000111"},
		{"crc-9", "1001011001"},
		{"crc-16-ccitt", "10001000000100001"},
		{"CRC-32", "100000100110000010001110110110111"},
		{"bch-31-21", "11101101001"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generator(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := Generator("crc-7")
	assert.True(t, errors.Is(err, ErrUnknownGenerator))
}

func TestGeneratorNames(t *testing.T) {
	assert.Equal(t, []string{
		"bch-31-21", "crc-16-ccitt", "crc-3", "crc-32", "crc-4", "crc-8", "crc-9",
	}, GeneratorNames())
}

func TestResolveDivisor(t *testing.T) {
	d, err := ResolveDivisor("crc-3")
	require.NoError(t, err)
	assert.Equal(t, "1011", d)

	d, err = ResolveDivisor("110101")
	require.NoError(t, err)
	assert.Equal(t, "110101", d)

	_, err = ResolveDivisor("0110")
	assert.True(t, errors.Is(err, ErrDivisorLeadingZero))
}
