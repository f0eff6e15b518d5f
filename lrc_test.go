package edc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lrcBlocks = []string{"11100111", "11011101", "00111001", "10101001"}

func TestEncodeLRC(t *testing.T) {
	res, err := EncodeLRC(lrcBlocks, Even)
	require.NoError(t, err)
	assert.Equal(t, "10101010", res.LRC)
	assert.Equal(t, append(append([]string{}, lrcBlocks...), "10101010"), res.Result)
	require.Len(t, res.Steps, 8)
	assert.Equal(t, ParityStep{Column: 0, Bits: "1101", Ones: 3, ParityBit: "1"}, res.Steps[0])
	assert.Equal(t, "column 0: 1101 has 3 one(s), parity bit 1", res.Trace()[0].Describe())

	res, err = EncodeLRC(lrcBlocks, Odd)
	require.NoError(t, err)
	assert.Equal(t, "01010101", res.LRC)
}

func TestEncodeLRC_SingleBlock(t *testing.T) {
	res, err := EncodeLRC([]string{"1010"}, Even)
	require.NoError(t, err)
	assert.Equal(t, "1010", res.LRC)
}

func TestEncodeLRC_Invalid(t *testing.T) {
	_, err := EncodeLRC(nil, Even)
	assert.True(t, errors.Is(err, ErrNoBlocks))

	_, err = EncodeLRC([]string{"1010", "101"}, Even)
	assert.True(t, errors.Is(err, ErrBlockLength))

	_, err = EncodeLRC([]string{"1010", "10x0"}, Even)
	assert.True(t, errors.Is(err, ErrNotBinary))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "data_blocks[1]", ve.Field)

	_, err = EncodeLRC([]string{""}, Even)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestVerifyLRC_RoundTrip(t *testing.T) {
	for _, policy := range []ParityPolicy{Even, Odd} {
		enc, err := EncodeLRC(lrcBlocks, policy)
		require.NoError(t, err)

		res, err := VerifyLRC(lrcBlocks, enc.LRC, policy)
		require.NoError(t, err)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.MismatchedColumns)
	}
}

func TestVerifyLRC_DetectsEverySingleBitError(t *testing.T) {
	enc, err := EncodeLRC(lrcBlocks, Even)
	require.NoError(t, err)

	for b := range lrcBlocks {
		for pos := 1; pos <= len(lrcBlocks[b]); pos++ {
			corrupted := append([]string{}, lrcBlocks...)
			corrupted[b], err = FlipBits(corrupted[b], pos)
			require.NoError(t, err)

			res, err := VerifyLRC(corrupted, enc.LRC, Even)
			require.NoError(t, err)
			assert.False(t, res.IsValid, "block %d bit %d", b, pos)
			assert.Equal(t, []int{pos - 1}, res.MismatchedColumns)
		}
	}

	for pos := 1; pos <= len(enc.LRC); pos++ {
		badLRC, err := FlipBits(enc.LRC, pos)
		require.NoError(t, err)
		res, err := VerifyLRC(lrcBlocks, badLRC, Even)
		require.NoError(t, err)
		assert.False(t, res.IsValid)
	}
}

func TestVerifyLRC_Invalid(t *testing.T) {
	_, err := VerifyLRC(lrcBlocks, "1010", Even)
	assert.True(t, errors.Is(err, ErrLRCLength))

	_, err = VerifyLRC(lrcBlocks, "1010101x", Even)
	assert.True(t, errors.Is(err, ErrNotBinary))
}
