package edc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipBits(t *testing.T) {
	got, err := FlipBits("0110011", 3)
	require.NoError(t, err)
	assert.Equal(t, "0100011", got)

	got, err = FlipBits("0000", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, "1001", got)

	got, err = FlipBits("0000", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, "0000", got)

	got, err = FlipBits("1010")
	require.NoError(t, err)
	assert.Equal(t, "1010", got)

	_, err = FlipBits("0000", 0)
	assert.True(t, errors.Is(err, ErrPosition))
	_, err = FlipBits("0000", 5)
	assert.True(t, errors.Is(err, ErrPosition))
}

func TestBurstError(t *testing.T) {
	got, err := BurstError("00000000", 3, 4)
	require.NoError(t, err)
	assert.Equal(t, "00111100", got)

	_, err = BurstError("0000", 3, 3)
	assert.True(t, errors.Is(err, ErrPosition))

	_, err = BurstError("0000", 1, 0)
	assert.True(t, errors.Is(err, ErrPosition))
}
