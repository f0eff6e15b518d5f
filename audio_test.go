package edc

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulate(t *testing.T) {
	wav, err := Modulate("1011", BaudRate1200)
	require.NoError(t, err)

	// Verify WAV header
	require.Greater(t, len(wav), wavHeaderSize)
	assert.Equal(t, "RIFF", string(wav[0:4]))
	assert.Equal(t, "WAVE", string(wav[8:12]))
	assert.Equal(t, "data", string(wav[36:40]))

	samples := 4 * SampleRate / BaudRate1200
	assert.Equal(t, uint32(samples*2), binary.LittleEndian.Uint32(wav[40:44]))
	assert.Len(t, wav, wavHeaderSize+samples*2)

	first := int16(binary.LittleEndian.Uint16(wav[wavHeaderSize:]))
	assert.Equal(t, SymbolHigh, first)
}

func TestModulateDemodulate_RoundTrip(t *testing.T) {
	enc, err := EncodeHamming("10011010")
	require.NoError(t, err)

	for _, baud := range []int{BaudRate600, BaudRate1200, BaudRate2400, BaudRate4800} {
		wav, err := Modulate(enc.Codeword, baud)
		require.NoError(t, err)

		got, err := Demodulate(wav, baud)
		require.NoError(t, err)
		assert.Equal(t, enc.Codeword, got, "baud %d", baud)
	}
}

func TestModulate_Invalid(t *testing.T) {
	_, err := Modulate("1011", 512)
	assert.True(t, errors.Is(err, ErrBaudRate))

	_, err = Modulate("", BaudRate1200)
	assert.True(t, errors.Is(err, ErrEmpty))

	_, err = Demodulate([]byte("RIFF"), BaudRate1200)
	assert.True(t, errors.Is(err, ErrAudioTooShort))
}

func TestCheckBaud(t *testing.T) {
	for _, baud := range []int{BaudRate600, BaudRate1200, BaudRate2400, BaudRate4800} {
		assert.NoError(t, CheckBaud(baud))
	}
	for _, baud := range []int{0, -1200, 512, 9600} {
		err := CheckBaud(baud)
		assert.ErrorIs(t, err, ErrBaudRate, "baud %d", baud)
		assert.True(t, IsValidation(err))
	}
}
