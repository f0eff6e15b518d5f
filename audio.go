package edc

import (
	"bytes"
	"encoding/binary"
	"strconv"
)

const (
	SampleRate    = 48000
	BitsPerSample = 16
	NumChannels   = 1
	wavHeaderSize = 44

	BaudRate600  = 600
	BaudRate1200 = 1200
	BaudRate2400 = 2400
	BaudRate4800 = 4800
)

var (
	SymbolHigh = int16(-12287) // bit 1
	SymbolLow  = int16(12287)  // bit 0
)

func samplesPerSymbol(baud int) (int, error) {
	switch baud {
	case BaudRate600, BaudRate1200, BaudRate2400, BaudRate4800:
		return SampleRate / baud, nil
	}
	return 0, invalid("baud", strconv.Itoa(baud), ErrBaudRate)
}

// CheckBaud reports an error unless baud is a supported symbol rate.
func CheckBaud(baud int) error {
	_, err := samplesPerSymbol(baud)
	return err
}

// Modulate renders bits as a mono 16-bit PCM WAV, one NRZ symbol per bit.
func Modulate(bits string, baud int) ([]byte, error) {
	spb, err := samplesPerSymbol(baud)
	if err != nil {
		return nil, err
	}
	b, err := parseNonEmpty("bits", bits)
	if err != nil {
		return nil, err
	}

	samples := make([]int16, 0, len(b)*spb)
	for _, bit := range b {
		sample := SymbolLow
		if bit == 1 {
			sample = SymbolHigh
		}
		for j := 0; j < spb; j++ {
			samples = append(samples, sample)
		}
	}

	return createWAVFile(samples), nil
}

// Demodulate averages each symbol window of a WAV produced by Modulate and
// returns the recovered bit string. Negative windows decode to '1'.
func Demodulate(wav []byte, baud int) (string, error) {
	spb, err := samplesPerSymbol(baud)
	if err != nil {
		return "", err
	}
	if len(wav) < wavHeaderSize+2 {
		return "", invalid("wav", "", ErrAudioTooShort)
	}

	pcm := wav[wavHeaderSize:]
	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}

	bits := make(Bits, 0, len(samples)/spb)
	for i := 0; i+spb <= len(samples); i += spb {
		sum := int64(0)
		for j := 0; j < spb; j++ {
			sum += int64(samples[i+j])
		}
		var bit byte
		if sum < 0 {
			bit = 1
		}
		bits = append(bits, bit)
	}

	if len(bits) == 0 {
		return "", invalid("wav", "", ErrAudioTooShort)
	}
	return bits.String(), nil
}

func createWAVFile(samples []int16) []byte {
	var buf bytes.Buffer

	dataSize := uint32(len(samples) * 2)
	fileSize := 36 + dataSize
	byteRate := uint32(SampleRate * NumChannels * BitsPerSample / 8)
	blockAlign := uint16(NumChannels * BitsPerSample / 8)

	// RIFF header
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, fileSize)
	buf.WriteString("WAVE")

	// fmt chunk
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))            // chunk size
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1))             // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(NumChannels))   // channels
	_ = binary.Write(&buf, binary.LittleEndian, uint32(SampleRate))    // sample rate
	_ = binary.Write(&buf, binary.LittleEndian, byteRate)              // byte rate
	_ = binary.Write(&buf, binary.LittleEndian, blockAlign)            // block align
	_ = binary.Write(&buf, binary.LittleEndian, uint16(BitsPerSample)) // bits per sample

	// data chunk
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, dataSize)
	_ = binary.Write(&buf, binary.LittleEndian, samples)

	return buf.Bytes()
}
