package edc

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxBlockSize is the widest supported checksum block. The unwrapped sum is
// kept in a uint64.
const MaxBlockSize = 32

// ChecksumStep kinds.
const (
	StepAdd        = "add"
	StepTotal      = "total"
	StepWrap       = "wrap"
	StepComplement = "complement"
)

// ChecksumStep records one addition, carry fold or the final complement.
type ChecksumStep struct {
	Kind        string `json:"kind" yaml:"kind"`
	Description string `json:"description" yaml:"description"`
	Value       uint64 `json:"value" yaml:"value"`
	Binary      string `json:"binary" yaml:"binary"`
}

func (s ChecksumStep) Describe() string { return s.Description }

// ChecksumResult is the outcome of a 1's-complement checksum encode.
type ChecksumResult struct {
	Data      string         `json:"data" yaml:"data"`
	BlockSize int            `json:"block_size" yaml:"block_size"`
	Blocks    []string       `json:"blocks" yaml:"blocks"`
	RawSum    uint64         `json:"raw_sum" yaml:"raw_sum"`
	Sum       string         `json:"sum" yaml:"sum"`
	Checksum  string         `json:"checksum" yaml:"checksum"`
	Codeword  string         `json:"codeword" yaml:"codeword"`
	Steps     []ChecksumStep `json:"steps" yaml:"steps"`
}

func (r *ChecksumResult) Trace() []Step { return toSteps(r.Steps) }

// ChecksumVerifyResult is the outcome of re-summing data with its checksum.
type ChecksumVerifyResult struct {
	Data      string         `json:"data" yaml:"data"`
	BlockSize int            `json:"block_size" yaml:"block_size"`
	Blocks    []string       `json:"blocks" yaml:"blocks"`
	Sum       string         `json:"sum" yaml:"sum"`
	Checksum  string         `json:"checksum" yaml:"checksum"`
	IsValid   bool           `json:"is_valid" yaml:"is_valid"`
	Steps     []ChecksumStep `json:"steps" yaml:"steps"`
}

func (r *ChecksumVerifyResult) Trace() []Step { return toSteps(r.Steps) }
func (r *ChecksumVerifyResult) Valid() bool { return r.IsValid }

// EncodeChecksum splits data into blockSize-bit words, adds them, folds the
// carries back in and complements the result. Data whose length is not a
// multiple of blockSize is left-padded with zeros; the padded data is
// returned as Data.
func EncodeChecksum(data string, blockSize int) (*ChecksumResult, error) {
	if blockSize < 1 || blockSize > MaxBlockSize {
		return nil, invalid("block_size", strconv.Itoa(blockSize), ErrBlockSize)
	}
	if _, err := parseNonEmpty("data", data); err != nil {
		return nil, err
	}

	if rem := len(data) % blockSize; rem != 0 {
		data = strings.Repeat("0", blockSize-rem) + data
	}

	count := len(data) / blockSize
	blocks := make([]string, 0, count)
	steps := make([]ChecksumStep, 0, count+3)

	var sum uint64
	for i := 0; i < len(data); i += blockSize {
		block := data[i : i+blockSize]
		val, _ := strconv.ParseUint(block, 2, 64)
		blocks = append(blocks, block)
		steps = append(steps, ChecksumStep{
			Kind:        StepAdd,
			Description: fmt.Sprintf("Add %s (%d) to sum %d", block, val, sum),
			Value:       sum + val,
			Binary:      FormatBinary(sum+val, blockSize),
		})
		sum += val
	}

	raw := sum
	steps = append(steps, ChecksumStep{
		Kind:        StepTotal,
		Description: fmt.Sprintf("Total sum (raw): %d (%s)", sum, strconv.FormatUint(sum, 2)),
		Value:       sum,
		Binary:      FormatBinary(sum, blockSize),
	})

	maxVal := Mask(^uint64(0), blockSize)
	for sum > maxVal {
		carry := sum >> uint(blockSize)
		sum = (sum & maxVal) + carry
		steps = append(steps, ChecksumStep{
			Kind:        StepWrap,
			Description: fmt.Sprintf("Wrapping carry %d: new sum = %d (%s)", carry, sum, FormatBinary(sum, blockSize)),
			Value:       sum,
			Binary:      FormatBinary(sum, blockSize),
		})
	}

	checksum := Mask(^sum, blockSize)
	checksumBin := FormatBinary(checksum, blockSize)
	steps = append(steps, ChecksumStep{
		Kind:        StepComplement,
		Description: fmt.Sprintf("Complement of %s is %s", FormatBinary(sum, blockSize), checksumBin),
		Value:       checksum,
		Binary:      checksumBin,
	})

	return &ChecksumResult{
		Data:      data,
		BlockSize: blockSize,
		Blocks:    blocks,
		RawSum:    raw,
		Sum:       FormatBinary(sum, blockSize),
		Checksum:  checksumBin,
		Codeword:  data + checksumBin,
		Steps:     steps,
	}, nil
}

// VerifyChecksum re-runs EncodeChecksum over data that already carries its
// checksum as the last block. The data is intact when the recomputed
// checksum is all zeros.
func VerifyChecksum(dataWithChecksum string, blockSize int) (*ChecksumVerifyResult, error) {
	enc, err := EncodeChecksum(dataWithChecksum, blockSize)
	if err != nil {
		return nil, err
	}
	return &ChecksumVerifyResult{
		Data:      enc.Data,
		BlockSize: blockSize,
		Blocks:    enc.Blocks,
		Sum:       enc.Sum,
		Checksum:  enc.Checksum,
		IsValid:   strings.IndexByte(enc.Checksum, '1') < 0,
		Steps:     enc.Steps,
	}, nil
}
