package edc

import (
	"errors"
	"fmt"
)

var (
	ErrNotBinary          = errors.New("must contain only '0' and '1'")
	ErrEmpty              = errors.New("must not be empty")
	ErrNoBlocks           = errors.New("at least one data block is required")
	ErrBlockLength        = errors.New("all data blocks must have the same length")
	ErrLRCLength          = errors.New("received LRC must be as long as each data block")
	ErrDivisorLeadingZero = errors.New("divisor must start with '1'")
	ErrDivisorTooShort    = errors.New("divisor must be at least 2 bits long")
	ErrBlockSize          = errors.New("block size must be between 1 and 32 bits")
	ErrPosition           = errors.New("bit position out of range")
	ErrBaudRate           = errors.New("unsupported baud rate")
	ErrUnknownGenerator   = errors.New("unknown generator polynomial")
	ErrAudioTooShort      = errors.New("invalid WAV data: too short")
	ErrParity             = errors.New("parity must be even or odd")
)

// ValidationError reports a caller-correctable problem with one input.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is, or wraps, a *ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func invalid(field, value string, err error) error {
	// keep messages readable for long codewords
	if len(value) > 64 {
		value = value[:61] + "..."
	}
	return &ValidationError{Field: field, Value: value, Err: err}
}
