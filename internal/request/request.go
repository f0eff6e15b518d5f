// Package request holds the caller-facing request models for the edc engine.
// Requests are validated with go-playground/validator before any engine
// function runs, and batches of jobs are executed by a Runner.
package request

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	edc "github.com/sqpp/edc-golang"
)

// Schemes understood by Job.
const (
	SchemeVRC      = "vrc"
	SchemeLRC      = "lrc"
	SchemeCRC      = "crc"
	SchemeChecksum = "checksum"
	SchemeHamming  = "hamming"
)

// Operations understood by Job.
const (
	OpEncode = "encode"
	OpVerify = "verify"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	_ = validate.RegisterValidation("bits", validateBits)
}

// validateBits accepts strings made only of '0' and '1'. Emptiness is left to
// the required rule.
func validateBits(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return strings.Trim(s, "01") == ""
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

// Defaults fill in request fields the caller left out.
type Defaults struct {
	Policy    edc.ParityPolicy
	BlockSize int
	Divisor   string
}

// DefaultDefaults matches the engine's documented defaults: even parity,
// 8-bit checksum blocks and the CRC-3 generator.
func DefaultDefaults() Defaults {
	d, _ := edc.Generator("crc-3")
	return Defaults{Policy: edc.Even, BlockSize: 8, Divisor: d}
}

func policyOf(even *bool, def edc.ParityPolicy) edc.ParityPolicy {
	if even == nil {
		return def
	}
	return edc.PolicyFromBool(*even)
}

// VRCRequest is the body of a VRC encode or verify call. For verify, Data is
// the received codeword including its parity bit.
type VRCRequest struct {
	Data       string `json:"data" yaml:"data" validate:"required,bits"`
	EvenParity *bool  `json:"even_parity,omitempty" yaml:"even_parity,omitempty"`
}

func (r VRCRequest) Encode(d Defaults) (*edc.VRCResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	return edc.EncodeVRC(r.Data, policyOf(r.EvenParity, d.Policy))
}

func (r VRCRequest) Verify(d Defaults) (*edc.VRCVerifyResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	return edc.VerifyVRC(r.Data, policyOf(r.EvenParity, d.Policy))
}

// LRCRequest is the body of an LRC call. LRC is only read by Verify.
type LRCRequest struct {
	DataBlocks []string `json:"data_blocks" yaml:"data_blocks" validate:"required,min=1,dive,required,bits"`
	EvenParity *bool    `json:"even_parity,omitempty" yaml:"even_parity,omitempty"`
	LRC        string   `json:"lrc,omitempty" yaml:"lrc,omitempty" validate:"bits"`
}

func (r LRCRequest) Encode(d Defaults) (*edc.LRCResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	return edc.EncodeLRC(r.DataBlocks, policyOf(r.EvenParity, d.Policy))
}

func (r LRCRequest) Verify(d Defaults) (*edc.LRCVerifyResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	if r.LRC == "" {
		return nil, &edc.ValidationError{Field: "lrc", Err: edc.ErrEmpty}
	}
	return edc.VerifyLRC(r.DataBlocks, r.LRC, policyOf(r.EvenParity, d.Policy))
}

// CRCRequest is the body of a CRC call. Divisor is either a bit string or a
// generator name such as "crc-8". For verify, Data is the received codeword.
type CRCRequest struct {
	Data    string `json:"data" yaml:"data" validate:"bits"`
	Divisor string `json:"divisor,omitempty" yaml:"divisor,omitempty"`
}

func (r CRCRequest) divisor(d Defaults) (string, error) {
	if r.Divisor == "" {
		return d.Divisor, nil
	}
	return edc.ResolveDivisor(r.Divisor)
}

func (r CRCRequest) Encode(d Defaults) (*edc.CRCResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	dv, err := r.divisor(d)
	if err != nil {
		return nil, err
	}
	return edc.EncodeCRC(r.Data, dv)
}

func (r CRCRequest) Verify(d Defaults) (*edc.CRCVerifyResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	dv, err := r.divisor(d)
	if err != nil {
		return nil, err
	}
	return edc.VerifyCRC(r.Data, dv)
}

// ChecksumRequest is the body of a checksum call. A zero BlockSize takes the
// default.
type ChecksumRequest struct {
	Data      string `json:"data" yaml:"data" validate:"required,bits"`
	BlockSize int    `json:"block_size,omitempty" yaml:"block_size,omitempty" validate:"min=0,max=32"`
}

func (r ChecksumRequest) blockSize(d Defaults) int {
	if r.BlockSize == 0 {
		return d.BlockSize
	}
	return r.BlockSize
}

func (r ChecksumRequest) Encode(d Defaults) (*edc.ChecksumResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	return edc.EncodeChecksum(r.Data, r.blockSize(d))
}

func (r ChecksumRequest) Verify(d Defaults) (*edc.ChecksumVerifyResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	return edc.VerifyChecksum(r.Data, r.blockSize(d))
}

// HammingRequest is the body of a Hamming call.
type HammingRequest struct {
	Data string `json:"data" yaml:"data" validate:"required,bits"`
}

func (r HammingRequest) Encode() (*edc.HammingResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	return edc.EncodeHamming(r.Data)
}

func (r HammingRequest) Verify() (*edc.HammingVerifyResult, error) {
	if err := check(r); err != nil {
		return nil, err
	}
	return edc.VerifyHamming(r.Data)
}

// check runs the struct rules and converts failures into engine validation
// errors so callers classify them with edc.IsValidation.
func check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

func fieldError(fe validator.FieldError) error {
	ve := &edc.ValidationError{Field: fe.Field()}
	if s, ok := fe.Value().(string); ok {
		ve.Value = s
	}
	switch fe.Tag() {
	case "required":
		if fe.Kind() == reflect.Slice {
			ve.Err = edc.ErrNoBlocks
		} else {
			ve.Err = edc.ErrEmpty
		}
	case "min":
		ve.Err = edc.ErrNoBlocks
		if fe.Kind() == reflect.Int {
			ve.Err = edc.ErrBlockSize
		}
	case "max":
		ve.Err = edc.ErrBlockSize
	case "bits":
		ve.Err = edc.ErrNotBinary
	case "oneof":
		ve.Err = fmt.Errorf("must be one of [%s]", fe.Param())
	default:
		ve.Err = fmt.Errorf("failed %q rule", fe.Tag())
	}
	return ve
}
