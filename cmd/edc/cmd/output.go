package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	edc "github.com/sqpp/edc-golang"
	"github.com/sqpp/edc-golang/internal/request"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// render writes v in the given format. Text output understands engine
// results and batch outcomes; anything else falls back to fmt.
func render(w io.Writer, format string, v any) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	}

	switch v := v.(type) {
	case edc.Result:
		writeResult(w, v)
	case []request.Outcome:
		for i, o := range v {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeOutcome(w, o)
		}
	default:
		fmt.Fprintln(w, v)
	}
	return nil
}

func writeOutcome(w io.Writer, o request.Outcome) {
	name := o.Name
	if name == "" {
		name = "-"
	}
	status := "ok"
	switch {
	case o.Err() != nil:
		status = fmt.Sprintf("%s error: %s", o.ErrorKind, o.Error)
	case o.Valid != nil && *o.Valid:
		status = "valid"
	case o.Valid != nil:
		status = "INVALID"
	}
	fmt.Fprintf(w, "== %s [%s %s] %s\n", name, o.Scheme, o.Op, status)
	if o.Result != nil {
		writeResult(w, o.Result)
	}
}

func writeResult(w io.Writer, res edc.Result) {
	for _, line := range summary(res) {
		fmt.Fprintln(w, line)
	}
	steps := res.Trace()
	if len(steps) == 0 {
		return
	}
	fmt.Fprintln(w, "Steps:")
	for i, s := range steps {
		fmt.Fprintf(w, "  %2d. %s\n", i+1, s.Describe())
	}
}

func summary(res edc.Result) []string {
	switch r := res.(type) {
	case *edc.VRCResult:
		return []string{
			"Data:       " + r.Data,
			"Parity:     " + r.Policy.String(),
			"Parity bit: " + r.ParityBit,
			"Codeword:   " + r.Result,
		}
	case *edc.VRCVerifyResult:
		return []string{
			"Codeword:   " + r.Codeword,
			"Parity:     " + r.Policy.String(),
			"Received:   " + r.ReceivedParity,
			"Calculated: " + r.CalculatedParity,
			"Valid:      " + yesNo(r.IsValid),
		}
	case *edc.LRCResult:
		return []string{
			"Blocks: " + strings.Join(r.Blocks, " "),
			"Parity: " + r.Policy.String(),
			"LRC:    " + r.LRC,
			"Frame:  " + strings.Join(r.Result, " "),
		}
	case *edc.LRCVerifyResult:
		lines := []string{
			"Blocks:     " + strings.Join(r.Blocks, " "),
			"Parity:     " + r.Policy.String(),
			"Received:   " + r.ReceivedLRC,
			"Calculated: " + r.CalculatedLRC,
			"Valid:      " + yesNo(r.IsValid),
		}
		if len(r.MismatchedColumns) > 0 {
			lines = append(lines, fmt.Sprintf("Mismatched columns: %v", r.MismatchedColumns))
		}
		return lines
	case *edc.DivisionResult:
		return []string{
			"Dividend:  " + r.Dividend,
			"Divisor:   " + r.Divisor,
			"Quotient:  " + r.Quotient,
			"Remainder: " + r.Remainder,
		}
	case *edc.CRCResult:
		return []string{
			"Data:      " + r.Data,
			"Divisor:   " + r.Divisor,
			"Dividend:  " + r.Dividend,
			"Quotient:  " + r.Quotient,
			"Remainder: " + r.Remainder,
			"Codeword:  " + r.Codeword,
		}
	case *edc.CRCVerifyResult:
		return []string{
			"Codeword:  " + r.Codeword,
			"Divisor:   " + r.Divisor,
			"Quotient:  " + r.Quotient,
			"Remainder: " + r.Remainder,
			"Valid:     " + yesNo(r.IsValid),
		}
	case *edc.ChecksumResult:
		return []string{
			"Blocks:   " + strings.Join(r.Blocks, " "),
			"Sum:      " + r.Sum,
			"Checksum: " + r.Checksum,
			"Codeword: " + r.Codeword,
		}
	case *edc.ChecksumVerifyResult:
		return []string{
			"Blocks:   " + strings.Join(r.Blocks, " "),
			"Sum:      " + r.Sum,
			"Checksum: " + r.Checksum,
			"Valid:    " + yesNo(r.IsValid),
		}
	case *edc.HammingResult:
		return []string{
			"Data:             " + r.Data,
			fmt.Sprintf("Redundancy bits:  %d", r.RedundancyBits),
			fmt.Sprintf("Parity positions: %v", r.ParityPositions),
			"Codeword:         " + r.Codeword,
		}
	case *edc.HammingVerifyResult:
		lines := []string{
			"Codeword:  " + r.Codeword,
			fmt.Sprintf("Syndrome:  %d", r.Syndrome),
			"Status:    " + string(r.Status),
		}
		if r.Status == edc.StatusCorrected {
			lines = append(lines,
				fmt.Sprintf("Error at:  %s", edc.BitName(r.ErrorPosition)),
				"Corrected: "+r.CorrectedCodeword)
		}
		if r.Data != "" {
			lines = append(lines, "Data:      "+r.Data)
		}
		return lines
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
