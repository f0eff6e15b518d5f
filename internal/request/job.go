package request

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	edc "github.com/sqpp/edc-golang"
)

// Job is one entry of a batch file. Scheme and Op select the engine call;
// the remaining fields are copied into the matching request type.
type Job struct {
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Scheme     string   `json:"scheme" yaml:"scheme" validate:"required,oneof=vrc lrc crc checksum hamming"`
	Op         string   `json:"op,omitempty" yaml:"op,omitempty" validate:"omitempty,oneof=encode verify"`
	Data       string   `json:"data,omitempty" yaml:"data,omitempty"`
	DataBlocks []string `json:"data_blocks,omitempty" yaml:"data_blocks,omitempty"`
	LRC        string   `json:"lrc,omitempty" yaml:"lrc,omitempty"`
	EvenParity *bool    `json:"even_parity,omitempty" yaml:"even_parity,omitempty"`
	Divisor    string   `json:"divisor,omitempty" yaml:"divisor,omitempty"`
	BlockSize  int      `json:"block_size,omitempty" yaml:"block_size,omitempty"`
}

func (j Job) normalize() Job {
	j.Scheme = strings.ToLower(strings.TrimSpace(j.Scheme))
	j.Op = strings.ToLower(strings.TrimSpace(j.Op))
	if j.Op == "" {
		j.Op = OpEncode
	}
	return j
}

// execute validates the envelope and dispatches to the scheme's request.
func (j Job) execute(d Defaults) (edc.Result, error) {
	if err := check(j); err != nil {
		return nil, err
	}
	verify := j.Op == OpVerify

	switch j.Scheme {
	case SchemeVRC:
		req := VRCRequest{Data: j.Data, EvenParity: j.EvenParity}
		if verify {
			return req.Verify(d)
		}
		return req.Encode(d)
	case SchemeLRC:
		req := LRCRequest{DataBlocks: j.DataBlocks, EvenParity: j.EvenParity, LRC: j.LRC}
		if verify {
			return req.Verify(d)
		}
		return req.Encode(d)
	case SchemeCRC:
		req := CRCRequest{Data: j.Data, Divisor: j.Divisor}
		if verify {
			return req.Verify(d)
		}
		return req.Encode(d)
	case SchemeChecksum:
		req := ChecksumRequest{Data: j.Data, BlockSize: j.BlockSize}
		if verify {
			return req.Verify(d)
		}
		return req.Encode(d)
	case SchemeHamming:
		req := HammingRequest{Data: j.Data}
		if verify {
			return req.Verify()
		}
		return req.Encode()
	}
	return nil, fmt.Errorf("unhandled scheme %q", j.Scheme)
}

// LoadJobs reads a batch file holding a list of jobs. Files ending in .json
// are decoded as JSON, everything else as YAML.
func LoadJobs(path string) ([]Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}

	var jobs []Job
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &jobs)
	} else {
		err = yaml.Unmarshal(data, &jobs)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse jobs file %s: %w", path, err)
	}
	if len(jobs) == 0 {
		return nil, fmt.Errorf("jobs file %s contains no jobs", path)
	}
	return jobs, nil
}
