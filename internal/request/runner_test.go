package request

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	edc "github.com/sqpp/edc-golang"
	"github.com/sqpp/edc-golang/internal/config"
)

func TestRunEncode(t *testing.T) {
	r := NewRunner(nil, DefaultDefaults(), 1)

	out := r.Run(Job{Name: "h", Scheme: "Hamming", Data: "1011"})
	require.NoError(t, out.Err())
	assert.Equal(t, SchemeHamming, out.Scheme)
	assert.Equal(t, OpEncode, out.Op)
	assert.Nil(t, out.Valid)

	res, ok := out.Result.(*edc.HammingResult)
	require.True(t, ok)
	assert.Equal(t, "0110011", res.Codeword)
}

func TestRunVerify(t *testing.T) {
	r := NewRunner(nil, DefaultDefaults(), 1)

	out := r.Run(Job{Scheme: SchemeCRC, Op: OpVerify, Data: "1101011011100"})
	require.NoError(t, out.Err())
	require.NotNil(t, out.Valid)
	assert.True(t, *out.Valid)

	out = r.Run(Job{Scheme: SchemeCRC, Op: OpVerify, Data: "1101011011101"})
	require.NoError(t, out.Err())
	require.NotNil(t, out.Valid)
	assert.False(t, *out.Valid)
}

func TestRunErrors(t *testing.T) {
	r := NewRunner(nil, DefaultDefaults(), 1)

	tests := []struct {
		name string
		job  Job
	}{
		{"unknown scheme", Job{Scheme: "parity", Data: "1"}},
		{"unknown op", Job{Scheme: SchemeVRC, Op: "decode", Data: "1"}},
		{"missing scheme", Job{Data: "1"}},
		{"bad data", Job{Scheme: SchemeVRC, Data: "12"}},
		{"ragged blocks", Job{Scheme: SchemeLRC, DataBlocks: []string{"10", "101"}}},
		{"unknown generator", Job{Scheme: SchemeCRC, Data: "1", Divisor: "crc-7"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Run(tt.job)
			require.Error(t, out.Err())
			assert.Equal(t, KindValidation, out.ErrorKind)
			assert.NotEmpty(t, out.Error)
			assert.Nil(t, out.Result)
		})
	}
}

func TestClassify(t *testing.T) {
	_, err := edc.EncodeVRC("", edc.Even)
	assert.Equal(t, KindValidation, Classify(err))
	assert.Equal(t, KindValidation, Classify(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, KindInternal, Classify(fmt.Errorf("disk on fire")))
}

func TestRunAllKeepsOrder(t *testing.T) {
	r := NewRunner(nil, DefaultDefaults(), 3)

	jobs := make([]Job, 0, 32)
	for i := 0; i < 32; i++ {
		jobs = append(jobs, Job{Name: fmt.Sprintf("job-%d", i), Scheme: SchemeVRC, Data: edc.FormatBinary(uint64(i), 6)})
	}
	jobs = append(jobs, Job{Name: "broken", Scheme: SchemeChecksum, Data: "x"})

	outcomes, err := r.RunAll(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, outcomes, len(jobs))

	for i := 0; i < 32; i++ {
		assert.Equal(t, jobs[i].Name, outcomes[i].Name)
		require.NoError(t, outcomes[i].Err())
		res := outcomes[i].Result.(*edc.VRCResult)
		assert.Equal(t, jobs[i].Data, res.Data)
	}
	last := outcomes[len(outcomes)-1]
	assert.Equal(t, "broken", last.Name)
	assert.Equal(t, KindValidation, last.ErrorKind)
}

func TestRunAllCancelled(t *testing.T) {
	r := NewRunner(nil, DefaultDefaults(), 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.RunAll(ctx, []Job{{Scheme: SchemeHamming, Data: "1"}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultsFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Parity = "odd"
	cfg.Divisor = "crc-4"
	cfg.BlockSize = 4

	d, err := DefaultsFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, edc.Odd, d.Policy)
	assert.Equal(t, "10011", d.Divisor)
	assert.Equal(t, 4, d.BlockSize)

	cfg.Parity = "mark"
	_, err = DefaultsFromConfig(cfg)
	assert.Error(t, err)
}

func TestLoadJobs(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "jobs.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(`- name: frame
  scheme: lrc
  data_blocks: ["11100111", "11011101"]
  even_parity: false
- scheme: checksum
  op: verify
  data: "100110010011100100101101"
  block_size: 8
`), 0o644))

	jobs, err := LoadJobs(yamlPath)
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "frame", jobs[0].Name)
	assert.Equal(t, []string{"11100111", "11011101"}, jobs[0].DataBlocks)
	require.NotNil(t, jobs[0].EvenParity)
	assert.False(t, *jobs[0].EvenParity)
	assert.Equal(t, OpVerify, jobs[1].Op)
	assert.Equal(t, 8, jobs[1].BlockSize)

	outcomes, err := NewRunner(nil, DefaultDefaults(), 2).RunAll(context.Background(), jobs)
	require.NoError(t, err)
	require.NotNil(t, outcomes[1].Valid)
	assert.True(t, *outcomes[1].Valid)

	jsonPath := filepath.Join(dir, "jobs.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"scheme":"crc","data":"1101","divisor":"crc-3"}]`), 0o644))
	jobs, err = LoadJobs(jsonPath)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "crc-3", jobs[0].Divisor)

	emptyPath := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(emptyPath, []byte("[]\n"), 0o644))
	_, err = LoadJobs(emptyPath)
	assert.Error(t, err)

	_, err = LoadJobs(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
