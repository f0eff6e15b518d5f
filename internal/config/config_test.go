package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	edc "github.com/sqpp/edc-golang"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "even", cfg.Parity)
	assert.Equal(t, 8, cfg.BlockSize)
	assert.Equal(t, "crc-3", cfg.Divisor)
	assert.Equal(t, edc.BaudRate1200, cfg.Baud)
	assert.Equal(t, "text", cfg.Output)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edc.yaml")
	content := `parity: odd
block_size: 16
divisor: "10011"
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "odd", cfg.Parity)
	assert.Equal(t, 16, cfg.BlockSize)
	assert.Equal(t, "10011", cfg.Divisor)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// untouched keys keep their defaults
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, edc.BaudRate1200, cfg.Baud)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("block_size: 64\ndivisor: \"0101\"\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, edc.ErrBlockSize))
	assert.True(t, errors.Is(err, edc.ErrDivisorLeadingZero))
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("parity: [even"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config file")
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edc.yaml")
	cfg := DefaultConfig()
	cfg.Output = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
