package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "# Graph scale: zero-max, min-max or sync.")
	assert.Contains(t, content, `delay: "1"`)
	assert.Contains(t, content, "colors: true")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.NoError(t, Validate(cfg))
}

func TestWriteDefault_Exists(t *testing.T) {
	path := writeConfig(t, "units: decimal\n")

	err := WriteDefault(path, false)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	require.NoError(t, WriteDefault(path, true))
	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "binary", cfg.Units)
}

func TestSet(t *testing.T) {
	path := writeConfig(t, "# my settings\nunits: decimal # keep\nscale: sync\n")

	require.NoError(t, Set(path, "scale", "min-max"))
	require.NoError(t, Set(path, "lines", "6"))
	require.NoError(t, Set(path, "peak", "true"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# my settings")
	assert.Contains(t, string(data), "# keep")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "decimal", cfg.Units)
	assert.Equal(t, "min-max", cfg.Scale)
	assert.Equal(t, 6, cfg.Lines)
	assert.True(t, cfg.Peak)
}

func TestSet_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	require.NoError(t, Set(path, "interface", "eth0"))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "eth0", cfg.Interface)
}

func TestSet_UnknownKey(t *testing.T) {
	path := writeConfig(t, "units: decimal\n")

	err := Set(path, "colour", "true")
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
	assert.Contains(t, err.Error(), "metrics_addr")
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert.Len(t, keys, 10)
	assert.IsIncreasing(t, keys)
}
