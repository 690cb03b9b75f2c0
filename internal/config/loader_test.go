package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rileyhilliard/bwmon/internal/errors"
	"github.com/rileyhilliard/bwmon/internal/graph"
	"github.com/rileyhilliard/bwmon/internal/units"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("bwmon", pflag.ContinueOnError)
	fs.StringP("interface", "i", "", "")
	fs.StringP("delay", "d", DefaultDelay, "")
	fs.String("scale", DefaultScale, "")
	fs.Bool("peak", false, "")
	fs.IntP("lines", "l", 0, "")
	fs.String("metrics-addr", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, time.Second, cfg.DelayDuration())
	assert.Equal(t, units.Binary, cfg.UnitSystem())
	assert.Equal(t, graph.ZeroToMax, cfg.ScaleMode())
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
interface: wlan0
delay: 0.5
units: decimal
scale: sync
peak: true
lines: 8
colors: false
metrics_addr: ":9101"
`)

	cfg, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "wlan0", cfg.Interface)
	assert.Equal(t, 500*time.Millisecond, cfg.DelayDuration())
	assert.Equal(t, units.Decimal, cfg.UnitSystem())
	assert.Equal(t, graph.SynchronizedZeroToMax, cfg.ScaleMode())
	assert.True(t, cfg.Peak)
	assert.Equal(t, 8, cfg.Lines)
	assert.False(t, cfg.Colors)
	assert.Equal(t, ":9101", cfg.MetricsAddr)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "interface: wlan0\ndelay: 2\nscale: min-max\n")
	t.Setenv("BWMON_DELAY", "3")
	t.Setenv("BWMON_METRICS_ADDR", "127.0.0.1:9000")

	v := New()
	fs := testFlags()
	require.NoError(t, BindFlags(v, fs))
	require.NoError(t, fs.Parse([]string{"-i", "eth1"}))

	cfg, err := Load(v, path)
	require.NoError(t, err)

	assert.Equal(t, "eth1", cfg.Interface, "flag beats file")
	assert.Equal(t, 3*time.Second, cfg.DelayDuration(), "env beats file")
	assert.Equal(t, "min-max", cfg.Scale, "file beats unset flag default")
	assert.Equal(t, "127.0.0.1:9000", cfg.MetricsAddr)
}

func TestLoad_BadFile(t *testing.T) {
	path := writeConfig(t, "delay: [unterminated\n")

	_, err := Load(New(), path)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestFind(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := Find("")
	require.NoError(t, err)
	assert.Empty(t, path, "no global config yet")

	global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
	require.NoError(t, os.MkdirAll(filepath.Dir(global), 0o755))
	require.NoError(t, os.WriteFile(global, []byte("units: decimal\n"), 0o644))

	path, err = Find("")
	require.NoError(t, err)
	assert.Equal(t, global, path)

	explicit := writeConfig(t, "")
	path, err = Find(explicit)
	require.NoError(t, err)
	assert.Equal(t, explicit, path)

	_, err = Find(filepath.Join(home, "missing.yaml"))
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestParseDelay(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "1", want: time.Second},
		{in: "0.1", want: 100 * time.Millisecond},
		{in: " 2.5 ", want: 2500 * time.Millisecond},
		{in: "750ms", want: 750 * time.Millisecond},
		{in: "1m", want: time.Minute},
		{in: "fast", wantErr: true},
		{in: "1e12", wantErr: true},
		{in: "-1e12", wantErr: true},
		{in: "NaN", wantErr: true},
		{in: "Inf", wantErr: true},
		{in: "86400", want: 24 * time.Hour},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDelay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
