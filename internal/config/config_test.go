package config

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func readYAML(t *testing.T, doc string) *viper.Viper {
	t.Helper()
	v := viper.New()
	v.SetConfigType("yaml")
	require.NoError(t, v.ReadConfig(bytes.NewBufferString(doc)))
	return v
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverrides(t *testing.T) {
	v := readYAML(t, `
window:
  width: 1024
  fps: 30
measure:
  modifier: Shift
watch:
  debounce: 2s
snapshot:
  height: 480
verbose: true
`)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 900, cfg.Window.Height)
	assert.Equal(t, 30, cfg.Window.FPS)
	assert.Equal(t, "shift", cfg.Measure.Modifier)
	assert.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	assert.True(t, cfg.Watch.Enabled)
	assert.Equal(t, 800, cfg.Snapshot.Width)
	assert.Equal(t, 480, cfg.Snapshot.Height)
	assert.True(t, cfg.Verbose)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("RAYMEASURE_LABEL_FONT_SIZE", "20")
	cfg, err := Load(viper.New())
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.Label.FontSize)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"zero width", "window:\n  width: 0\n"},
		{"negative fps", "window:\n  fps: -1\n"},
		{"unknown modifier", "measure:\n  modifier: hyper\n"},
		{"tiny font", "label:\n  font_size: 2\n"},
		{"negative debounce", "watch:\n  debounce: -1s\n"},
		{"zero snapshot", "snapshot:\n  width: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(readYAML(t, tt.doc))
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}

func TestYAMLRoundTripMatchesKeys(t *testing.T) {
	out, err := yaml.Marshal(Default())
	require.NoError(t, err)

	cfg, err := Load(readYAML(t, string(out)))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
