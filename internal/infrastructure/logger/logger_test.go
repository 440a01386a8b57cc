package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, "stdout", cfg.Output)
	assert.NotEmpty(t, cfg.TimeFormat)
}

func TestProductionConfig(t *testing.T) {
	cfg := ProductionConfig()
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.Level)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
	}{
		{name: "console format", cfg: DefaultConfig()},
		{name: "json format", cfg: ProductionConfig()},
		{name: "debug level", cfg: &Config{Level: "debug", Format: "json", Output: "stdout"}},
		{name: "warn alias", cfg: &Config{Level: "warning", Format: "json", Output: "stderr"}},
		{name: "unknown level falls back to info", cfg: &Config{Level: "verbose", Format: "json", Output: "stdout"}},
		{name: "empty time format uses default layout", cfg: &Config{Level: "info", Format: "json", Output: "stdout"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			log.Info("probe")
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	log, err := New(&Config{Level: "info", Format: "json", Output: path, TimeFormat: defaultTimeLayout})
	require.NoError(t, err)

	log.Info("written to file")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
}

func TestNew_UnwritableFileFallsBackToStdout(t *testing.T) {
	log, err := New(&Config{Level: "info", Format: "json", Output: "/nonexistent-dir/app.log"})
	require.NoError(t, err)
	log.Info("still works")
}

func TestNewForEnvironment(t *testing.T) {
	for _, env := range []string{"production", "development", "test", ""} {
		log, err := NewForEnvironment(env)
		require.NoError(t, err, env)
		require.NotNil(t, log, env)
	}
}
