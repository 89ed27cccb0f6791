package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogerio-castellano/product-catalog/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RotatingFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "catalog.log")

	log, err := New(config.LogConfig{Mode: "production", Level: "info", File: file, MaxSize: 1})
	require.NoError(t, err)

	log.Info("product created")
	log.Debug("below level")
	_ = log.Sync()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"product created"`)
	assert.NotContains(t, string(data), "below level")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Mode: "development", Level: "loud"})
	assert.ErrorContains(t, err, "invalid log level")
}

func TestNew_Stdout(t *testing.T) {
	log, err := New(config.LogConfig{Mode: "development", Level: "debug"})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1))
}
