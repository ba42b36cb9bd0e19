package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karatsuba/toolkit/chrono"
)

func TestLoadFile(t *testing.T) {
	configYAML := []byte(`
timeZone: "Asia/Tokyo"
logLevel: 3
logColors: true
logFile: "/tmp/ktb.log"
`)
	path := filepath.Join(t.TempDir(), "ktb_config.yaml")
	require.NoError(t, os.WriteFile(path, configYAML, 0644))

	c := defaults()
	require.NoError(t, c.loadFile(path))

	assert.Equal(t, "Asia/Tokyo", c.TimeZone)
	assert.Equal(t, Debug, c.LogLevel)
	assert.True(t, c.LogColors)
	assert.Equal(t, "/tmp/ktb.log", c.LogFile)
	// untouched defaults survive
	assert.Equal(t, int64(10*1024*1024), c.LogFileMaxSize)
}

func TestLoadFileMissingIsFine(t *testing.T) {
	c := defaults()
	require.NoError(t, c.loadFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Equal(t, defaults(), c)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("KTB_TIMEZONE", "Europe/Paris")
	t.Setenv("KTB_LOGLEVEL", "1")

	c := defaults()
	require.NoError(t, env.ParseWithOptions(&c, env.Options{Prefix: EnvPrefix}))

	assert.Equal(t, "Europe/Paris", c.TimeZone)
	assert.Equal(t, Warn, c.LogLevel)
}

func TestApplyTimeZone(t *testing.T) {
	prev := chrono.DefaultLocation()
	defer chrono.SetDefaultLocation(prev)

	c := defaults()
	c.TimeZone = "Asia/Tokyo"
	c.applyTimeZone()
	assert.Equal(t, "Asia/Tokyo", chrono.DefaultLocation().String())

	// unresolvable zone leaves the previous default in place
	c.TimeZone = "Not/AZone"
	c.applyTimeZone()
	assert.Equal(t, "Asia/Tokyo", chrono.DefaultLocation().String())
}

func TestLogLevelString(t *testing.T) {
	assert.Equal(t, "Error", Error.String())
	assert.Equal(t, "Trace", Trace.String())
}
