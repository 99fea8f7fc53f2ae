package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storekit/pkg/config"
)

type sessionTestConfig struct {
	Timeout         time.Duration `env:"TEST_SESSION_TIMEOUT" envDefault:"30m"`
	CleanupInterval time.Duration `env:"TEST_SESSION_CLEANUP_INTERVAL" envDefault:"5m"`
}

type requiredTestConfig struct {
	Secret string `env:"TEST_REQUIRED_SECRET,required"`
}

func TestLoad_Defaults(t *testing.T) {
	config.ResetCache()

	var cfg sessionTestConfig
	err := config.Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Minute, cfg.Timeout)
	assert.Equal(t, 5*time.Minute, cfg.CleanupInterval)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_SESSION_TIMEOUT", "45m")

	var cfg sessionTestConfig
	err := config.Load(&cfg)
	require.NoError(t, err)

	assert.Equal(t, 45*time.Minute, cfg.Timeout)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Setenv("TEST_SESSION_TIMEOUT", "10m")

	var first sessionTestConfig
	require.NoError(t, config.Load(&first))

	// Environment changes after the first load are not observed.
	t.Setenv("TEST_SESSION_TIMEOUT", "20m")

	var second sessionTestConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, first.Timeout, second.Timeout)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.ResetCache()

	var cfg requiredTestConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	config.ResetCache()

	err := config.Load[sessionTestConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	config.ResetCache()

	assert.Panics(t, func() {
		var cfg requiredTestConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/does_not_exist.env")
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
