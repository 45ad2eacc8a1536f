package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fetchkit/pkg/config"
)

type basicConfig struct {
	Name    string `env:"TEST_LOADER_NAME" envDefault:"fallback"`
	Retries int    `env:"TEST_LOADER_RETRIES" envDefault:"3"`
}

type requiredConfig struct {
	Token string `env:"TEST_LOADER_TOKEN,required"`
}

type cachedConfig struct {
	Value string `env:"TEST_LOADER_CACHED" envDefault:"initial"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		os.Unsetenv("TEST_LOADER_NAME")
		os.Unsetenv("TEST_LOADER_RETRIES")
		config.ResetCache()

		var cfg basicConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 3, cfg.Retries)
	})

	t.Run("env values win", func(t *testing.T) {
		t.Setenv("TEST_LOADER_NAME", "from-env")
		t.Setenv("TEST_LOADER_RETRIES", "7")
		config.ResetCache()

		var cfg basicConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 7, cfg.Retries)
	})

	t.Run("missing required field", func(t *testing.T) {
		os.Unsetenv("TEST_LOADER_TOKEN")
		config.ResetCache()

		var cfg requiredConfig
		err := config.Load(&cfg)
		require.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[basicConfig](nil)
		require.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("cached after first load", func(t *testing.T) {
		t.Setenv("TEST_LOADER_CACHED", "first")
		config.ResetCache()

		var cfg cachedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "first", cfg.Value)

		// Environment changes are invisible until a forced reload.
		t.Setenv("TEST_LOADER_CACHED", "second")

		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Value)

		var reloaded cachedConfig
		require.NoError(t, config.ForceReload(&reloaded))
		assert.Equal(t, "second", reloaded.Value)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		os.Unsetenv("TEST_LOADER_TOKEN")
		config.ResetCache()

		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("loads values from file", func(t *testing.T) {
		os.Unsetenv("TEST_LOADER_NAME")
		os.Unsetenv("TEST_LOADER_RETRIES")
		config.ResetCache()

		envFile := filepath.Join(t.TempDir(), ".env.test")
		require.NoError(t, os.WriteFile(envFile, []byte("TEST_LOADER_NAME=from-file\n"), 0644))
		t.Cleanup(func() { os.Unsetenv("TEST_LOADER_NAME") })

		require.NoError(t, config.LoadEnv(envFile))

		var cfg basicConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "from-file", cfg.Name)
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
		require.ErrorIs(t, err, config.ErrLoadingEnvFile)
	})

	t.Run("must variant panics", func(t *testing.T) {
		assert.Panics(t, func() {
			config.MustLoadEnv(filepath.Join(t.TempDir(), "nope.env"))
		})
	})
}
