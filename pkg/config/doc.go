// Package config loads process-wide, read-only configuration from
// environment variables, optionally seeded from .env files.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
// annotate a struct with `env` tags, call Load once, and thread the
// value down explicitly. Each configuration type is parsed at most once
// per process and cached, matching the "set once, read everywhere"
// lifecycle - there is no runtime reconfiguration.
//
//	type AppConfig struct {
//	    DataDir string `env:"DATA_DIR" envDefault:"/var/lib/app"`
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// fetch.Config and storage.S3Config carry env tags and load the same
// way. ResetCache and ForceReload exist for tests that mutate the
// environment.
package config
