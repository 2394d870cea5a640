package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const envPrefix = "NEATDOG_"

// dotenvFile is loaded before the environment is read. Variables already
// set in the environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays cfg with NEATDOG_* variables. Unset variables leave
// fields unchanged. Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		panic(err)
	}
}
