package config

import (
	"os"
	"path/filepath"
	"time"
)

const DefaultServerURL = "http://localhost:8000/api/v1"

// Config holds runtime settings for the neatdog terminal client.
type Config struct {
	// ServerURL is the API base, origin plus "/api/v1".
	ServerURL string `env:"SERVER_URL"`
	// StorePath is the credential database file; ":memory:" keeps
	// credentials for the life of the process only.
	StorePath   string `env:"STORE_PATH"`
	StoreSecret string `env:"STORE_SECRET"`
	LogLevel    string `env:"LOG_LEVEL"`
	// RequestTimeout bounds each API call; zero means no timeout.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = DefaultServerURL
	c.StorePath = defaultStorePath()
	c.StoreSecret = ""
	c.LogLevel = "warn"
	c.RequestTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays the config
// file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".neatdog", "credentials.db")
	}
	return filepath.Join(dir, "neatdog", "credentials.db")
}
