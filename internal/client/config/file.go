package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/neatdog/neatdog/internal/flagx"
	"github.com/neatdog/neatdog/internal/timex"
)

// FileConfig is the on-disk shape of a config file. Empty fields leave the
// current value alone.
type FileConfig struct {
	ServerURL      string          `json:"server_url" yaml:"server_url"`
	StorePath      string          `json:"store_path" yaml:"store_path"`
	StoreSecret    string          `json:"store_secret" yaml:"store_secret"`
	LogLevel       string          `json:"log_level" yaml:"log_level"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
}

// parseFile overlays cfg with the file named by -c/-config, if any.
// Panics on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		panic(err)
	}

	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.ServerURL != "" {
		cfg.ServerURL = fc.ServerURL
	}
	if fc.StorePath != "" {
		cfg.StorePath = fc.StorePath
	}
	if fc.StoreSecret != "" {
		cfg.StoreSecret = fc.StoreSecret
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
}
