package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the orgctl CLI.
//
// Fields:
//   - ServerAddr: base URL of the org chart HTTP API.
//   - Token: bearer token for commands that need one (photo upload).
//   - RequestTimeout: per-request HTTP timeout.
type Config struct {
	ServerAddr     string
	Token          string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://127.0.0.1:8080"
	c.Token = ""
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	return load(os.Args[1:])
}

func load(args []string) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseFlags(cfg, args)
	return cfg
}
