package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/orgchart/internal/flagx"
	"github.com/dmitrijs2005/orgchart/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Keys absent from the file keep the value already in Config.
type JsonConfig struct {
	ServerAddr     string         `json:"server_addr"`
	Token          string         `json:"token"`
	RequestTimeout timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Panics on read or unmarshal errors.
func parseJson(cfg *Config, args []string) {
	jsonConfigFile := flagx.ConfigFilePath(args)
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	jc := JsonConfig{
		ServerAddr:     cfg.ServerAddr,
		Token:          cfg.Token,
		RequestTimeout: timex.Duration{Duration: cfg.RequestTimeout},
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	cfg.ServerAddr = jc.ServerAddr
	cfg.Token = jc.Token
	cfg.RequestTimeout = jc.RequestTimeout.Duration
}
