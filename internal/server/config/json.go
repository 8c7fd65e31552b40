package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/orgchart/internal/flagx"
	"github.com/dmitrijs2005/orgchart/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Every field is
// optional: keys absent from the file leave the current value untouched.
//
// The jwt section is kept raw and decoded field by field, so that a value of
// the wrong type (the section itself included) falls back to the default
// instead of failing the load.
type JsonConfig struct {
	EndpointAddrHTTP    string          `json:"endpoint_addr_http"`
	EndpointAddrGRPC    string          `json:"endpoint_addr_grpc"`
	DatabaseDSN         string          `json:"database_dsn"`
	JWT                 json.RawMessage `json:"jwt"`
	S3RootUser          string          `json:"s3_root_user"`
	S3RootPassword      string          `json:"s3_root_password"`
	S3Bucket            string          `json:"s3_bucket"`
	S3Region            string          `json:"s3_region"`
	S3BaseEndpoint      string          `json:"s3_base_endpoint"`
	LogBackend          string          `json:"log_backend"`
	HealthCheckInterval timex.Duration  `json:"health_check_interval"`
}

// parseJson overlays values from the JSON file named by -c or -config.
// Without either flag nothing is loaded. An unreadable file or invalid JSON
// panics, same as a bad flag value.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigFilePath(args)
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{
		EndpointAddrHTTP:    config.EndpointAddrHTTP,
		EndpointAddrGRPC:    config.EndpointAddrGRPC,
		DatabaseDSN:         config.DatabaseDSN,
		S3RootUser:          config.S3RootUser,
		S3RootPassword:      config.S3RootPassword,
		S3Bucket:            config.S3Bucket,
		S3Region:            config.S3Region,
		S3BaseEndpoint:      config.S3BaseEndpoint,
		LogBackend:          config.LogBackend,
		HealthCheckInterval: timex.Duration{Duration: config.HealthCheckInterval},
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.DatabaseDSN = c.DatabaseDSN
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	config.LogBackend = c.LogBackend
	config.HealthCheckInterval = c.HealthCheckInterval.Duration

	applyJWT(&config.JWT, c.JWT)
}

// applyJWT copies secret, sessionTime (whole seconds) and issuer from the raw
// jwt section. Absent keys and values of the wrong type are skipped.
func applyJWT(dst *JWT, section json.RawMessage) {
	var raw map[string]json.RawMessage
	if len(section) == 0 || json.Unmarshal(section, &raw) != nil || raw == nil {
		return
	}

	var s string
	if v, ok := raw["secret"]; ok && json.Unmarshal(v, &s) == nil {
		dst.Secret = s
	}

	var seconds int64
	if v, ok := raw["sessionTime"]; ok && json.Unmarshal(v, &seconds) == nil && validSessionSeconds(seconds) {
		dst.SessionTime = secondsToDuration(seconds)
	}

	var issuer string
	if v, ok := raw["issuer"]; ok && json.Unmarshal(v, &issuer) == nil {
		dst.Issuer = issuer
	}
}
