package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_LoadsAllFields(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{
		"endpoint_addr_http":    "www.example:8000",
		"endpoint_addr_grpc":    "www.example:9000",
		"database_dsn":          "org.db",
		"jwt":                   map[string]any{"secret": "s3cr3t", "sessionTime": 120, "issuer": "org"},
		"s3_root_user":          "user",
		"s3_root_password":      "password",
		"s3_bucket":             "bucket",
		"s3_region":             "region",
		"s3_base_endpoint":      "base_endpoint",
		"log_backend":           "zap",
		"health_check_interval": "30s",
	})

	cfg := defaults()
	parseJson(cfg, []string{"-config", path})

	want := &Config{
		EndpointAddrHTTP:    "www.example:8000",
		EndpointAddrGRPC:    "www.example:9000",
		DatabaseDSN:         "org.db",
		JWT:                 JWT{Secret: "s3cr3t", SessionTime: 2 * time.Minute, Issuer: "org"},
		S3RootUser:          "user",
		S3RootPassword:      "password",
		S3Bucket:            "bucket",
		S3Region:            "region",
		S3BaseEndpoint:      "base_endpoint",
		LogBackend:          "zap",
		HealthCheckInterval: 30 * time.Second,
	}
	assert.Empty(t, cmp.Diff(want, cfg))
}

func Test_parseJson_AbsentKeysKeepCurrentValues(t *testing.T) {
	path := writeTempJSON(t, "", "", map[string]any{"s3_bucket": "photos"})

	cfg := defaults()
	parseJson(cfg, []string{"-c", path})

	want := defaults()
	want.S3Bucket = "photos"
	assert.Empty(t, cmp.Diff(want, cfg))
}

func Test_parseJson_JWTWrongTypesFallBackToDefaults(t *testing.T) {
	tests := []struct {
		name string
		jwt  any
		want JWT
	}{
		{
			name: "all wrong types",
			jwt:  map[string]any{"secret": 42, "sessionTime": "an hour", "issuer": true},
			want: JWT{Secret: "secret", SessionTime: time.Hour, Issuer: "auth0"},
		},
		{
			name: "partial section",
			jwt:  map[string]any{"issuer": "org"},
			want: JWT{Secret: "secret", SessionTime: time.Hour, Issuer: "org"},
		},
		{
			name: "negative session time ignored",
			jwt:  map[string]any{"sessionTime": -5},
			want: JWT{Secret: "secret", SessionTime: time.Hour, Issuer: "auth0"},
		},
		{
			name: "session time overflowing time.Duration ignored",
			jwt:  map[string]any{"sessionTime": int64(10000000000)},
			want: JWT{Secret: "secret", SessionTime: time.Hour, Issuer: "auth0"},
		},
		{
			name: "section is a string",
			jwt:  "oops",
			want: JWT{Secret: "secret", SessionTime: time.Hour, Issuer: "auth0"},
		},
		{
			name: "section is an array",
			jwt:  []any{"secret"},
			want: JWT{Secret: "secret", SessionTime: time.Hour, Issuer: "auth0"},
		},
		{
			name: "section is null",
			jwt:  nil,
			want: JWT{Secret: "secret", SessionTime: time.Hour, Issuer: "auth0"},
		},
		{
			name: "zero session time accepted",
			jwt:  map[string]any{"sessionTime": 0},
			want: JWT{Secret: "secret", SessionTime: 0, Issuer: "auth0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempJSON(t, "", "", map[string]any{"jwt": tt.jwt})

			cfg := defaults()
			parseJson(cfg, []string{"-c", path})

			assert.Equal(t, tt.want, cfg.JWT)
		})
	}
}

func TestSecondsToDuration_LargestValidValue(t *testing.T) {
	assert.True(t, validSessionSeconds(maxSessionSeconds))
	assert.False(t, validSessionSeconds(maxSessionSeconds+1))
	assert.Positive(t, secondsToDuration(maxSessionSeconds))
}

func Test_parseJson_NoFlagDoesNothing(t *testing.T) {
	cfg := defaults()
	parseJson(cfg, []string{"-a", ":1"})
	assert.Empty(t, cmp.Diff(defaults(), cfg))
}

func Test_parseJson_Panics(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "nope.json")
		require.Panics(t, func() { parseJson(defaults(), []string{"-c", missing}) })
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
		require.Panics(t, func() { parseJson(defaults(), []string{"-c", path}) })
	})
}
