package config

import (
	"flag"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/orgchart/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-m string   gRPC health bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret
//	-t int      JWT session time, seconds
//	-i string   JWT issuer
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-r string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
//	-l string   log backend ("slog" or "zap")
//
// Only the flags listed above are parsed; everything else in args is left
// for other components (the -c/-config file path, for instance).
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-m", "-d", "-s", "-t", "-i", "-u", "-p", "-b", "-r", "-e", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "address and port to run HTTP server")
	fs.StringVar(&config.EndpointAddrGRPC, "m", config.EndpointAddrGRPC, "address and port to run gRPC health server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")

	fs.StringVar(&config.JWT.Secret, "s", config.JWT.Secret, "JWT secret")
	sessionTime := fs.Int64("t", int64(config.JWT.SessionTime/time.Second), "JWT session time (in seconds)")
	fs.StringVar(&config.JWT.Issuer, "i", config.JWT.Issuer, "JWT issuer")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "r", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.LogBackend, "l", config.LogBackend, "log backend (slog|zap)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if !validSessionSeconds(*sessionTime) {
		panic(fmt.Sprintf("session time must be between 0 and %d seconds", maxSessionSeconds))
	}
	config.JWT.SessionTime = secondsToDuration(*sessionTime)
}

// maxSessionSeconds is the largest session time that fits a time.Duration.
const maxSessionSeconds = math.MaxInt64 / int64(time.Second)

func validSessionSeconds(s int64) bool {
	return s >= 0 && s <= maxSessionSeconds
}

func secondsToDuration(s int64) time.Duration {
	return time.Duration(s) * time.Second
}
