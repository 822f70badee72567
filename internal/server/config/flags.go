package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string     gRPC bind address (e.g., ":50051")
//	-d string     PostgreSQL DSN; empty for the in-memory store
//	-s string     token signing secret
//	-l string     log level
//	-t duration   graceful shutdown timeout (e.g., "5s")
func parseFlags(config *Config, args []string) error {
	args = flagx.FilterArgs(args, "-a", "-d", "-s", "-l", "-t")

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.DurationVar(&config.ShutdownTimeout, "t", config.ShutdownTimeout, "graceful shutdown timeout")

	return fs.Parse(args)
}
