package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/gophauth/internal/flagx"
)

// parseFlags reads -a, -t and -f from args, ignoring everything else
// (subcommands and their arguments included).
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, "-a", "-t", "-f")

	fs := flag.NewFlagSet("cli", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.SessionDB, "f", cfg.SessionDB, "session database file")

	return fs.Parse(args)
}
