// Package config loads runtime configuration for the gophauth CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. GOPHAUTH_* environment variables.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-a string     address:port of the server's gRPC endpoint
//	-t duration   per-request timeout (e.g., "5s")
//	-f string     path of the local session database
//
// # JSON schema
//
// Durations may be strings like "5s" or integer nanoseconds:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "request_timeout": "5s",
//	  "session_db": "gophauth.db"
//	}
package config
