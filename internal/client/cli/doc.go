// Package cli provides the gophauth command-line client.
//
// Commands:
//
//	register   create an account and sign in
//	login      sign in with email and password
//	verify     check the stored token with the server and refresh it
//	whoami     show the signed-in identity from the local session
//	logout     forget the local session
//	ping       check that the server is reachable
//
// With a command on the command line the client runs it once and exits.
// Without one it starts an interactive prompt (see runREPL).
package cli
