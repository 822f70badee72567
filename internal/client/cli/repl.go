package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface used by the REPL and one-shot mode.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Verify(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
	Ping(ctx context.Context) error
}

var errUnknownCommand = errors.New("unknown command")

// commandName returns the first argument that is neither a flag nor a
// flag's value.
func commandName(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") {
			if !strings.Contains(arg, "=") {
				i++
			}
			continue
		}
		return arg
	}
	return ""
}

// dispatch runs a single command and reports its failure.
func dispatch(ctx context.Context, a execIface, cmd string) error {
	var err error

	switch cmd {
	case "register":
		err = a.Register(ctx)
	case "login":
		err = a.Login(ctx)
	case "verify":
		err = a.Verify(ctx)
	case "whoami":
		err = a.Whoami(ctx)
	case "logout":
		err = a.Logout(ctx)
	case "ping":
		err = a.Ping(ctx)
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: verify, whoami, logout, ping, exit")
		} else {
			printlnFn("Available commands: register, login, ping, exit")
		}
	default:
		printlnFn("Unknown command:", cmd)
		return fmt.Errorf("%w: %s", errUnknownCommand, cmd)
	}

	if err != nil {
		printlnFn(describe(err))
	}
	return err
}

// runREPL reads commands from scanner until EOF, "exit" or "quit".
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gophauth %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			_ = dispatch(ctx, a, cmd)
		}
	}
}
