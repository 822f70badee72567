package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

const (
	fieldEmail = "Email"
	fieldName  = "Display name"
)

var errEmptyField = errors.New("value required")

// readPassword is swapped out in tests.
var readPassword = term.ReadPassword

// promptField asks for one account field on a single line. Blank answers
// are rejected before anything reaches the server.
func promptField(reader *bufio.Reader, w io.Writer, field string) (string, error) {
	if _, err := fmt.Fprintf(w, "%s: ", field); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	v := strings.TrimSpace(line)
	if v == "" {
		return "", fmt.Errorf("%s: %w", strings.ToLower(field), errEmptyField)
	}
	return v, nil
}

// promptPassword reads the account password with echo off. Callers wipe the
// returned slice.
func promptPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Password (hidden): "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	if len(pw) == 0 {
		return nil, fmt.Errorf("password: %w", errEmptyField)
	}
	return pw, nil
}
