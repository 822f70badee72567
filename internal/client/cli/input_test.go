package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestPromptField(t *testing.T) {
	var out bytes.Buffer
	got, err := promptField(rdr("  a@x.com \n"), &out, fieldEmail)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", got)
	assert.Equal(t, "Email: ", out.String())
}

func TestPromptField_LastLineWithoutNewline(t *testing.T) {
	got, err := promptField(rdr("Ann"), io.Discard, fieldName)
	require.NoError(t, err)
	assert.Equal(t, "Ann", got)
}

func TestPromptField_Blank(t *testing.T) {
	_, err := promptField(rdr("   \n"), io.Discard, fieldEmail)
	require.ErrorIs(t, err, errEmptyField)
	assert.Contains(t, err.Error(), "email")

	_, err = promptField(rdr(""), io.Discard, fieldEmail)
	assert.ErrorIs(t, err, io.EOF)
}

func TestPromptPassword(t *testing.T) {
	old := readPassword
	t.Cleanup(func() { readPassword = old })

	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }
	var out bytes.Buffer
	pw, err := promptPassword(&out)
	require.NoError(t, err)
	assert.Equal(t, []byte("secret"), pw)
	assert.Equal(t, "Password (hidden): \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, nil }
	_, err = promptPassword(io.Discard)
	assert.ErrorIs(t, err, errEmptyField)

	boom := errors.New("boom")
	readPassword = func(int) ([]byte, error) { return nil, boom }
	_, err = promptPassword(io.Discard)
	assert.ErrorIs(t, err, boom)
}
