package iocli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStreams(input string) (*Stdio, *bytes.Buffer, *bytes.Buffer) {
	out, prompts := &bytes.Buffer{}, &bytes.Buffer{}
	s := NewStreams(strings.NewReader(input), out, prompts, -1)
	return s, out, prompts
}

func TestStdio_OutputGoesToOut(t *testing.T) {
	s, out, prompts := newTestStreams("")

	s.Println("hello", "world")
	s.Printf("n=%d\n", 1)
	_, err := s.Write([]byte("raw"))
	require.NoError(t, err)

	assert.Equal(t, "hello world\nn=1\nraw", out.String())
	assert.Empty(t, prompts.String())
}

// Имя и пароль читаются из одного буфера подряд
func TestStdio_ReadInputThenPassword(t *testing.T) {
	s, out, prompts := newTestStreams("alice\n s3cret \n")

	name, err := s.ReadInput("Username: ")
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	pw, err := s.ReadPassword("Password: ")
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)

	assert.Equal(t, "Username: Password: ", prompts.String())
	assert.Empty(t, out.String())
}

func TestStdio_ReadInputWithoutNewline(t *testing.T) {
	s, _, _ := newTestStreams("last")

	line, err := s.ReadInput("> ")
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = s.ReadInput("> ")
	assert.ErrorIs(t, err, io.EOF)
}

func TestNewStdio(t *testing.T) {
	assert.NotNil(t, NewStdio())
}
