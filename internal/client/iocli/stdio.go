package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio IO поверх потоков процесса. Подсказки пишутся в prompts,
// чтобы вывод команд в out можно было перенаправить.
type Stdio struct {
	in      *bufio.Reader
	out     io.Writer
	prompts io.Writer
	fd      int
	isTerm  func(fd int) bool
}

// NewStdio creates an IO over os.Stdin, os.Stdout and os.Stderr
func NewStdio() IO {
	return NewStreams(os.Stdin, os.Stdout, os.Stderr, int(os.Stdin.Fd()))
}

// NewStreams creates an IO over arbitrary streams. fd терминала нужен для
// ввода пароля без эха; если fd не терминал, пароль читается строкой из in.
func NewStreams(in io.Reader, out, prompts io.Writer, fd int) *Stdio {
	return &Stdio{
		in:      bufio.NewReader(in),
		out:     out,
		prompts: prompts,
		fd:      fd,
		isTerm:  term.IsTerminal,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// ReadInput reads one line without the trailing newline.
// Последняя строка без перевода строки тоже принимается.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.prompts, prompt)
	return s.readLine()
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	_, _ = fmt.Fprint(s.prompts, prompt)
	if !s.isTerm(s.fd) {
		return s.readLine()
	}

	pw, err := term.ReadPassword(s.fd)
	_, _ = fmt.Fprintln(s.prompts)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}

func (s *Stdio) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
