package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх stdin/stdout процесса
type Stdio struct {
	in     *bufio.Reader
	stdin  *os.File
	stdout *os.File
}

// NewStdio создает IO для текущего процесса.
// Один bufio.Reader на весь процесс, иначе при вводе через pipe
// буферизованные строки терялись бы между вопросами.
func NewStdio() IO {
	return &Stdio{
		in:     bufio.NewReader(os.Stdin),
		stdin:  os.Stdin,
		stdout: os.Stdout,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.stdout, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.stdout, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.stdout.Write(p)
}

// ReadInput печатает prompt и читает одну строку без концевых пробелов.
// Последняя строка без перевода строки тоже возвращается.
func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input != "" {
			return strings.TrimSpace(input), nil
		}
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// InputIsTerminal сообщает, что stdin интерактивный
func (s *Stdio) InputIsTerminal() bool {
	return term.IsTerminal(int(s.stdin.Fd()))
}

// OutputIsTerminal сообщает, что stdout терминал (для раскраски)
func (s *Stdio) OutputIsTerminal() bool {
	return term.IsTerminal(int(s.stdout.Fd()))
}
