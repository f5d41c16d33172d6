// Package consoleui is the plain stdin/stdout front-end.
package consoleui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vylia99/contactbook/internal/ports"
)

// Console implements ports.UserInterface over a reader/writer pair.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

var _ ports.UserInterface = (*Console)(nil)

func (c *Console) ShowMessage(text string) {
	fmt.Fprintln(c.out, text)
}

func (c *Console) ShowError(text string) {
	fmt.Fprintf(c.out, "Error: %s\n", text)
}

// GetInput prints prompt and blocks for one line. It returns io.EOF once the
// input is exhausted; a final unterminated line is still delivered first.
func (c *Console) GetInput(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)

	line, err := c.in.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err == io.EOF && line != "" {
		return line, nil
	}
	if err != nil {
		return "", err
	}
	return line, nil
}
