package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Terminal is a line-based UserInterface. It works on pipes as well as
// terminals.
type Terminal struct {
	printer
	reader *bufio.Reader
	// fd is the input file descriptor when the input is a terminal, else -1.
	fd int
}

// NewTerminal creates a line-based interface reading answers from in.
func NewTerminal(in io.Reader, out, errOut io.Writer) *Terminal {
	t := &Terminal{
		printer: printer{out: out, errOut: errOut},
		reader:  bufio.NewReader(in),
		fd:      -1,
	}
	if f, ok := in.(*os.File); ok && isTerminal(f) {
		t.fd = int(f.Fd())
	}
	return t
}

// Dialog prints prompt and returns the next input line with surrounding
// whitespace removed. End of input yields whatever was read so far.
func (t *Terminal) Dialog(prompt string) string {
	t.writePrompt(prompt)
	line, err := t.reader.ReadString('\n')
	if err != nil && line == "" {
		fmt.Fprintln(t.out)
		return ""
	}
	return strings.TrimSpace(line)
}

// SecretDialog reads without echo when the input is a terminal and falls
// back to Dialog otherwise.
func (t *Terminal) SecretDialog(prompt string) string {
	if t.fd < 0 {
		return t.Dialog(prompt)
	}
	t.writePrompt(prompt)
	b, err := term.ReadPassword(t.fd)
	fmt.Fprintln(t.out) // newline after hidden input
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (t *Terminal) writePrompt(prompt string) {
	fmt.Fprintln(t.out, prompt)
	fmt.Fprint(t.out, promptStyle.Render(">")+" ")
}
