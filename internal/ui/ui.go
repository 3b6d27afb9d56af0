// Package ui is the assistant's user interaction surface: blocking text
// dialogs plus informational and error messages.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// UserInterface is everything the configuration bootstrap needs from the
// terminal. Dialog blocks until the user answers.
type UserInterface interface {
	Dialog(prompt string) string
	Info(message string)
	Error(message string)
}

// SecretPrompter is implemented by interfaces that can read an answer
// without echoing it.
type SecretPrompter interface {
	SecretDialog(prompt string) string
}

// AskSecret uses SecretDialog when u supports it and Dialog otherwise.
func AskSecret(u UserInterface, prompt string) string {
	if sp, ok := u.(SecretPrompter); ok {
		return sp.SecretDialog(prompt)
	}
	return u.Dialog(prompt)
}

var (
	infoMarkStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	errorMarkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	promptStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	hintStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// printer writes info messages to out and errors to errOut.
type printer struct {
	out    io.Writer
	errOut io.Writer
}

func (p printer) Info(message string) {
	fmt.Fprintf(p.out, "%s %s\n", infoMarkStyle.Render("ℹ"), message)
}

func (p printer) Error(message string) {
	fmt.Fprintf(p.errOut, "%s %s\n", errorMarkStyle.Render("✗"), message)
}

// New returns the interactive UI when both stdin and
// stdout are terminals, and the line-based UI otherwise or when plain is set.
func New(plain bool) UserInterface {
	if !plain && isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return NewInteractive(os.Stdin, os.Stdout, os.Stderr)
	}
	return NewTerminal(os.Stdin, os.Stdout, os.Stderr)
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
