package ui

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Interactive runs every dialog as a small bubbletea program with an
// editable text field. Esc or Ctrl+C abandons the dialog with an empty
// answer.
type Interactive struct {
	printer
	in io.Reader
}

// NewInteractive creates an interactive UI. in and out should be a terminal.
func NewInteractive(in io.Reader, out, errOut io.Writer) *Interactive {
	return &Interactive{
		printer: printer{out: out, errOut: errOut},
		in:      in,
	}
}

func (i *Interactive) Dialog(prompt string) string {
	return i.run(newDialogModel(prompt, false))
}

func (i *Interactive) SecretDialog(prompt string) string {
	return i.run(newDialogModel(prompt, true))
}

func (i *Interactive) run(m dialogModel) string {
	p := tea.NewProgram(m, tea.WithInput(i.in), tea.WithOutput(i.out))
	final, err := p.Run()
	if err != nil {
		i.Error("Input failed: " + err.Error())
		return ""
	}
	if dm, ok := final.(dialogModel); ok {
		return dm.Value()
	}
	return ""
}

type dialogModel struct {
	prompt   string
	secret   bool
	input    textinput.Model
	done     bool
	canceled bool
}

func newDialogModel(prompt string, secret bool) dialogModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 1024
	ti.Width = 60
	if secret {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	ti.Focus()

	return dialogModel{
		prompt: prompt,
		secret: secret,
		input:  ti,
	}
}

func (m dialogModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m dialogModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.done = true
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m dialogModel) View() string {
	var b strings.Builder
	b.WriteString(m.prompt)
	b.WriteString("\n")

	switch {
	case m.canceled:
		b.WriteString(hintStyle.Render("(cancelled)"))
		b.WriteString("\n")
	case m.done:
		answer := m.Value()
		if m.secret {
			answer = strings.Repeat("•", len([]rune(answer)))
		}
		b.WriteString(promptStyle.Render(">") + " " + answer + "\n")
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter to confirm • esc to cancel"))
		b.WriteString("\n")
	}
	return b.String()
}

// Value is the submitted answer, or "" if the dialog was cancelled.
func (m dialogModel) Value() string {
	if m.canceled {
		return ""
	}
	return strings.TrimSpace(m.input.Value())
}
