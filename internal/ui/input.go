package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MFACodeLength is the number of digits in a TOTP token code.
const MFACodeLength = 6

// ValidMFACode reports whether code is exactly six ASCII digits.
func ValidMFACode(code string) bool {
	if len(code) != MFACodeLength {
		return false
	}
	return strings.Trim(code, "0123456789") == ""
}

// ReadMFACode asks for the token code of the device serial on stderr. Only
// digits are accepted and enter is ignored until six are typed. Esc and
// Ctrl+C return ErrCancelled.
func ReadMFACode(serial string) (string, error) {
	p := tea.NewProgram(newMFAModel(serial), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	if m, ok := final.(mfaModel); ok && m.done {
		return m.code.Value(), nil
	}
	return "", ErrCancelled
}

type mfaModel struct {
	serial   string
	code     textinput.Model
	hint     string
	done     bool
	quitting bool
}

func newMFAModel(serial string) mfaModel {
	ti := textinput.New()
	ti.Placeholder = strings.Repeat("0", MFACodeLength)
	ti.CharLimit = MFACodeLength
	ti.Width = MFACodeLength + 1
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '*'
	ti.Focus()
	return mfaModel{serial: serial, code: ti}
}

func (m mfaModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m mfaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			if !ValidMFACode(m.code.Value()) {
				m.hint = "enter all six digits"
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case tea.KeyRunes:
			if strings.Trim(string(key.Runes), "0123456789") != "" {
				m.hint = "digits only"
				return m, nil
			}
		}
		m.hint = ""
	}

	var cmd tea.Cmd
	m.code, cmd = m.code.Update(msg)
	return m, cmd
}

func (m mfaModel) View() string {
	if m.done {
		return ""
	}
	if m.quitting {
		return quitTextStyle.Render("Cancelled.")
	}

	var b strings.Builder
	b.WriteString("\n" + titleStyle.Render("MFA code") + " " + DimStyle.Render(m.serial) + "\n\n")
	b.WriteString(m.code.View() + "\n")
	if m.hint != "" {
		b.WriteString(errStyle.Render(m.hint) + "\n")
	}
	b.WriteString("\n")
	return b.String()
}
