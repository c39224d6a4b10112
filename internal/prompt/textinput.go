package prompt

import (
	"errors"
	"fmt"
	"strings"

	ti "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrCancelled = errors.New("cancelled by user")

type textinput struct {
	textInput ti.Model
	err       error
	done      bool
	prompt    string
}

func newTextinput(prompt, placeholder, value string, limit int) textinput {
	ti := ti.New()
	ti.SetValue(value)
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = limit
	ti.Width = limit

	return textinput{
		textInput: ti,
		err:       nil,
		prompt:    prompt,
	}
}

func (m textinput) Init() tea.Cmd {
	return ti.Blink
}

func (m textinput) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.err = ErrCancelled
			fallthrough
		case tea.KeyEnter, tea.KeyEsc:
			m.done = true
			return m, tea.Quit
		}

	// We handle errors just like any other message
	case error:
		m.err = msg
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textinput) View() string {
	if m.done {
		return ""
	}

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n",
		m.prompt,
		m.textInput.View(),
		"(press <enter> to submit)",
	)
}

// value is what was typed, or the placeholder when nothing was
func (m textinput) value() string {
	if value := strings.TrimSpace(m.textInput.Value()); value != "" {
		return value
	}
	return m.textInput.Placeholder
}

// TextInput asks for a single line of text of at most limit characters.
// Submitting an empty line returns the placeholder.
func TextInput(prompt, placeholder, value string, limit int) (string, error) {
	p := tea.NewProgram(newTextinput(prompt, placeholder, value, limit))
	m, err := p.Run()
	if err != nil {
		return "", err
	}

	model, ok := m.(textinput)
	if !ok {
		return "", fmt.Errorf("unexpected model %T", m)
	}
	if model.err != nil {
		return "", model.err
	}

	return model.value(), nil
}
