package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type confirmState int

const (
	confirmPending confirmState = iota
	confirmAnswered
	confirmCanceled
)

var confirmKeys = struct {
	yes, no, toggle, accept, cancel key.Binding
}{
	yes:    key.NewBinding(key.WithKeys("y", "Y")),
	no:     key.NewBinding(key.WithKeys("n", "N")),
	toggle: key.NewBinding(key.WithKeys("left", "right", "h", "l", "tab")),
	accept: key.NewBinding(key.WithKeys("enter")),
	cancel: key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

// ConfirmModel asks a yes/no question. It starts on "No"; y and n answer
// immediately, enter accepts the highlighted button.
type ConfirmModel struct {
	Message string

	theme *Theme
	yes   bool
	state confirmState
}

// NewConfirm returns a pending dialog.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	return ConfirmModel{Message: message, theme: theme}
}

func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.state != confirmPending {
		return m, nil
	}

	switch {
	case key.Matches(k, confirmKeys.yes):
		m.yes, m.state = true, confirmAnswered
	case key.Matches(k, confirmKeys.no):
		m.yes, m.state = false, confirmAnswered
	case key.Matches(k, confirmKeys.toggle):
		m.yes = !m.yes
	case key.Matches(k, confirmKeys.accept):
		m.state = confirmAnswered
	case key.Matches(k, confirmKeys.cancel):
		m.state = confirmCanceled
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	t := m.theme
	button := func(label string, active bool) string {
		if active {
			return t.ActiveButton.Render(label)
		}
		return t.InactiveButton.Render(label)
	}

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		button(" No ", !m.yes)+"  "+button(" Yes ", m.yes),
		"",
		t.Subtle.Render("y/n answer • ←/→ switch • enter accept • esc cancel"),
	))
}

// Highlighted reports whether "Yes" is the current selection.
func (m ConfirmModel) Highlighted() bool { return m.yes }

// Done is true once the question was answered or dismissed.
func (m ConfirmModel) Done() bool { return m.state != confirmPending }

// Canceled is true when the dialog was dismissed without an answer.
func (m ConfirmModel) Canceled() bool { return m.state == confirmCanceled }

// Result is true only for an explicit "Yes".
func (m ConfirmModel) Result() bool { return m.state == confirmAnswered && m.yes }
