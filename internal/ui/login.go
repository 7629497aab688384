package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/moviefav/internal/shared"
	"github.com/desertthunder/moviefav/internal/store"
)

// loginForm is the email and password form shown in [LoginView].
type loginForm struct {
	inputs     []textinput.Model
	focused    int
	err        error
	submitting bool
}

func newLoginForm() loginForm {
	email := textinput.New()
	email.Placeholder = "email"
	email.Prompt = "Email:    "
	email.CharLimit = 128

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "Password: "
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	return loginForm{inputs: []textinput.Model{email, password}}
}

// focus moves the cursor to input i.
func (f *loginForm) focus(i int) tea.Cmd {
	f.focused = i
	for j := range f.inputs {
		f.inputs[j].Blur()
	}
	return f.inputs[i].Focus()
}

func (f *loginForm) reset() {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.err = nil
	f.submitting = false
	f.focused = 0
}

func (f *loginForm) values() (email, password string) {
	return strings.TrimSpace(f.inputs[0].Value()), f.inputs[1].Value()
}

func (f *loginForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focused], cmd = f.inputs[f.focused].Update(msg)
	return cmd
}

func (m *Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.back):
		m.login.err = nil
		m.store.Dispatch(store.Navigate{Route: store.HomeRoute})
		return m, nil
	case key.Matches(msg, m.keys.submit):
		if m.login.focused == 0 {
			return m, m.login.focus(1)
		}
		return m, m.submitLogin()
	case key.Matches(msg, m.keys.next):
		return m, m.login.focus((m.login.focused + 1) % len(m.login.inputs))
	}

	return m, m.login.update(msg)
}

func (m *Model) submitLogin() tea.Cmd {
	if m.login.submitting {
		return nil
	}

	email, password := m.login.values()
	if email == "" || password == "" {
		m.login.err = fmt.Errorf("%w: email and password are required", shared.ErrMissingArgument)
		return nil
	}

	m.login.err = nil
	m.login.submitting = true
	return func() tea.Msg {
		result, err := m.backend.Login(m.ctx, email, password)
		return loginResultMsg(result, err)
	}
}

func (m *Model) renderLogin() string {
	var b strings.Builder

	b.WriteString(styles.title.Render("Log in to save favorites"))
	b.WriteString("\n")
	for _, input := range m.login.inputs {
		b.WriteString(input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case m.login.submitting:
		b.WriteString(styles.help.Render("Logging in..."))
	case errors.Is(m.login.err, shared.ErrAuthFailed):
		b.WriteString(styles.err.Render("Invalid email or password"))
	case m.login.err != nil:
		b.WriteString(styles.err.Render(m.login.err.Error()))
	}
	b.WriteString("\n\n")

	helpKeys := []key.Binding{m.keys.next, m.keys.submit, m.keys.back}
	b.WriteString(m.help.ShortHelpView(helpKeys))

	return b.String()
}
