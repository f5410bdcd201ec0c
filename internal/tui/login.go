// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// SignInFunc signs a user in with a password.
type SignInFunc func(ctx context.Context, username, password string, remember bool) error

// LoginModel is the sign-in form. It renders username and password inputs
// and dispatches an async sign-in on submit. The outcome arrives as an
// [IdentityResult] handled by [RootModel].
type LoginModel struct {
	ctx    context.Context
	signIn SignInFunc

	inputs     []textinput.Model
	focus      int
	remember   bool
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, signIn SignInFunc) *LoginModel {
	loginInput := textinput.New()
	loginInput.Placeholder = "username"
	loginInput.CharLimit = 32
	loginInput.Width = 40
	loginInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &LoginModel{
		ctx:    ctx,
		signIn: signIn,
		inputs: []textinput.Model{loginInput, passwordInput},
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - IdentityResult: clears the submitting state and shows the error
//   - esc: back to the menu
//   - tab / shift+tab: input focus
//   - ctrl+r: toggles "remember this device"
//   - enter: validates and submits
//
// Other keys go to the focused input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(IdentityResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case "tab":
			m.focusNext()
			return m, nil
		case "shift+tab":
			m.focusPrev()
			return m, nil
		case "ctrl+r":
			m.remember = !m.remember
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := strings.TrimSpace(m.inputs[0].Value())
			pass := m.inputs[1].Value()
			if username == "" || pass == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(username, pass)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Field    │ Value\n")
	b.WriteString("─────────┼────────────────────────────────────────────\n")
	b.WriteString("Username │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Password │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	remember := "[ ]"
	if m.remember {
		remember = "[x]"
	}
	b.WriteString("Remember │ " + remember + " this device\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("SIGN IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+r: remember │ enter: submit")
}

func (m *LoginModel) cmdSignIn(username, pass string) tea.Cmd {
	ctx := m.ctx
	signIn := m.signIn
	remember := m.remember

	return func() tea.Msg {
		err := signIn(ctx, username, pass, remember)
		return IdentityResult{Username: username, Err: err}
	}
}

func (m *LoginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LoginModel) focusPrev() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
