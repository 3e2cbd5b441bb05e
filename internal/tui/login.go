// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/oelbekkali/colisops/internal/session"
	"github.com/oelbekkali/colisops/models"
)

// loginModel renders the email/password form and dispatches an async
// login command on submission. The final model carries the outcome
// back to [TUI.Run]: either the authenticated user or quitByUser.
type loginModel struct {
	ctx     context.Context
	manager *session.Manager

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string

	user       models.User
	quitByUser bool
}

func newLoginModel(ctx context.Context, manager *session.Manager) loginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "email"
	emailInput.CharLimit = 64
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 64
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{
		ctx:     ctx,
		manager: manager,
		inputs:  []textinput.Model{emailInput, passwordInput},
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.user = result.user
		return m, tea.Quit
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "tab", "shift+tab":
			m.focusNext()
			return m, nil
		case "enter":
			if m.submitting {
				return m, nil
			}

			email := strings.TrimSpace(m.inputs[0].Value())
			password := m.inputs[1].Value()
			if email == "" || password == "" {
				m.errMsg = "email and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(email, password)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("colisops"))
	b.WriteString("\n\n")
	b.WriteString("email    [" + m.inputs[0].View() + "]\n")
	b.WriteString("password [" + m.inputs[1].View() + "]\n")

	if m.submitting {
		b.WriteString("\nsigning in...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter: sign in │ tab: next field │ esc: quit"))
	return appStyle.Render(b.String())
}

func (m *loginModel) cmdLogin(email, password string) tea.Cmd {
	ctx := m.ctx
	manager := m.manager

	return func() tea.Msg {
		user, err := manager.Login(ctx, email, password)
		return loginResultMsg{user: user, err: err}
	}
}

func (m *loginModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
