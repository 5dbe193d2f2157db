// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type forgotStage int

const (
	forgotStageEmail forgotStage = iota
	forgotStageConfirm
)

// forgotModel holds the two-step password reset form: first the account
// email, then the mailed code plus the new password.
type forgotModel struct {
	stage      forgotStage
	email      string
	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func newForgotModel() forgotModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	return forgotModel{inputs: []textinput.Model{email}}
}

func (m *forgotModel) startConfirmStage(email string) {
	code := textinput.New()
	code.Placeholder = "code from email"
	code.CharLimit = 6
	code.Width = 40
	code.Focus()

	password := textinput.New()
	password.Placeholder = "new password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.stage = forgotStageConfirm
	m.email = email
	m.inputs = []textinput.Model{code, password}
	m.focus = 0
	m.errMsg = ""
}

func (m forgotModel) View() string {
	var b strings.Builder

	switch m.stage {
	case forgotStageEmail:
		b.WriteString("Field    │ Value\n")
		b.WriteString("─────────┼────────────────────────────────────────────\n")
		b.WriteString("Email    │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")

		if m.submitting {
			b.WriteString("\n[Sending code...]\n")
		} else {
			b.WriteString("\n[Send reset code]\n")
		}
	case forgotStageConfirm:
		b.WriteString("A reset code was sent to " + m.email + "\n\n")
		b.WriteString("Field        │ Value\n")
		b.WriteString("─────────────┼────────────────────────────────────\n")
		b.WriteString("Code         │ [")
		b.WriteString(m.inputs[0].View())
		b.WriteString("]\n")
		b.WriteString("New password │ [")
		b.WriteString(m.inputs[1].View())
		b.WriteString("]\n")

		if m.submitting {
			b.WriteString("\n[Resetting...]\n")
		} else {
			b.WriteString("\n[Reset password]\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\nError: ")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	return renderPage("PASSWORD RESET", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
