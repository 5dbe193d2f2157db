// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type accountStage int

const (
	accountStageEmail accountStage = iota
	accountStageCode
)

// accountModel is the email change screen: enter the new address, then
// confirm it with the code mailed to that address.
type accountModel struct {
	stage        accountStage
	currentEmail string
	newEmail     string
	input        textinput.Model
	submitting   bool
	status       string
	errMsg       string
}

func newAccountModel() accountModel {
	return accountModel{input: newAccountEmailInput()}
}

func newAccountEmailInput() textinput.Model {
	email := textinput.New()
	email.Placeholder = "new email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()
	return email
}

func (m *accountModel) reset(currentEmail string) {
	m.stage = accountStageEmail
	m.currentEmail = currentEmail
	m.newEmail = ""
	m.input = newAccountEmailInput()
	m.submitting = false
	m.status = ""
	m.errMsg = ""
}

func (m *accountModel) startCodeStage(newEmail string) {
	code := textinput.New()
	code.Placeholder = "code from email"
	code.CharLimit = 6
	code.Width = 40
	code.Focus()

	m.stage = accountStageCode
	m.newEmail = newEmail
	m.input = code
	m.errMsg = ""
}

func (m accountModel) View() string {
	var b strings.Builder

	b.WriteString("Current email: " + m.currentEmail + "\n\n")

	switch m.stage {
	case accountStageEmail:
		b.WriteString("New email : [ " + m.input.View() + " ]\n")
		if m.submitting {
			b.WriteString("\nSending code...\n")
		}
	case accountStageCode:
		b.WriteString("A confirmation code was sent to " + m.newEmail + "\n\n")
		b.WriteString("Code      : [ " + m.input.View() + " ]\n")
		if m.submitting {
			b.WriteString("\nVerifying...\n")
		}
	}

	if m.status != "" {
		b.WriteString("\nStatus: " + m.status + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	return renderPage("ACCOUNT", strings.TrimRight(b.String(), "\n"), "enter: submit │ esc: back")
}
