// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/notekeeper-app/notekeeper/models"
)

type detailState int

const (
	detailLoading detailState = iota
	detailViewing
	detailEditing
)

// detailModel is the note detail screen. Viewing is unreachable until the
// note has loaded; editing keeps the typed content on a failed save and the
// previous attachment key is carried forward unless the user picks a new
// file or removes the attachment explicitly.
type detailModel struct {
	state  detailState
	isNew  bool
	noteID string
	view   models.NoteView

	// loadSeq guards against applying a note load that finished after the
	// user already left the screen.
	loadSeq int

	editor textarea.Model

	// pendingAttachment is the key the next save will submit. It starts as
	// the loaded note's key so an update without a new file keeps the
	// attachment; nil clears it.
	pendingAttachment *string

	attachPath textinput.Model
	attaching  bool
	uploading  bool
	submitting bool

	status string
	errMsg string
}

func newDetailModel() detailModel {
	return detailModel{}
}

func (m *detailModel) startLoad(noteID string) {
	m.state = detailLoading
	m.isNew = false
	m.noteID = noteID
	m.view = models.NoteView{}
	m.pendingAttachment = nil
	m.attaching = false
	m.uploading = false
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	m.loadSeq++
}

func (m *detailModel) startNew() {
	m.state = detailEditing
	m.isNew = true
	m.noteID = ""
	m.view = models.NoteView{}
	m.pendingAttachment = nil
	m.attaching = false
	m.uploading = false
	m.submitting = false
	m.status = ""
	m.errMsg = ""
	m.initEditor("")
}

func (m *detailModel) applyLoaded(view models.NoteView) {
	m.state = detailViewing
	m.view = view
	m.pendingAttachment = view.Attachment
}

func (m *detailModel) startEdit() {
	m.state = detailEditing
	m.errMsg = ""
	m.status = ""
	m.pendingAttachment = m.view.Attachment
	m.initEditor(m.view.Content)
}

// cancelEdit discards in-progress edits and returns to the last
// successfully loaded content.
func (m *detailModel) cancelEdit() {
	m.state = detailViewing
	m.attaching = false
	m.submitting = false
	m.errMsg = ""
	m.pendingAttachment = m.view.Attachment
}

func (m *detailModel) initEditor(content string) {
	editor := textarea.New()
	editor.Placeholder = "Write your note; the first line becomes the title"
	editor.SetWidth(56)
	editor.SetHeight(10)
	editor.SetValue(content)
	editor.Focus()
	m.editor = editor
}

func (m *detailModel) startAttach() {
	path := textinput.New()
	path.Placeholder = "/path/to/file"
	path.Width = 54
	path.Focus()

	m.attachPath = path
	m.attaching = true
	m.errMsg = ""
}

func (m detailModel) View() string {
	switch m.state {
	case detailLoading:
		return renderPage("NOTE", "Loading...", "esc: back")
	case detailEditing:
		return m.viewEditing()
	default:
		return m.viewViewing()
	}
}

func (m detailModel) viewViewing() string {
	var b strings.Builder

	b.WriteString(m.view.Content)
	b.WriteString("\n\n")

	b.WriteString("[ ATTACHMENT ]\n")
	if key := m.view.AttachmentKey(); key != "" {
		b.WriteString("Key : " + key + "\n")
		if m.view.AttachmentURL != "" {
			b.WriteString("URL : " + m.view.AttachmentURL + "\n")
		} else {
			b.WriteString("URL : (preview unavailable)\n")
		}
	} else {
		b.WriteString("(none)\n")
	}

	b.WriteString("\nCreated: " + m.view.CreatedAt.Format("2006-01-02 15:04:05"))

	if m.status != "" {
		b.WriteString("\n\n" + m.status)
	}
	if m.errMsg != "" {
		b.WriteString("\n\nError: " + m.errMsg)
	}

	return renderPage(
		"NOTE: "+fitText(m.view.Title, 40),
		strings.TrimRight(b.String(), "\n"),
		"e: edit │ c: copy text │ ctrl+d: delete │ esc: back",
	)
}

func (m detailModel) viewEditing() string {
	if m.attaching {
		var b strings.Builder
		b.WriteString("Path      : [ " + m.attachPath.View() + " ]\n")
		if m.uploading {
			b.WriteString("\nUploading...\n")
		}
		if m.errMsg != "" {
			b.WriteString("\nError: " + m.errMsg + "\n")
		}
		return renderPage("ATTACH FILE", strings.TrimRight(b.String(), "\n"), "enter: upload │ esc: back to editor")
	}

	var b strings.Builder
	b.WriteString(m.editor.View())
	b.WriteString("\n\n")
	b.WriteString("Attachment: ")
	b.WriteString(valueOrDash(m.pendingAttachment))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\nError: " + m.errMsg + "\n")
	}

	title := "EDIT NOTE"
	if m.isNew {
		title = "NEW NOTE"
	}
	return renderPage(
		title,
		strings.TrimRight(b.String(), "\n"),
		"ctrl+s: save │ ctrl+a: attach file │ ctrl+x: remove attachment │ esc: cancel",
	)
}
