// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The NoteKeeper Authors

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/notekeeper-app/notekeeper/models"
)

type homeState int

const (
	homeLoading homeState = iota
	homeReady
	homeFailed
)

// homeModel is the note list screen. It keeps the full collection and a
// filtered view derived from the search input; the filtered view is
// recomputed on every keystroke and never mutates the source collection.
type homeModel struct {
	state    homeState
	items    []models.NoteView
	filtered []models.NoteView
	idx      int

	search        textinput.Model
	searchFocused bool

	// loadSeq guards against applying a stale list load after the user has
	// navigated away and back: only the response matching the latest
	// sequence number is applied.
	loadSeq int

	status string
	errMsg string
	batch  *models.BatchResult
}

func newHomeModel() homeModel {
	search := textinput.New()
	search.Placeholder = "search"
	search.CharLimit = 128
	search.Width = 36

	return homeModel{state: homeLoading, search: search}
}

// filterNotes derives the filtered view: a case-insensitive substring match
// of term against the note content and the raw attachment key. An empty or
// blank term returns the source collection unchanged.
func filterNotes(items []models.NoteView, term string) []models.NoteView {
	q := strings.ToLower(strings.TrimSpace(term))
	if q == "" {
		return items
	}

	out := make([]models.NoteView, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Content), q) ||
			strings.Contains(strings.ToLower(item.AttachmentKey()), q) {
			out = append(out, item)
		}
	}
	return out
}

func (m *homeModel) setItems(items []models.NoteView) {
	m.state = homeReady
	m.items = items
	m.refilter()
}

func (m *homeModel) refilter() {
	m.filtered = filterNotes(m.items, m.search.Value())
	if m.idx >= len(m.filtered) {
		m.idx = len(m.filtered) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// removeNote drops the note from both the full and the filtered collections.
// Called only after the server confirmed the delete.
func (m *homeModel) removeNote(noteID string) {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.NoteID != noteID {
			kept = append(kept, item)
		}
	}
	m.items = kept
	m.refilter()
}

func (m homeModel) current() (models.NoteView, bool) {
	if len(m.filtered) == 0 || m.idx < 0 || m.idx >= len(m.filtered) {
		return models.NoteView{}, false
	}
	return m.filtered[m.idx], true
}

func (m homeModel) View() string {
	var b strings.Builder

	b.WriteString("Search: [")
	b.WriteString(m.search.View())
	b.WriteString("]\n\n")

	if m.batch != nil {
		b.WriteString(batchSummary(*m.batch) + "\n\n")
	}

	switch m.state {
	case homeLoading:
		b.WriteString("Loading notes...\n")
	case homeFailed:
		b.WriteString("Error: " + m.errMsg + "\n")
	case homeReady:
		if m.errMsg != "" {
			b.WriteString("Error: " + m.errMsg + "\n")
		}
		if m.status != "" {
			b.WriteString("Status: " + m.status + "\n")
		}
		if m.errMsg != "" || m.status != "" {
			b.WriteString("\n")
		}

		if len(m.items) == 0 {
			b.WriteString("No notes yet. Press n to create one.\n")
		} else if len(m.filtered) == 0 {
			b.WriteString("No notes match the search.\n")
		} else {
			b.WriteString("ID   │ Title                    │ Attachment       │ Created\n")
			b.WriteString("─────┼──────────────────────────┼──────────────────┼───────────────\n")
			for i, item := range m.filtered {
				cursor := " "
				if i == m.idx {
					cursor = ">"
				}

				b.WriteString(fmt.Sprintf(
					"%s %-3d│ %-24s │ %-16s │ %s\n",
					cursor,
					i+1,
					fitText(item.Title, 24),
					fitText(attachmentLabel(item), 16),
					item.CreatedAt.Format("2006-01-02 15:04"),
				))
			}
		}
	}

	return renderPage(
		"NOTES",
		strings.TrimRight(b.String(), "\n"),
		"n: new │ enter: open │ /: search │ ctrl+d: delete │ D: delete all │ u: account │ r: reload │ l: logout",
	)
}

func attachmentLabel(item models.NoteView) string {
	key := item.AttachmentKey()
	if key == "" {
		return "-"
	}
	if idx := strings.LastIndexByte(key, '/'); idx >= 0 {
		key = key[idx+1:]
	}
	if item.AttachmentURL == "" {
		return key + " (!)"
	}
	return key
}

func batchSummary(result models.BatchResult) string {
	if result.AllSucceeded() {
		return fmt.Sprintf("Deleted %d of %d notes", result.Deleted, result.Requested)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Deleted %d of %d notes, %d failed:", result.Deleted, result.Requested, len(result.Failures))
	for _, failure := range result.Failures {
		fmt.Fprintf(&b, "\n  - %s: %s", failure.NoteID, failure.Reason)
	}
	return b.String()
}
