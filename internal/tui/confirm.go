package tui

import "fmt"

type confirmKind int

const (
	confirmNone confirmKind = iota
	confirmDeleteOne
	confirmDeleteAll
)

type confirmModel struct {
	kind  confirmKind
	title string
	count int
}

func (m confirmModel) View() string {
	var content string
	switch m.kind {
	case confirmDeleteOne:
		content = "Delete \"" + m.title + "\"?\n\n"
	case confirmDeleteAll:
		content = fmt.Sprintf("Delete all %d notes?\n\n", m.count)
	default:
		return ""
	}
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
