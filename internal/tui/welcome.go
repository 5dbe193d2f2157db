package tui

type welcomeModel struct {
	items  []string
	idx    int
	status string
}

func newWelcomeModel() welcomeModel {
	return welcomeModel{items: []string{"Sign in", "Sign up", "Forgot password"}}
}

func (m welcomeModel) View() string {
	out := ""
	if m.status != "" {
		out += "OK: " + m.status + "\n\n"
	}
	out += "Choose an action:\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}
	return renderPage("NOTEKEEPER", out, "enter: select │ ↑/↓: navigate │ v: version │ q: quit")
}
