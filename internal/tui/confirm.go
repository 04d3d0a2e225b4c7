package tui

type confirmTarget int

const (
	confirmClient confirmTarget = iota
	confirmAccount
)

// confirmModel asks before a delete is sent.
type confirmModel struct {
	target confirmTarget
	id     int64
	label  string
}

func (m confirmModel) View() string {
	content := "Delete \"" + m.label + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
