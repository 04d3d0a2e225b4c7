package tui

import (
	"strings"

	"github.com/MKhiriev/client-admin/internal/manager"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		b.WriteString("\n")
	} else {
		b.WriteString("-\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(hotKeys)
	}

	return b.String()
}

func renderNotice(n manager.Notice) string {
	switch n.Level {
	case manager.NoticeInfo:
		return infoStyle.Render(n.Text)
	case manager.NoticeError:
		return errorStyle.Render(n.Text)
	default:
		return ""
	}
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
