package tui

import (
	"strings"
	"time"
)

const (
	uiDivider = "──────────────────────────────────────────────────────"
	notAvail  = "N/A"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	for _, line := range strings.Split(data, "\n") {
		b.WriteString("  ")
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(hotKeys))

	return b.String()
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return notAvail
	}
	return v
}

// dateOrNA treats both the zero time and the Unix epoch as unknown.
func dateOrNA(t time.Time) string {
	if t.IsZero() || t.Equal(time.Unix(0, 0)) {
		return notAvail
	}
	return t.UTC().Format("2006-01-02 15:04:05 MST")
}
