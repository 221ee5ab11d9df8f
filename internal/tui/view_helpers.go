// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"
	"time"
)

const (
	uiDivider     = "──────────────────────────────────────────────────────"
	maskedSecret  = "••••••••"
	timeLayout    = "2006-01-02 15:04"
	nameColumn    = 24
	userColumn    = 24
	noValueMarker = "-"
)

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(data) != "" {
		b.WriteString(data)
		if !strings.HasSuffix(data, "\n") {
			b.WriteString("\n")
		}
	} else {
		b.WriteString(noValueMarker + "\n")
	}

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString(uiDivider)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return noValueMarker
	}
	return v
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return noValueMarker
	}
	return t.Local().Format(timeLayout)
}

// fitText cuts v to max runes, marking the cut with an ellipsis.
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

func padRight(v string, width int) string {
	n := len([]rune(v))
	if n >= width {
		return v
	}
	return v + strings.Repeat(" ", width-n)
}
