// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	warnStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	labelStyle      = lipgloss.NewStyle().Faint(true).Width(10)
	selectedStyle   = lipgloss.NewStyle().Bold(true).Reverse(true)
	favoriteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// Error renders msg the way command failures are shown.
func Error(msg string) string {
	return errorStyle.Render("error: " + msg)
}

// Warning renders an advisory message.
func Warning(msg string) string {
	return warnStyle.Render(msg)
}

// Success renders a confirmation message.
func Success(msg string) string {
	return successStyle.Render(msg)
}

// Help renders secondary text such as usage hints.
func Help(msg string) string {
	return helpStyle.Render(msg)
}
