// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the terminal side of go-pass-vault: lipgloss styles and
// text views shared by every command, no-echo password prompts, the
// clipboard helper, the advisory password strength check and the
// interactive bubbletea credential browser.
package tui
