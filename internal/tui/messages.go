// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

type lockCheckMsg struct{}

type clipboardClearMsg struct {
	text string
}
