// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	quit     key.Binding
	filter   key.Binding
	copy     key.Binding
	copyUser key.Binding
	favorite key.Binding
	reveal   key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc", "backspace")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	filter:   key.NewBinding(key.WithKeys("/")),
	copy:     key.NewBinding(key.WithKeys("c")),
	copyUser: key.NewBinding(key.WithKeys("u")),
	favorite: key.NewBinding(key.WithKeys("f")),
	reveal:   key.NewBinding(key.WithKeys("r")),
}
