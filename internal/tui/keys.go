// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Othmane El Bekkali

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	nextTab key.Binding
	prevTab key.Binding
	refresh key.Binding
	copy    key.Binding
	logout  key.Binding
	quit    key.Binding
}

var keys = keyMap{
	nextTab: key.NewBinding(key.WithKeys("tab", "right")),
	prevTab: key.NewBinding(key.WithKeys("shift+tab", "left")),
	refresh: key.NewBinding(key.WithKeys("r")),
	copy:    key.NewBinding(key.WithKeys("c")),
	logout:  key.NewBinding(key.WithKeys("l")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
}
