package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	copy key.Binding
	quit key.Binding
}

var keys = keyMap{
	copy: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy commit")),
	quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
}
