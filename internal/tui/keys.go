package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	lang    key.Binding
	copy    key.Binding
	refresh key.Binding
	filter  key.Binding
	edit    key.Binding
	newItem key.Binding
	approve key.Binding
	block   key.Binding
	delete  key.Binding
	wipe    key.Binding
	yes     key.Binding
	no      key.Binding
	hidden  key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab")),
	backtab: key.NewBinding(key.WithKeys("shift+tab")),
	quit:    key.NewBinding(key.WithKeys("q", "ctrl+c")),
	lang:    key.NewBinding(key.WithKeys("v")),
	copy:    key.NewBinding(key.WithKeys("c")),
	refresh: key.NewBinding(key.WithKeys("r")),
	filter:  key.NewBinding(key.WithKeys("/")),
	edit:    key.NewBinding(key.WithKeys("e")),
	newItem: key.NewBinding(key.WithKeys("n")),
	approve: key.NewBinding(key.WithKeys("a")),
	block:   key.NewBinding(key.WithKeys("b")),
	delete:  key.NewBinding(key.WithKeys("d")),
	wipe:    key.NewBinding(key.WithKeys("w")),
	yes:     key.NewBinding(key.WithKeys("y")),
	no:      key.NewBinding(key.WithKeys("n")),
	hidden:  key.NewBinding(key.WithKeys("g")),
}
