package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	quit        key.Binding
	logout      key.Binding
	version     key.Binding
	refresh     key.Binding
	checkIn     key.Binding
	claim       key.Binding
	quiz        key.Binding
	timerStart  key.Binding
	timerPause  key.Binding
	timerFinish key.Binding
	timerCancel key.Binding
	subject     key.Binding
	category    key.Binding
	categoryPrev key.Binding
	filter      key.Binding
	copyCode    key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("L")),
	version:     key.NewBinding(key.WithKeys("v")),
	refresh:     key.NewBinding(key.WithKeys("r")),
	checkIn:     key.NewBinding(key.WithKeys("c")),
	claim:       key.NewBinding(key.WithKeys("x")),
	quiz:        key.NewBinding(key.WithKeys("z")),
	timerStart:  key.NewBinding(key.WithKeys("s")),
	timerPause:  key.NewBinding(key.WithKeys("p")),
	timerFinish: key.NewBinding(key.WithKeys("f")),
	timerCancel: key.NewBinding(key.WithKeys("a")),
	subject:     key.NewBinding(key.WithKeys("b")),
	category:    key.NewBinding(key.WithKeys("]")),
	categoryPrev: key.NewBinding(key.WithKeys("[")),
	filter:      key.NewBinding(key.WithKeys("t")),
	copyCode:    key.NewBinding(key.WithKeys("y")),
}
