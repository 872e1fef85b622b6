package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	quit      key.Binding
	forceQuit key.Binding
	delete    key.Binding
	compress  key.Binding
	caseFold  key.Binding
	utf8      key.Binding
	encrypt   key.Binding
	copy      key.Binding
	copyName  key.Binding
	add       key.Binding
	export    key.Binding
	save      key.Binding
	buildInfo key.Binding
	yes       key.Binding
	no        key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("q")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	delete:    key.NewBinding(key.WithKeys("d")),
	compress:  key.NewBinding(key.WithKeys("z")),
	caseFold:  key.NewBinding(key.WithKeys("i")),
	utf8:      key.NewBinding(key.WithKeys("u")),
	encrypt:   key.NewBinding(key.WithKeys("e")),
	copy:      key.NewBinding(key.WithKeys("c")),
	copyName:  key.NewBinding(key.WithKeys("n")),
	add:       key.NewBinding(key.WithKeys("a")),
	export:    key.NewBinding(key.WithKeys("x")),
	save:      key.NewBinding(key.WithKeys("s")),
	buildInfo: key.NewBinding(key.WithKeys("?")),
	yes:       key.NewBinding(key.WithKeys("y")),
	no:        key.NewBinding(key.WithKeys("n")),
}
