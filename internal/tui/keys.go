package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	left        key.Binding
	right       key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	save        key.Binding
	quit        key.Binding
	logout      key.Binding
	newNote     key.Binding
	edit        key.Binding
	pin         key.Binding
	color       key.Binding
	imageURL    key.Binding
	imageFile   key.Binding
	removeImage key.Binding
	trash       key.Binding
	archive     key.Binding
	delete      key.Binding
	copy        key.Binding
	grid        key.Binding
	theme       key.Binding
	reload      key.Binding
	backup      key.Binding
	export      key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	left:        key.NewBinding(key.WithKeys("left", "h")),
	right:       key.NewBinding(key.WithKeys("right", "l")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("L")),
	newNote:     key.NewBinding(key.WithKeys("n")),
	edit:        key.NewBinding(key.WithKeys("e")),
	pin:         key.NewBinding(key.WithKeys("p")),
	color:       key.NewBinding(key.WithKeys("c")),
	imageURL:    key.NewBinding(key.WithKeys("i")),
	imageFile:   key.NewBinding(key.WithKeys("f")),
	removeImage: key.NewBinding(key.WithKeys("x")),
	trash:       key.NewBinding(key.WithKeys("t")),
	archive:     key.NewBinding(key.WithKeys("a")),
	delete:      key.NewBinding(key.WithKeys("D")),
	copy:        key.NewBinding(key.WithKeys("y")),
	grid:        key.NewBinding(key.WithKeys("g")),
	theme:       key.NewBinding(key.WithKeys("m")),
	reload:      key.NewBinding(key.WithKeys("r")),
	backup:      key.NewBinding(key.WithKeys("b")),
	export:      key.NewBinding(key.WithKeys("o")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
