package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings the pager screen responds to.
type KeyMap struct {
	Prev      key.Binding
	Next      key.Binding
	DragLeft  key.Binding
	DragRight key.Binding
	Jump      key.Binding
	Inspect   key.Binding
	Quit      key.Binding
	Accept    key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		DragLeft:  key.NewBinding(key.WithKeys("shift+left", "H"), key.WithHelp("⇧←", "drag")),
		DragRight: key.NewBinding(key.WithKeys("shift+right", "L"), key.WithHelp("⇧→", "drag")),
		Jump:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "jump")),
		Inspect:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "segments")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "go")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.DragLeft, k.Jump, k.Inspect, k.Quit}
}

func helpLine(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings)+1)
	for _, b := range bindings {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	parts = append(parts, "1-9 page")
	return strings.Join(parts, "  ")
}
