package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the bindings; apply enables the ones the current
// directive allows so help only lists what works.
type keyMap struct {
	ToggleMode key.Binding
	Reveal     key.Binding
	Submit     key.Binding
	Next       key.Binding
	Dismiss    key.Binding
	History    key.Binding
	Back       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		ToggleMode: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch mode")),
		Reveal:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "show answer")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		Next:       key.NewBinding(key.WithKeys("enter", "right"), key.WithHelp("enter/→", "next")),
		Dismiss:    key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter", "ok")),
		History:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.Reveal, k.Submit, k.Next, k.Dismiss, k.History, k.Back, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.ToggleMode, k.Reveal, k.Submit, k.Next},
		{k.Dismiss, k.History, k.Back, k.Quit},
	}
}
