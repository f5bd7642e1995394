package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Seventh      key.Binding
	MajorSeventh key.Binding
	FlatFifth    key.Binding
	AddNinth     key.Binding

	SemitoneDown key.Binding
	SemitoneUp   key.Binding
	OctaveDown   key.Binding
	OctaveUp     key.Binding
	VolumeUp     key.Binding
	VolumeDown   key.Binding
	Wave         key.Binding
	Release      key.Binding
	Help         key.Binding
	Quit         key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Seventh:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "7th")),
		MajorSeventh: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "M7")),
		FlatFifth:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "-5/aug")),
		AddNinth:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "add9")),

		SemitoneDown: key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "window ±1")),
		SemitoneUp:   key.NewBinding(key.WithKeys("right")),
		OctaveDown:   key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←/→", "window ±12")),
		OctaveUp:     key.NewBinding(key.WithKeys("shift+right")),
		VolumeUp:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓", "volume")),
		VolumeDown:   key.NewBinding(key.WithKeys("down")),
		Wave:         key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "wave")),
		Release:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "release all")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:         key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Seventh, k.MajorSeventh, k.FlatFifth, k.AddNinth, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Seventh, k.MajorSeventh, k.FlatFifth, k.AddNinth},
		{k.SemitoneDown, k.OctaveDown, k.VolumeUp, k.Wave},
		{k.Release, k.Help, k.Quit},
	}
}
