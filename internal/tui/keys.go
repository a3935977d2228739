package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/idilsaglam/roadmap/internal/app"
)

type keyMap struct {
	Submit     key.Binding
	NextField  key.Binding
	Suggest    key.Binding
	Cancel     key.Binding
	TryAgain   key.Binding
	SwitchTab  key.Binding
	Up         key.Binding
	Down       key.Binding
	Toggle     key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	NewRoadmap key.Binding
	Save       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "plan")),
		NextField:  key.NewBinding(key.WithKeys("tab", "shift+tab", "up", "down"), key.WithHelp("tab", "switch field")),
		Suggest:    key.NewBinding(key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4"), key.WithHelp("alt+1-4", "try a suggestion")),
		Cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		TryAgain:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "try again")),
		SwitchTab:  key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "roadmap/syllabus")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "prev step")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "next step")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "expand")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "page down")),
		NewRoadmap: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new roadmap")),
		Save:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save json")),
		Quit:       key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// bindings is the short help for the current state and tab.
func (k keyMap) bindings(s app.State, tab app.Tab) []key.Binding {
	switch s {
	case app.StateGenerating:
		return []key.Binding{k.Cancel, k.ForceQuit}
	case app.StateError:
		return []key.Binding{k.Submit, k.TryAgain, k.NextField, k.ForceQuit}
	case app.StateSuccess:
		if tab == app.TabSyllabus {
			return []key.Binding{k.SwitchTab, k.PageUp, k.PageDown, k.NewRoadmap, k.Save, k.Quit}
		}
		return []key.Binding{k.SwitchTab, k.Up, k.Down, k.Toggle, k.NewRoadmap, k.Save, k.Quit}
	default:
		return []key.Binding{k.Submit, k.NextField, k.Suggest, k.ForceQuit}
	}
}
