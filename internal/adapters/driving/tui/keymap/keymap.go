// Package keymap defines keybindings for the TUI.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application from any step.
	Quit key.Binding

	// Back returns to the previous step.
	Back key.Binding

	// Confirm submits the current step.
	Confirm key.Binding

	// Up navigates up in the result list.
	Up key.Binding

	// Down navigates down in the result list.
	Down key.Binding

	// Yes accepts the save prompt.
	Yes key.Binding

	// No declines the save prompt.
	No key.Binding

	// NewSearch starts over once a search is finished.
	NewSearch key.Binding
}

// DefaultKeyMap returns the default keybindings.
// Yes and No also accept the Cyrillic initials of "да" and "нет".
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "next"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y", "д", "Д"),
			key.WithHelp("y", "save"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "н", "Н"),
			key.WithHelp("n", "don't save"),
		),
		NewSearch: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new search"),
		),
	}
}

// InputHelp returns keybindings shown while typing an answer.
func (k *KeyMap) InputHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Back, k.Quit}
}

// ResultsHelp returns keybindings shown with the result list.
func (k *KeyMap) ResultsHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Yes, k.No, k.Back}
}

// DoneHelp returns keybindings shown after the save prompt.
func (k *KeyMap) DoneHelp() []key.Binding {
	return []key.Binding{k.NewSearch, k.Quit}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
