package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alina998/hh-project/internal/adapters/driving/tui/keymap"
)

func TestNewBar(t *testing.T) {
	b := NewBar(nil)

	require.NotNil(t, b)
	assert.Equal(t, StateReady, b.State())
	assert.Contains(t, b.View(), "Ready")
}

func TestBar_States(t *testing.T) {
	tests := []struct {
		state    State
		message  string
		expected string
	}{
		{StateSearching, "", "Searching hh.ru..."},
		{StateSaving, "", "Saving..."},
		{StateSaved, "Saved 3 vacancies", "Saved 3 vacancies"},
		{StateError, "timeout", "Error: timeout"},
		{StateError, "", "Error"},
		{StateResults, "3 vacancies", "3 vacancies"},
		{StateResults, "", "Ready"},
	}

	for _, tt := range tests {
		t.Run(string(tt.state)+"/"+tt.message, func(t *testing.T) {
			b := NewBar(nil)
			b.SetState(tt.state, tt.message)

			assert.Contains(t, b.View(), tt.expected)
			assert.Equal(t, tt.message, b.Message())
		})
	}
}

func TestBar_Hints(t *testing.T) {
	b := NewBar(nil)
	b.SetWidth(120)
	b.SetHints(keymap.DefaultKeyMap().DoneHelp())

	view := b.View()

	assert.Contains(t, view, "enter: new search")
	assert.Contains(t, view, "ctrl+c: quit")
}
