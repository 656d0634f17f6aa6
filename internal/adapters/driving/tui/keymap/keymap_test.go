package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Quit))
	assert.True(t, Matches("esc", km.Back))
	assert.True(t, Matches("enter", km.Confirm))
	assert.True(t, Matches("k", km.Up))
	assert.True(t, Matches("down", km.Down))
}

func TestDefaultKeyMap_YesNoAcceptCyrillic(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("y", km.Yes))
	assert.True(t, Matches("д", km.Yes))
	assert.True(t, Matches("n", km.No))
	assert.True(t, Matches("н", km.No))
	assert.False(t, Matches("y", km.No))
}

func TestKeyMap_HelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.InputHelp(), 3)
	assert.Len(t, km.ResultsHelp(), 5)
	assert.Len(t, km.DoneHelp(), 2)
}

func TestMatches_Unknown(t *testing.T) {
	assert.False(t, Matches("x", DefaultKeyMap().Quit))
}
