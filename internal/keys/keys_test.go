package keys

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMapMatches(t *testing.T) {
	k := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"j moves down", runeKey('j'), k.Down},
		{"arrow moves down", tea.KeyMsg{Type: tea.KeyDown}, k.Down},
		{"backspace climbs", tea.KeyMsg{Type: tea.KeyBackspace}, k.Parent},
		{"enter opens", tea.KeyMsg{Type: tea.KeyEnter}, k.Enter},
		{"G goes to bottom", runeKey('G'), k.Bottom},
		{"ctrl+w starts a window command", tea.KeyMsg{Type: tea.KeyCtrlW}, k.Window},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, k.Quit},
		{"ctrl+h opens help", tea.KeyMsg{Type: tea.KeyCtrlH}, k.Help},
		{"space is the leader", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, k.Leader},
		{"Y confirms", runeKey('Y'), k.Confirm},
		{"digits count", runeKey('7'), k.Count},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestDefaultKeyMapDoesNotOverlapWithinNormal(t *testing.T) {
	k := DefaultKeyMap()
	seen := map[string]string{}

	for _, b := range k.Sections()[0].Bindings {
		for _, keyName := range b.Keys() {
			prev, dup := seen[keyName]
			assert.False(t, dup, "%q bound to both %q and %q", keyName, prev, b.Help().Desc)
			seen[keyName] = b.Help().Desc
		}
	}
}

func TestEntries(t *testing.T) {
	k := DefaultKeyMap()
	entries := k.Entries()

	total := 0
	for _, s := range k.Sections() {
		total += len(s.Bindings)
	}
	assert.Len(t, entries, total)
	assert.Equal(t, Entry{Section: "Normal", Key: "↓/j", Desc: "down"}, entries[0])

	for _, e := range entries {
		assert.NotEmpty(t, e.Key)
		assert.NotEmpty(t, e.Desc)
	}
}

func TestHelpViews(t *testing.T) {
	k := DefaultKeyMap()

	assert.Len(t, k.ShortHelp(), 4)
	assert.Len(t, k.FullHelp(), len(k.Sections()))
}
