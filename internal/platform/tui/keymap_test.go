package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapCommand(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Command
	}{
		{"w", runeKey('w'), core.CommandMoveUp},
		{"a", runeKey('a'), core.CommandMoveLeft},
		{"s", runeKey('s'), core.CommandMoveDown},
		{"d", runeKey('d'), core.CommandMoveRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.CommandMoveUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.CommandMoveDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.CommandMoveLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.CommandMoveRight},
		{"pause", runeKey('p'), core.CommandPause},
		{"resume", runeKey('c'), core.CommandResume},
		{"restart", runeKey('r'), core.CommandRestart},
		{"quit", runeKey('q'), core.CommandQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.CommandQuit},
		{"help", runeKey('?'), core.CommandNone},
		{"unbound", runeKey('x'), core.CommandNone},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.CommandNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Command(tc.msg); got != tc.expected {
				t.Errorf("Command(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}

	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 9 {
		t.Errorf("FullHelp should list all 9 bindings, got %d", n)
	}
}
