package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadeworks/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestActionFor(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"w moves up", runeKey('w'), core.ActionUp},
		{"capital W moves up", runeKey('W'), core.ActionUp},
		{"s moves down", runeKey('s'), core.ActionDown},
		{"a moves left", runeKey('a'), core.ActionLeft},
		{"d moves right", runeKey('d'), core.ActionRight},
		{"up arrow moves up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow moves down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"left arrow moves left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow moves right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"p pauses", runeKey('p'), core.ActionPause},
		{"r restarts", runeKey('r'), core.ActionRestart},
		{"q quits", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key is ignored", runeKey('x'), core.ActionNone},
		{"space is ignored", tea.KeyMsg{Type: tea.KeySpace}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.ActionFor(tc.msg); got != tc.want {
				t.Errorf("ActionFor(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestHelpEntries(t *testing.T) {
	keys := DefaultKeyMap()

	for _, b := range keys.ShortHelp() {
		if !b.Enabled() {
			t.Errorf("short help binding %q should be enabled", b.Help().Key)
		}
		if b.Help().Key == "" || b.Help().Desc == "" {
			t.Errorf("short help binding missing help text: %+v", b.Help())
		}
	}

	rows := keys.FullHelp()
	if len(rows) != 2 {
		t.Fatalf("FullHelp rows = %d, expected 2", len(rows))
	}
}
