package game

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestStateString(t *testing.T) {
	tests := []struct {
		state    State
		expected string
	}{
		{StatePlaying, "playing"},
		{StateCleared, "cleared"},
		{State(99), "unknown"},
	}

	for _, tt := range tests {
		got := tt.state.String()
		if got != tt.expected {
			t.Errorf("State(%d).String() = %q, want %q", tt.state, got, tt.expected)
		}
	}
}

func TestApplyKey(t *testing.T) {
	tests := []struct {
		name     string
		ev       *tcell.EventKey
		expected Input
		quit     bool
	}{
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), Input{DX: 0, DY: 1}, false},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), Input{DX: 0, DY: -1}, false},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), Input{DX: -1}, false},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), Input{DX: 1}, false},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), Input{PlaceBomb: true}, false},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), Input{}, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), Input{}, true},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), Input{Restart: true}, false},
		{"other", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), Input{}, false},
	}

	for _, tt := range tests {
		var in Input
		quit := applyKey(tt.ev, &in)
		if quit != tt.quit {
			t.Errorf("%s: quit = %v, want %v", tt.name, quit, tt.quit)
		}
		if in != tt.expected {
			t.Errorf("%s: input = %+v, want %+v", tt.name, in, tt.expected)
		}
	}
}

func TestApplyKeyAccumulates(t *testing.T) {
	var in Input
	applyKey(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), &in)
	applyKey(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), &in)
	applyKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), &in)

	if !in.PlaceBomb || in.DX != 0 || in.DY != 1 {
		t.Errorf("input = %+v, want bomb request kept and last direction up", in)
	}
}
