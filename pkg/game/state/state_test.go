package state

import (
	"testing"
	"time"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/level"
)

func TestStartRound_CopiesPath(t *testing.T) {
	l := level.Level{
		Name:  "L",
		Start: world.Point{X: 0, Y: 0},
		End:   world.Point{X: 1, Y: 0},
		Path:  []world.Direction{world.Right},
	}
	s := NewSession(2 * time.Second)
	now := time.Unix(100, 0)
	s.StartRound(l, now)

	if s.Player != l.Start || s.FinishTile != l.End || s.Level != "L" {
		t.Errorf("StartRound fields = %v %v %q", s.Player, s.FinishTile, s.Level)
	}
	if !s.RoundStart.Equal(now) {
		t.Errorf("RoundStart = %v, want %v", s.RoundStart, now)
	}
	s.RemainingPath[0] = world.Left
	if l.Path[0] != world.Right {
		t.Error("session path aliases level path")
	}
	first := s.RoundID
	s.StartRound(l, now)
	if s.RoundID == first {
		t.Error("RoundID not renewed between rounds")
	}
	if s.Rounds != 2 {
		t.Errorf("Rounds = %d, want 2", s.Rounds)
	}
}

func TestPopMove(t *testing.T) {
	s := NewSession(time.Second)
	s.RemainingPath = []world.Direction{world.Up, world.Left}

	if d, ok := s.PopMove(); !ok || d != world.Up {
		t.Errorf("PopMove #1 = %v, %v", d, ok)
	}
	if d, ok := s.PopMove(); !ok || d != world.Left {
		t.Errorf("PopMove #2 = %v, %v", d, ok)
	}
	if d, ok := s.PopMove(); ok || d != world.None {
		t.Errorf("PopMove on empty = %v, %v; want None, false", d, ok)
	}
}

func TestRemainingFraction(t *testing.T) {
	start := time.Unix(0, 0)
	s := NewSession(2 * time.Second)
	s.RoundStart = start

	tests := []struct {
		after time.Duration
		want  float64
	}{
		{0, 1},
		{500 * time.Millisecond, 0.75},
		{2 * time.Second, 0},
		{3 * time.Second, 0},
		{-time.Second, 1},
	}
	for _, tt := range tests {
		if got := s.RemainingFraction(start.Add(tt.after)); got != tt.want {
			t.Errorf("RemainingFraction(+%v) = %v, want %v", tt.after, got, tt.want)
		}
	}

	s.TimeBudget = 0
	if got := s.RemainingFraction(start); got != 0 {
		t.Errorf("RemainingFraction with zero budget = %v, want 0", got)
	}
}

func TestGameStateString(t *testing.T) {
	if StateLost.String() != "Lost" || GameState(99).String() != "Unknown" {
		t.Error("unexpected GameState names")
	}
}
