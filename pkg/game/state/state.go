package state

import (
	"time"

	"github.com/google/uuid"

	"pathrecall/pkg/engine/world"
	"pathrecall/pkg/game/level"
)

// GameState is the session-wide phase that drives rendering and input
type GameState int

// Game states
const (
	StateNone GameState = iota
	StatePathView
	StateGame
	StateWon
	StateLost
)

// String returns the string representation of a state
func (s GameState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StatePathView:
		return "PathView"
	case StateGame:
		return "Game"
	case StateWon:
		return "Won"
	case StateLost:
		return "Lost"
	default:
		return "Unknown"
	}
}

// Session is the single owned game session. It is mutated only from the
// host's frame/input loop and is never shared across goroutines.
type Session struct {
	RoundID uuid.UUID
	Level   string

	Player        world.Point
	FinishTile    world.Point
	RemainingPath []world.Direction

	State GameState

	// RoundStart is when the current timed phase began: the reveal, the
	// play clock, the celebration or the loss.
	RoundStart time.Time
	TimeBudget time.Duration

	WinStreak  int
	BestStreak int
	Rounds     int
}

// NewSession creates a session in StateNone with the given time budget
func NewSession(budget time.Duration) *Session {
	return &Session{
		State:      StateNone,
		TimeBudget: budget,
	}
}

// StartRound resets the round fields from a level. The path is copied so
// consuming it never touches the level data.
func (s *Session) StartRound(l level.Level, now time.Time) {
	s.RoundID = uuid.New()
	s.Level = l.Name
	s.Player = l.Start
	s.FinishTile = l.End
	s.RemainingPath = make([]world.Direction, len(l.Path))
	copy(s.RemainingPath, l.Path)
	s.RoundStart = now
	s.Rounds++
}

// PopMove removes and returns the next expected move
func (s *Session) PopMove() (world.Direction, bool) {
	if len(s.RemainingPath) == 0 {
		return world.None, false
	}
	d := s.RemainingPath[0]
	s.RemainingPath = s.RemainingPath[1:]
	return d, true
}

// Elapsed returns the time since RoundStart
func (s *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(s.RoundStart)
}

// RemainingFraction is 1 - elapsed/budget, clamped to [0,1] for display.
func (s *Session) RemainingFraction(now time.Time) float64 {
	if s.TimeBudget <= 0 {
		return 0
	}
	f := 1 - float64(s.Elapsed(now))/float64(s.TimeBudget)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// AcceptsMoves reports whether directional input can change the session
func (s *Session) AcceptsMoves() bool {
	return s.State == StateGame
}
