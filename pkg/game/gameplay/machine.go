// Package gameplay provides the round state machine and move validation.
package gameplay

import (
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"pathrecall/pkg/game/level"
	"pathrecall/pkg/game/state"
)

// Event is something that can move the session to another state
type Event int

// Events
const (
	EventStart Event = iota
	EventRevealElapsed
	EventBudgetExpired
	EventMismatch
	EventPathCompleted
	EventCelebrationElapsed
	EventRestart
)

// String returns the string representation of an event
func (ev Event) String() string {
	switch ev {
	case EventStart:
		return "Start"
	case EventRevealElapsed:
		return "RevealElapsed"
	case EventBudgetExpired:
		return "BudgetExpired"
	case EventMismatch:
		return "Mismatch"
	case EventPathCompleted:
		return "PathCompleted"
	case EventCelebrationElapsed:
		return "CelebrationElapsed"
	case EventRestart:
		return "Restart"
	default:
		return "Unknown"
	}
}

type transitionKey struct {
	from  state.GameState
	event Event
}

type transition struct {
	to     state.GameState
	action func(e *Engine, now time.Time)
}

// transitions is the complete state × event table. Pairs not listed are ignored.
var transitions = map[transitionKey]transition{
	{state.StateNone, EventStart}:             {state.StatePathView, (*Engine).beginRound},
	{state.StatePathView, EventRevealElapsed}: {state.StateGame, (*Engine).startPlayClock},
	{state.StateGame, EventBudgetExpired}:     {state.StateLost, (*Engine).loseRound},
	{state.StateGame, EventMismatch}:          {state.StateLost, (*Engine).loseRound},
	{state.StateGame, EventPathCompleted}:     {state.StateWon, (*Engine).winRound},
	{state.StateWon, EventCelebrationElapsed}: {state.StatePathView, (*Engine).advanceRound},
	{state.StateLost, EventRestart}:           {state.StatePathView, (*Engine).restartRound},
}

// Engine owns a session and drives it through the transition table
type Engine struct {
	session *state.Session
	catalog *level.Catalog
	rng     *rand.Rand
	timing  Timing
}

// Option configures an Engine
type Option func(*Engine)

// WithRand sets the random source used to pick levels
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) { e.rng = rng }
}

// WithTiming overrides the phase durations
func WithTiming(t Timing) Option {
	return func(e *Engine) { e.timing = t }
}

// NewEngine creates an engine with a fresh session in StateNone
func NewEngine(catalog *level.Catalog, opts ...Option) *Engine {
	e := &Engine{
		catalog: catalog,
		timing:  DefaultTiming(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	e.session = state.NewSession(e.timing.InitialBudget)
	return e
}

// Session returns the session owned by the engine
func (e *Engine) Session() *state.Session {
	return e.session
}

// Timing returns the phase durations in use
func (e *Engine) Timing() Timing {
	return e.timing
}

// Fire applies ev to the current state. It reports false, changing
// nothing, when the table has no entry for the pair.
func (e *Engine) Fire(ev Event, now time.Time) bool {
	from := e.session.State
	tr, ok := transitions[transitionKey{from: from, event: ev}]
	if !ok {
		return false
	}

	tr.action(e, now)
	e.session.State = tr.to

	log.Debug().
		Str("round", e.session.RoundID.String()).
		Stringer("event", ev).
		Stringer("from", from).
		Stringer("to", tr.to).
		Int("streak", e.session.WinStreak).
		Msg("state transition")
	return true
}

// PendingEvent returns the time-based event due for s at now, if any.
func PendingEvent(s *state.Session, t Timing, now time.Time) (Event, bool) {
	elapsed := s.Elapsed(now)

	switch s.State {
	case state.StateNone:
		return EventStart, true
	case state.StatePathView:
		if elapsed >= t.Reveal {
			return EventRevealElapsed, true
		}
	case state.StateGame:
		if elapsed >= s.TimeBudget {
			return EventBudgetExpired, true
		}
	case state.StateWon:
		if elapsed >= t.Celebration {
			return EventCelebrationElapsed, true
		}
	case state.StateLost:
		if t.AutoRestart > 0 && elapsed >= t.AutoRestart {
			return EventRestart, true
		}
	}
	return 0, false
}

// Tick evaluates the time-based transitions once. At most one fires.
func (e *Engine) Tick(now time.Time) (Event, bool) {
	ev, ok := PendingEvent(e.session, e.timing, now)
	if !ok {
		return 0, false
	}
	return ev, e.Fire(ev, now)
}
