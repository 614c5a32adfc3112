package gameplay

import (
	"time"

	engineinput "pathrecall/pkg/engine/input"
	"pathrecall/pkg/engine/world"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
// Quit and screenshot are left to the host loop.
func (e *Engine) ProcessIntent(intent engineinput.Intent, now time.Time) {
	switch intent.Action {
	case engineinput.ActionMoveUp,
		engineinput.ActionMoveDown,
		engineinput.ActionMoveRight,
		engineinput.ActionMoveLeft:
		e.HandleDirection(intent.Direction(), now)

	case engineinput.ActionRestart:
		e.Fire(EventRestart, now)
	}
}

// HandleDirection validates one move against the head of the remaining
// path. It does nothing outside StateGame or for an invalid direction.
// A mismatch loses the round and leaves the player where it was; a match
// moves the player and wins the round once the path is used up.
func (e *Engine) HandleDirection(d world.Direction, now time.Time) {
	s := e.session
	if !s.AcceptsMoves() || !d.IsValid() {
		return
	}

	expected, ok := s.PopMove()
	if !ok || expected != d {
		e.Fire(EventMismatch, now)
		return
	}

	s.Player = s.Player.Step(d)

	if len(s.RemainingPath) == 0 {
		e.Fire(EventPathCompleted, now)
	}
}
