package gameplay

import (
	"time"

	"github.com/rs/zerolog/log"
)

// beginRound picks a level and copies it into the session
func (e *Engine) beginRound(now time.Time) {
	l := e.catalog.Pick(e.rng)
	e.session.StartRound(l, now)

	log.Info().
		Str("round", e.session.RoundID.String()).
		Str("level", l.Name).
		Int("moves", len(l.Path)).
		Dur("budget", e.session.TimeBudget).
		Msg("round started")
}

// startPlayClock restarts the clock when the path is hidden
func (e *Engine) startPlayClock(now time.Time) {
	e.session.RoundStart = now
}

func (e *Engine) winRound(now time.Time) {
	s := e.session
	s.WinStreak++
	if s.WinStreak > s.BestStreak {
		s.BestStreak = s.WinStreak
	}
	s.RoundStart = now

	log.Info().Str("round", s.RoundID.String()).Int("streak", s.WinStreak).Msg("round won")
}

func (e *Engine) loseRound(now time.Time) {
	s := e.session
	log.Info().
		Str("round", s.RoundID.String()).
		Int("streak", s.WinStreak).
		Int("moves_left", len(s.RemainingPath)).
		Msg("round lost")

	s.WinStreak = 0
	s.RoundStart = now
}

// advanceRound applies difficulty progression then starts the next round
func (e *Engine) advanceRound(now time.Time) {
	s := e.session
	if budget := NextBudget(s.WinStreak, s.TimeBudget); budget != s.TimeBudget {
		log.Info().Int("streak", s.WinStreak).Dur("budget", budget).Msg("time budget reduced")
		s.TimeBudget = budget
	}
	e.beginRound(now)
}

// restartRound starts over after a loss with the initial budget
func (e *Engine) restartRound(now time.Time) {
	e.session.TimeBudget = e.timing.InitialBudget
	e.beginRound(now)
}
