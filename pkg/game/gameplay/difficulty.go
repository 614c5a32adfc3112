package gameplay

import "time"

// Timing holds the durations of the timed phases
type Timing struct {
	Reveal        time.Duration // PathView length
	Celebration   time.Duration // Won screen length
	InitialBudget time.Duration // play time for a fresh streak
	AutoRestart   time.Duration // Lost screen length before a new round; 0 waits for input
}

// DefaultTiming returns the stock durations
func DefaultTiming() Timing {
	return Timing{
		Reveal:        1000 * time.Millisecond,
		Celebration:   1000 * time.Millisecond,
		InitialBudget: 2000 * time.Millisecond,
	}
}

// threshold pins the time budget once the win streak reaches Streak
type threshold struct {
	Streak int
	Budget time.Duration
}

var thresholds = []threshold{
	{Streak: 3, Budget: 950 * time.Millisecond},
	{Streak: 5, Budget: 900 * time.Millisecond},
	{Streak: 10, Budget: 850 * time.Millisecond},
	{Streak: 15, Budget: 750 * time.Millisecond},
}

// NextBudget returns the time budget after a win that brought the streak
// to streak. Only an exact threshold hit changes it, and never upwards.
func NextBudget(streak int, current time.Duration) time.Duration {
	for _, th := range thresholds {
		if streak == th.Streak {
			return min(th.Budget, current)
		}
	}
	return current
}
