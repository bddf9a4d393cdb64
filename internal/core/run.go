package core

import "time"

// RunOutcome is how a single level attempt ended.
type RunOutcome string

const (
	OutcomeCleared RunOutcome = "cleared"
	OutcomeDied    RunOutcome = "died"
)

// LevelRun is one finished attempt at a level.
type LevelRun struct {
	LevelID  string
	Outcome  RunOutcome
	Duration time.Duration
	Coins    int
}
