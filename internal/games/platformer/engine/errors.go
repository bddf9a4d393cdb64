package engine

import (
	"errors"
	"fmt"
)

// Construction errors returned by NewLevel.
var (
	ErrEmptyPlan       = errors.New("level plan is empty")
	ErrRaggedPlan      = errors.New("level plan rows differ in length")
	ErrNoPlayer        = errors.New("level plan has no player")
	ErrMultiplePlayers = errors.New("level plan has more than one player")
)

// PlanError locates a construction error inside the plan.
// Row and Col are -1 when the error is not tied to a cell.
type PlanError struct {
	Row int
	Col int
	Err error
}

func (e *PlanError) Error() string {
	if e.Row < 0 {
		return e.Err.Error()
	}
	if e.Col < 0 {
		return fmt.Sprintf("row %d: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("row %d col %d: %v", e.Row, e.Col, e.Err)
}

// Unwrap returns the underlying sentinel error.
func (e *PlanError) Unwrap() error {
	return e.Err
}
