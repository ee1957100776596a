package optimize

import (
	"context"
	"time"
)

// Objective scores one candidate point. An error marks the candidate as
// unusable without aborting the search.
type Objective func(x []float64) (float64, error)

// Problem is one bounded maximization. All slices share the dimension of
// the search space.
type Problem struct {
	Lower     []float64
	Upper     []float64
	Initial   []float64
	Objective Objective
}

// Stop bundles the termination criteria a search honors. Zero values
// disable a criterion.
type Stop struct {
	// MaxTime is the wall-clock budget for the whole search.
	MaxTime time.Duration
	// FtolRel stops the search once the relative objective improvement
	// between iterates falls below it.
	FtolRel float64
}

// Outcome is what a finished search reports: the best point it saw, its
// raw objective value, the backend's termination reason, and how many
// candidates were scored.
type Outcome struct {
	X      []float64
	Value  float64
	Status string
	Evals  int
}

// Maximizer runs one bounded maximization to termination.
//
// Cancellation is coarse: the context is consulted before the search
// starts, and a search already running terminates through the Stop
// criteria, not the context. Implementations that can return a usable
// best point alongside a failure should do so; callers decide whether a
// non-converged status is fatal.
type Maximizer interface {
	Maximize(ctx context.Context, p Problem, s Stop) (Outcome, error)
}
