package welfare

import (
	"errors"
	"fmt"
)

var (
	// ErrNoModel indicates an objective built without a model instance.
	ErrNoModel = errors.New("welfare: nil model instance")

	// ErrHorizonMismatch indicates a backstop table whose period count
	// disagrees with the run configuration.
	ErrHorizonMismatch = errors.New("welfare: backstop horizon mismatch")

	// ErrWindow indicates a decision window that is empty or longer than
	// the optimizable periods.
	ErrWindow = errors.New("welfare: bad decision window")

	// ErrNonFinite is the category every EvalError unwraps to.
	ErrNonFinite = errors.New("welfare: non-finite welfare")
)

// EvalError reports a completed model run whose welfare output is
// unusable for optimization. It is distinct from configuration errors:
// the inputs were well-formed and the run finished, but the number that
// came back cannot be ranked.
type EvalError struct {
	Eval    int     // 1-based evaluation ordinal on the objective
	Welfare float64 // the offending value (NaN or ±Inf)
}

func (e *EvalError) Error() string {
	return fmt.Sprintf("welfare: evaluation %d produced non-finite welfare %v", e.Eval, e.Welfare)
}

func (e *EvalError) Unwrap() error { return ErrNonFinite }
