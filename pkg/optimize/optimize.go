// Package optimize drives welfare objectives through NLopt searches and
// reports normalized optimal tax trajectories.
package optimize

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/policymodel/riceair/pkg/policy"
	"github.com/policymodel/riceair/pkg/types"
	"github.com/policymodel/riceair/pkg/welfare"
)

// MaxWindow caps the number of decision periods one run may optimize.
// Period 1 is never taxed, so a full-length horizon leaves at most
// MaxPeriods-1 free variables.
const MaxWindow = 59

// Params configures one optimization run.
type Params struct {
	Algorithm Algorithm
	// Window is the number of decision periods, covering model periods
	// 2..Window+1. Later periods ride the backstop ceiling.
	Window int
	// MaxTime is the wall-clock budget for the search.
	MaxTime time.Duration
	// FtolRel stops the search once relative welfare improvement between
	// iterates falls below it.
	FtolRel float64
	// Initial is an optional starting trajectory, len == Window. Nil
	// starts from zero taxes everywhere.
	Initial []float64
}

// DefaultParams returns the published run setup: subplex over 30
// decision periods, stopping on a 15 minute budget or 1e-6 relative
// welfare improvement.
func DefaultParams() Params {
	return Params{
		Algorithm: Sbplx,
		Window:    30,
		MaxTime:   15 * time.Minute,
		FtolRel:   1e-6,
	}
}

// Result is one completed optimization run. Tax, Trajectory, Abatement
// and Welfare come from a fresh evaluation at the normalized optimum, so
// they agree with each other and with the bound instance's final state.
type Result struct {
	ID         uuid.UUID
	Algorithm  Algorithm
	Tax        []float64  // optimal decision window, periods 2..Window+1
	Trajectory []float64  // full-horizon tax, period 1 first
	Abatement  *mat.Dense // [period, region] fractions at the optimum
	Welfare    float64
	Status     string // backend termination reason
	Evals      int    // candidates scored during the search
	Runtime    time.Duration
}

// Runner executes optimization runs. The zero value is not usable;
// construct with NewRunner.
type Runner struct {
	newMax func(Algorithm) (Maximizer, error)
	log    *slog.Logger
}

// NewRunner returns a Runner logging through log, or slog.Default()
// when log is nil.
func NewRunner(log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		newMax: func(a Algorithm) (Maximizer, error) { return NewMaximizer(a, log) },
		log:    log,
	}
}

// Run searches for the welfare-maximizing tax window of obj.
//
// The search runs over bounds [0, ceiling] per decision period. A
// search that stops without converging is not fatal: as long as the
// backend hands back a usable point, the run proceeds with it and the
// termination reason lands in Result.Status. The reported optimum is
// always re-evaluated once through obj, so the bound model instance
// ends the run holding the optimal trajectory's state.
func (r *Runner) Run(ctx context.Context, obj *welfare.Objective, p Params) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if obj == nil {
		return Result{}, ErrNoObjective
	}

	limit := obj.Config().Periods - 1
	if limit > MaxWindow {
		limit = MaxWindow
	}
	if p.Window < 1 || p.Window > limit {
		return Result{}, fmt.Errorf("%w: window=%d, usable 1..%d", ErrBadWindow, p.Window, limit)
	}

	ceiling, err := policy.Ceiling(obj.Backstop())
	if err != nil {
		return Result{}, err
	}
	upper := ceiling[1 : p.Window+1]
	lower := make([]float64, p.Window)

	initial := p.Initial
	if initial == nil {
		initial = make([]float64, p.Window)
	}
	if len(initial) != p.Window {
		return Result{}, fmt.Errorf("%w: len=%d, window=%d", ErrBadInitial, len(initial), p.Window)
	}
	for i, v := range initial {
		if v < lower[i] || v > upper[i] {
			return Result{}, fmt.Errorf("%w: x[%d]=%g, bounds [0, %g]", ErrBadInitial, i, v, upper[i])
		}
	}

	maximizer, err := r.newMax(p.Algorithm)
	if err != nil {
		return Result{}, err
	}

	id := uuid.New()
	r.log.Info("optimization started",
		"run", id,
		"algorithm", p.Algorithm.String(),
		"global", p.Algorithm.Global(),
		"window", p.Window,
		"budget", p.MaxTime,
		"top_bound", types.Price(floats.Max(upper)).Humanized(),
	)

	start := time.Now()
	outcome, err := maximizer.Maximize(ctx, Problem{
		Lower:   lower,
		Upper:   upper,
		Initial: initial,
		Objective: func(x []float64) (float64, error) {
			ev, evalErr := obj.Eval(x)
			if evalErr != nil {
				return 0, evalErr
			}
			return ev.Welfare, nil
		},
	}, Stop{MaxTime: p.MaxTime, FtolRel: p.FtolRel})
	if err != nil {
		if len(outcome.X) != p.Window {
			return Result{}, err
		}
		r.log.Warn("search ended without convergence", "run", id, "status", outcome.Status, "err", err)
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Rescore at the optimum. The search's own best value can refer to a
	// pre-normalization candidate; one more pass leaves trajectory,
	// welfare, and instance state telling the same story.
	ev, err := obj.Eval(outcome.X)
	if err != nil {
		return Result{}, fmt.Errorf("optimize: rescore optimum: %w", err)
	}

	res := Result{
		ID:         id,
		Algorithm:  p.Algorithm,
		Tax:        ev.Tax,
		Trajectory: ev.Trajectory,
		Abatement:  ev.Abatement,
		Welfare:    ev.Welfare,
		Status:     outcome.Status,
		Evals:      outcome.Evals,
		Runtime:    time.Since(start),
	}
	r.log.Info("optimization finished",
		"run", id,
		"status", res.Status,
		"welfare", res.Welfare,
		"evals", res.Evals,
		"runtime", res.Runtime,
		"peak_tax", types.Price(floats.Max(ev.Trajectory)).Humanized(),
	)
	return res, nil
}
