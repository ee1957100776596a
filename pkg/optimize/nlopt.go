package optimize

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/go-nlopt/nlopt"
)

// sentinelWelfare is what the search sees for a candidate that could not
// be scored. NLopt cannot skip a point, so failed evaluations rank
// strictly below every finite welfare instead of aborting the run.
const sentinelWelfare = -1e30

type nloptMaximizer struct {
	algorithm Algorithm
	log       *slog.Logger
}

// NewMaximizer returns a Maximizer backed by the named NLopt algorithm.
// A nil logger falls back to slog.Default().
func NewMaximizer(a Algorithm, log *slog.Logger) (Maximizer, error) {
	if _, err := a.nloptCode(); err != nil {
		return nil, err
	}
	if log == nil {
		log = slog.Default()
	}
	return &nloptMaximizer{algorithm: a, log: log}, nil
}

// guardObjective adapts a fallible objective to the NLopt callback
// shape: errors become the sentinel score, and every call is counted.
func guardObjective(fn Objective, log *slog.Logger, evals *int) func(x, gradient []float64) float64 {
	return func(x, _ []float64) float64 {
		*evals++
		v, err := fn(x)
		if err != nil {
			log.Warn("candidate discarded", "eval", *evals, "err", err)
			return sentinelWelfare
		}
		return v
	}
}

func (m *nloptMaximizer) Maximize(ctx context.Context, p Problem, s Stop) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	code, err := m.algorithm.nloptCode()
	if err != nil {
		return Outcome{}, err
	}

	opt, err := nlopt.NewNLopt(code, uint(len(p.Initial)))
	if err != nil {
		return Outcome{}, fmt.Errorf("optimize: init %s: %w", m.algorithm, err)
	}
	defer opt.Destroy()

	if err := opt.SetLowerBounds(p.Lower); err != nil {
		return Outcome{}, fmt.Errorf("optimize: lower bounds: %w", err)
	}
	if err := opt.SetUpperBounds(p.Upper); err != nil {
		return Outcome{}, fmt.Errorf("optimize: upper bounds: %w", err)
	}

	var evals int
	if err := opt.SetMaxObjective(guardObjective(p.Objective, m.log, &evals)); err != nil {
		return Outcome{}, fmt.Errorf("optimize: objective: %w", err)
	}
	if s.MaxTime > 0 {
		if err := opt.SetMaxTime(s.MaxTime.Seconds()); err != nil {
			return Outcome{}, fmt.Errorf("optimize: max time: %w", err)
		}
	}
	if s.FtolRel > 0 {
		if err := opt.SetFtolRel(s.FtolRel); err != nil {
			return Outcome{}, fmt.Errorf("optimize: ftol: %w", err)
		}
	}

	x, v, optErr := opt.Optimize(p.Initial)
	out := Outcome{X: x, Value: v, Status: opt.LastStatus(), Evals: evals}
	if optErr != nil {
		// NLopt reports roundoff stalls and budget exhaustion as errors
		// while still handing back the best point it saw. Return both
		// and let the caller decide whether the status is fatal.
		return out, fmt.Errorf("optimize: %s stopped (%s): %w", m.algorithm, out.Status, optErr)
	}
	return out, nil
}
