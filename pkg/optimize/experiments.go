package optimize

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/policymodel/riceair/pkg/welfare"
)

// Experiment names one objective/params pairing inside a batch, e.g.
// the same policy question under different discounting or with health
// co-benefits switched off.
type Experiment struct {
	Name      string
	Objective *welfare.Objective
	Params    Params
}

// RunAll executes the experiments concurrently and returns their
// results in input order. Every experiment must bring its own
// objective, each bound to its own model instance; the batch is
// rejected up front when two experiments share one. The first failure
// cancels the remaining runs.
func (r *Runner) RunAll(ctx context.Context, experiments []Experiment) ([]Result, error) {
	if len(experiments) == 0 {
		return nil, ErrNoExperiments
	}
	seen := make(map[*welfare.Objective]string, len(experiments))
	for _, e := range experiments {
		if e.Objective == nil {
			return nil, fmt.Errorf("%w: experiment %q", ErrNoObjective, e.Name)
		}
		if prev, ok := seen[e.Objective]; ok {
			return nil, fmt.Errorf("%w: %q and %q", ErrSharedObjective, prev, e.Name)
		}
		seen[e.Objective] = e.Name
	}

	r.log.Info("experiment batch started", "experiments", len(experiments))
	results := make([]Result, len(experiments))
	g, ctx := errgroup.WithContext(ctx)
	for i, e := range experiments {
		g.Go(func() error {
			res, err := r.Run(ctx, e.Objective, e.Params)
			if err != nil {
				return fmt.Errorf("experiment %q: %w", e.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
