package policy

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/mat"
)

// Normalize enforces the monotone tax ceiling on a candidate trajectory.
//
// traj is period-1 aligned: traj[i] is the tax for period i+1 and is
// compared against the ceiling for the same period. Both sides are
// rounded to cents; at the first period where they agree, that period
// and every later one are overwritten with the exact ceiling, so a
// trajectory that touches full decarbonization never drops back below
// it. A candidate that never touches the ceiling comes back unchanged.
//
// The slice is mutated in place and returned. Applying Normalize twice
// yields the same result as applying it once.
func Normalize(traj []float64, backstop *mat.Dense) ([]float64, error) {
	ceiling, err := Ceiling(backstop)
	if err != nil {
		return nil, err
	}
	if len(traj) > len(ceiling) {
		return nil, fmt.Errorf("%w: trajectory %d, horizon %d", ErrTaxLength, len(traj), len(ceiling))
	}
	for i := range traj {
		if scalar.Round(traj[i], 2) != scalar.Round(ceiling[i], 2) {
			continue
		}
		copy(traj[i:], ceiling[i:len(traj)])
		break
	}
	return traj, nil
}
