package policy

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/policymodel/riceair/pkg/mathutil"
	"github.com/policymodel/riceair/pkg/types"
)

// DefaultTheta2 is the abatement-cost curve exponent the model publishes.
const DefaultTheta2 = 2.8

// Ceiling returns the full-decarbonization tax trajectory: for every
// period, the highest regional backstop price in dollars per tonne. A
// tax at or above the ceiling buys full abatement in every region.
func Ceiling(backstop *mat.Dense) ([]float64, error) {
	if err := checkBackstop(backstop); err != nil {
		return nil, err
	}
	rows, cols := backstop.Dims()
	out := make([]float64, rows)
	row := make([]float64, cols)
	for t := 0; t < rows; t++ {
		mat.Row(row, t, backstop)
		out[t] = types.PerTonne(floats.Max(row)).ToFloat64()
	}
	return out, nil
}

// Mitigation maps a candidate tax onto regional abatement fractions.
//
// tax covers the decision window starting at period 2; period 1 is fixed
// at zero and periods past the window ride the ceiling. The returned
// trajectory is the full-horizon tax with both fixed ends in place, and
// the abatement matrix is [period, region] with
//
//	miu[t,r] = clamp01((traj[t] / price[t,r])^(1/(theta2-1)))
//
// where price is the backstop entry scaled to dollars per tonne. A tax
// at or above a region's backstop price buys full decarbonization there;
// a zero tax buys none. The mapping is pure: same inputs, same outputs,
// and the model is never touched.
func Mitigation(tax []float64, backstop *mat.Dense, theta2 float64) (*mat.Dense, []float64, error) {
	ceiling, err := Ceiling(backstop)
	if err != nil {
		return nil, nil, err
	}
	rows, cols := backstop.Dims()
	if len(tax) > rows-1 {
		return nil, nil, fmt.Errorf("%w: window %d, horizon %d", ErrTaxLength, len(tax), rows)
	}
	if !(theta2 > 1) {
		return nil, nil, fmt.Errorf("%w: theta2=%g", ErrBadExponent, theta2)
	}

	traj := make([]float64, rows)
	copy(traj[1:], tax)
	for t := len(tax) + 1; t < rows; t++ {
		traj[t] = ceiling[t]
	}

	exp := 1 / (theta2 - 1)
	miu := mat.NewDense(rows, cols, nil)
	for t := 0; t < rows; t++ {
		for r := 0; r < cols; r++ {
			price := types.PerTonne(backstop.At(t, r)).ToFloat64()
			miu.Set(t, r, mathutil.Clamp01(mathutil.Pow(traj[t]/price, exp)))
		}
	}
	return miu, traj, nil
}

func checkBackstop(backstop *mat.Dense) error {
	if backstop == nil {
		return ErrNoBackstop
	}
	rows, cols := backstop.Dims()
	if rows == 0 || cols == 0 {
		return ErrNoBackstop
	}
	for t := 0; t < rows; t++ {
		for r := 0; r < cols; r++ {
			// !(v > 0) also rejects NaN
			if v := backstop.At(t, r); !(v > 0) {
				return fmt.Errorf("%w: backstop[%d,%d]=%g", ErrBackstopDomain, t, r, v)
			}
		}
	}
	return nil
}
