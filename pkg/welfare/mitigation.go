package welfare

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/policymodel/riceair/pkg/mathutil"
	"github.com/policymodel/riceair/pkg/model"
)

// GlobalMitigation accounts the realized mitigation of an optimized run.
//
// It reads the optimized industrial emissions, re-runs a snapshot of the
// instance with both abatement inputs forced to zero, and returns the
// per-period global mitigation rate
//
//	rate[t] = (baseline[t] - optimized[t]) / baseline[t]
//
// with emissions summed across regions first and rate 0 wherever the
// baseline itself is 0. The optimized instance is never touched; all
// baseline work happens on the snapshot.
func GlobalMitigation(m model.Model) ([]float64, error) {
	if m == nil {
		return nil, ErrNoModel
	}
	opt, err := m.ReadMatrix(model.ComponentEmissions, model.FieldIndustrialCO2)
	if err != nil {
		return nil, fmt.Errorf("read optimized emissions: %w", err)
	}
	rows, cols := opt.Dims()

	base := m.Snapshot()
	zeros := mat.NewDense(rows, cols, nil)
	if err := base.Configure(model.ComponentEmissions, model.FieldAbatement, zeros); err != nil {
		return nil, fmt.Errorf("zero industrial abatement: %w", err)
	}
	if err := base.Configure(model.ComponentAir, model.FieldAirAbatement, zeros); err != nil {
		return nil, fmt.Errorf("zero aerosol co-reduction: %w", err)
	}
	if err := base.Run(); err != nil {
		return nil, fmt.Errorf("baseline run: %w", err)
	}
	ref, err := base.ReadMatrix(model.ComponentEmissions, model.FieldIndustrialCO2)
	if err != nil {
		return nil, fmt.Errorf("read baseline emissions: %w", err)
	}
	if br, bc := ref.Dims(); br != rows || bc != cols {
		return nil, fmt.Errorf("%w: optimized %dx%d, baseline %dx%d", model.ErrShape, rows, cols, br, bc)
	}

	rates := make([]float64, rows)
	row := make([]float64, cols)
	for t := 0; t < rows; t++ {
		optSum := floats.Sum(mat.Row(row, t, opt))
		baseSum := floats.Sum(mat.Row(row, t, ref))
		rates[t] = mathutil.SafeDiv(baseSum-optSum, baseSum)
	}
	return rates, nil
}
