// Package modeltest provides an in-memory Model double for exercising
// the optimization pipeline without a real coupled model.
package modeltest

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/policymodel/riceair/pkg/model"
)

// Model is a configurable stand-in for a RICE+AIR implementation.
// Welfare responds concavely to industrial abatement so searches have an
// interior optimum, emissions scale down linearly with abatement, and
// the health inputs contribute a proportional co-benefit:
//
//	welfare    = sum over cells of Gain*miu - Cost*miu^2 + Cobenefit*miuAir*(lyg+deaths)
//	eind[t,r]  = baseline[t,r] * (1 - miu[t,r])
//
// It is a test double, not a climate model.
type Model struct {
	// Welfare response coefficients, applied per cell.
	Gain      float64
	Cost      float64
	Cobenefit float64

	// WelfareFn, when set, replaces the built-in welfare response.
	WelfareFn func(m *Model) float64

	periods, regions int
	baseline         *mat.Dense
	inputs           map[string]*mat.Dense
	welfare          float64
	eind             *mat.Dense
	runs             int
}

var _ model.Model = (*Model)(nil)

// New builds a double with all-zero abatement inputs, unit health
// inputs, a uniform 10 GtC baseline, and a gently concave welfare
// response peaking at an interior abatement level.
func New(periods, regions int) *Model {
	m := &Model{
		Gain:      2.0,
		Cost:      2.0,
		Cobenefit: 0.25,
		periods:   periods,
		regions:   regions,
		baseline:  constant(periods, regions, 10),
		inputs:    make(map[string]*mat.Dense, 4),
	}
	m.inputs[key(model.ComponentEmissions, model.FieldAbatement)] = mat.NewDense(periods, regions, nil)
	m.inputs[key(model.ComponentAir, model.FieldAirAbatement)] = mat.NewDense(periods, regions, nil)
	m.inputs[key(model.ComponentAir, model.FieldLifeYears)] = constant(periods, regions, 1)
	m.inputs[key(model.ComponentAir, model.FieldAvoidedDeaths)] = constant(periods, regions, 1)
	return m
}

func key(component, field string) string { return component + "/" + field }

func constant(rows, cols int, v float64) *mat.Dense {
	d := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			d.Set(i, j, v)
		}
	}
	return d
}

func (m *Model) Configure(component, field string, value *mat.Dense) error {
	k := key(component, field)
	switch k {
	case key(model.ComponentEmissions, model.FieldAbatement),
		key(model.ComponentAir, model.FieldAirAbatement),
		key(model.ComponentAir, model.FieldLifeYears),
		key(model.ComponentAir, model.FieldAvoidedDeaths):
	default:
		return fmt.Errorf("%w: %s", model.ErrUnknownField, k)
	}
	if value == nil {
		return fmt.Errorf("%w: %s", model.ErrNilTable, k)
	}
	if rows, cols := value.Dims(); rows != m.periods || cols != m.regions {
		return fmt.Errorf("%w: %s is %dx%d, want %dx%d", model.ErrShape, k, rows, cols, m.periods, m.regions)
	}
	m.inputs[k] = mat.DenseCopyOf(value)
	return nil
}

func (m *Model) Run() error {
	miu := m.inputs[key(model.ComponentEmissions, model.FieldAbatement)]
	miuAir := m.inputs[key(model.ComponentAir, model.FieldAirAbatement)]
	lyg := m.inputs[key(model.ComponentAir, model.FieldLifeYears)]
	deaths := m.inputs[key(model.ComponentAir, model.FieldAvoidedDeaths)]

	if m.WelfareFn != nil {
		m.welfare = m.WelfareFn(m)
	} else {
		var w float64
		for t := 0; t < m.periods; t++ {
			for r := 0; r < m.regions; r++ {
				mu := miu.At(t, r)
				w += m.Gain*mu - m.Cost*mu*mu
				w += m.Cobenefit * miuAir.At(t, r) * (lyg.At(t, r) + deaths.At(t, r))
			}
		}
		m.welfare = w
	}

	eind := mat.NewDense(m.periods, m.regions, nil)
	for t := 0; t < m.periods; t++ {
		for r := 0; r < m.regions; r++ {
			eind.Set(t, r, m.baseline.At(t, r)*(1-miu.At(t, r)))
		}
	}
	m.eind = eind
	m.runs++
	return nil
}

func (m *Model) ReadScalar(component, field string) (float64, error) {
	if component != model.ComponentWelfare || field != model.FieldUtility {
		return 0, fmt.Errorf("%w: %s", model.ErrUnknownField, key(component, field))
	}
	if m.runs == 0 {
		return 0, model.ErrNotRun
	}
	return m.welfare, nil
}

func (m *Model) ReadMatrix(component, field string) (*mat.Dense, error) {
	if component != model.ComponentEmissions || field != model.FieldIndustrialCO2 {
		return nil, fmt.Errorf("%w: %s", model.ErrUnknownField, key(component, field))
	}
	if m.runs == 0 {
		return nil, model.ErrNotRun
	}
	return mat.DenseCopyOf(m.eind), nil
}

func (m *Model) Snapshot() model.Model {
	cp := &Model{
		Gain:      m.Gain,
		Cost:      m.Cost,
		Cobenefit: m.Cobenefit,
		WelfareFn: m.WelfareFn,
		periods:   m.periods,
		regions:   m.regions,
		baseline:  mat.DenseCopyOf(m.baseline),
		inputs:    make(map[string]*mat.Dense, len(m.inputs)),
		welfare:   m.welfare,
		runs:      m.runs,
	}
	if m.eind != nil {
		cp.eind = mat.DenseCopyOf(m.eind)
	}
	for k, v := range m.inputs {
		cp.inputs[k] = mat.DenseCopyOf(v)
	}
	return cp
}

// Input returns the stored input table for white-box assertions. The
// returned matrix is the double's own storage; treat it as read-only.
func (m *Model) Input(component, field string) *mat.Dense {
	return m.inputs[key(component, field)]
}

// SetBaseline replaces the zero-abatement emissions table.
func (m *Model) SetBaseline(b *mat.Dense) error {
	if b == nil {
		return model.ErrNilTable
	}
	if rows, cols := b.Dims(); rows != m.periods || cols != m.regions {
		return fmt.Errorf("%w: baseline is %dx%d, want %dx%d", model.ErrShape, rows, cols, m.periods, m.regions)
	}
	m.baseline = mat.DenseCopyOf(b)
	return nil
}

// Runs returns how many times Run has completed.
func (m *Model) Runs() int { return m.runs }
