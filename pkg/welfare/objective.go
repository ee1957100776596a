// Package welfare turns one bound model instance into a scoring function
// over carbon-tax trajectories, and accounts what an optimized run
// actually mitigated.
package welfare

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/policymodel/riceair/pkg/model"
	"github.com/policymodel/riceair/pkg/policy"
)

// Objective evaluates candidate tax windows on one bound model instance.
// Every Eval reconfigures and re-runs that instance in place, so after
// any call the instance state corresponds to the last candidate scored.
type Objective struct {
	m          model.Model
	cfg        model.Config
	backstop   *mat.Dense
	theta2     float64
	cobenefits bool
	evals      int
}

// Option adjusts objective construction.
type Option func(*Objective)

// WithCobenefits toggles whether health co-benefits enter welfare. When
// disabled, the life-years and avoided-deaths inputs are zeroed on the
// bound instance at construction time so health effects cannot leak into
// any later run.
func WithCobenefits(on bool) Option { return func(o *Objective) { o.cobenefits = on } }

// WithTheta2 overrides the abatement cost exponent.
func WithTheta2(theta2 float64) Option { return func(o *Objective) { o.theta2 = theta2 } }

// New binds an objective to a model instance and a backstop table. The
// caller keeps ownership of the instance lifecycle; the objective only
// drives its inputs and runs.
func New(m model.Model, cfg model.Config, backstop *mat.Dense, opts ...Option) (*Objective, error) {
	if m == nil {
		return nil, ErrNoModel
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := policy.Ceiling(backstop); err != nil {
		return nil, err
	}
	rows, _ := backstop.Dims()
	if rows != cfg.Periods {
		return nil, fmt.Errorf("%w: table covers %d periods, config %d", ErrHorizonMismatch, rows, cfg.Periods)
	}

	o := &Objective{
		m:          m,
		cfg:        cfg,
		backstop:   backstop,
		theta2:     policy.DefaultTheta2,
		cobenefits: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	if !(o.theta2 > 1) {
		return nil, fmt.Errorf("%w: theta2=%g", policy.ErrBadExponent, o.theta2)
	}
	if !o.cobenefits {
		if err := o.zeroHealthInputs(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (o *Objective) zeroHealthInputs() error {
	rows, cols := o.backstop.Dims()
	zeros := mat.NewDense(rows, cols, nil)
	if err := o.m.Configure(model.ComponentAir, model.FieldLifeYears, zeros); err != nil {
		return fmt.Errorf("zero life-years input: %w", err)
	}
	if err := o.m.Configure(model.ComponentAir, model.FieldAvoidedDeaths, zeros); err != nil {
		return fmt.Errorf("zero avoided-deaths input: %w", err)
	}
	return nil
}

// Evaluation is one completed, immutable scoring of a candidate.
type Evaluation struct {
	Tax        []float64  // normalized decision window, periods 2..len+1
	Trajectory []float64  // full-horizon tax, period 1 first
	Abatement  *mat.Dense // [period, region] fractions written into the model
	Welfare    float64
}

// Eval scores one candidate tax window. The candidate is treated as
// read-only; normalization happens on an internal copy. The same
// abatement matrix is written into both the industrial and the aerosol
// control inputs before the run, mirroring how a carbon price cuts
// co-emitted pollutants alongside CO2.
func (o *Objective) Eval(tax []float64) (Evaluation, error) {
	if len(tax) == 0 || len(tax) > o.cfg.Periods-1 {
		return Evaluation{}, fmt.Errorf("%w: window %d, periods %d", ErrWindow, len(tax), o.cfg.Periods)
	}

	// Period 1 carries no tax; prefix it so the ceiling comparison is
	// period-aligned, then strip it back off.
	prefixed := make([]float64, len(tax)+1)
	copy(prefixed[1:], tax)
	prefixed, err := policy.Normalize(prefixed, o.backstop)
	if err != nil {
		return Evaluation{}, err
	}
	window := prefixed[1:]

	miu, traj, err := policy.Mitigation(window, o.backstop, o.theta2)
	if err != nil {
		return Evaluation{}, err
	}

	if err := o.m.Configure(model.ComponentEmissions, model.FieldAbatement, miu); err != nil {
		return Evaluation{}, fmt.Errorf("configure industrial abatement: %w", err)
	}
	if err := o.m.Configure(model.ComponentAir, model.FieldAirAbatement, miu); err != nil {
		return Evaluation{}, fmt.Errorf("configure aerosol co-reduction: %w", err)
	}
	if err := o.m.Run(); err != nil {
		return Evaluation{}, fmt.Errorf("model run: %w", err)
	}
	w, err := o.m.ReadScalar(model.ComponentWelfare, model.FieldUtility)
	if err != nil {
		return Evaluation{}, fmt.Errorf("read welfare: %w", err)
	}

	o.evals++
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return Evaluation{}, &EvalError{Eval: o.evals, Welfare: w}
	}
	return Evaluation{Tax: window, Trajectory: traj, Abatement: miu, Welfare: w}, nil
}

// Evals returns how many model runs this objective has completed,
// failed scorings included.
func (o *Objective) Evals() int { return o.evals }

// Model returns the bound instance.
func (o *Objective) Model() model.Model { return o.m }

// Config returns the run configuration the objective was built with.
func (o *Objective) Config() model.Config { return o.cfg }

// Backstop returns the bound backstop table.
func (o *Objective) Backstop() *mat.Dense { return o.backstop }
