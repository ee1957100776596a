package model

import "fmt"

// Scenario selects the exogenous air-pollution control storyline the
// model couples to.
type Scenario int

const (
	CLE  Scenario = iota // current legislation controls
	MTFR                 // maximum technically feasible reduction
)

func (s Scenario) String() string {
	switch s {
	case CLE:
		return "current legislation"
	case MTFR:
		return "max technically feasible reduction"
	default:
		return "unknown"
	}
}

// MaxPeriods is the longest horizon a run may cover (decadal steps).
const MaxPeriods = 60

// Config holds the per-run model parameters. One Config describes one
// experiment; it is passed by value and never stored globally.
// Units:
//   - Periods: decadal model steps, 2..60
//   - PRTP: pure rate of time preference, per year
//   - EMU: elasticity of marginal utility (inequality aversion), dimensionless
//   - DamageShape: regional damage-curve shape exponent, dimensionless
//   - Kuznets: co-pollutant intensity income exponent, dimensionless
//   - Horizon: last period whose damages enter welfare
//   - VSLElasticity: income elasticity of the value of statistical life
type Config struct {
	Periods       int
	PRTP          float64
	EMU           float64
	DamageShape   float64
	Kuznets       float64
	Scenario      Scenario
	Horizon       int
	HealthValue   bool
	VSLElasticity float64
}

// DefaultConfig returns a Config pre-filled with the model's published
// reference parameters.
func DefaultConfig() Config {
	return Config{
		Periods:       60,
		PRTP:          0.015, // 1.5%/yr time preference
		EMU:           1.5,
		DamageShape:   2.0,
		Kuznets:       -0.32, // intensity falls with income
		Scenario:      CLE,
		Horizon:       60,
		HealthValue:   true,
		VSLElasticity: 0.8,
	}
}

// NewConfig returns cfg merged over the defaults.
// Fields > 0 (or valid ranges) in cfg override defaults.
// Notes:
//   - Scenario is accepted verbatim (CLE is the zero value).
//   - HealthValue is taken verbatim; false disables health valuation.
//   - Kuznets of exactly 0 is treated as "unset" and defaulted.
//   - Negative VSLElasticity is treated as "unset" and defaulted.
//   - Periods/PRTP/EMU/DamageShape/Horizon must be > 0 to override defaults.
func NewConfig(cfg *Config) Config {
	base := DefaultConfig()

	// No user cfg: use defaults as-is.
	if cfg == nil {
		return base
	}

	merged := base

	// Positive-only overrides
	if cfg.Periods > 0 {
		merged.Periods = cfg.Periods
	}
	if cfg.PRTP > 0 {
		merged.PRTP = cfg.PRTP
	}
	if cfg.EMU > 0 {
		merged.EMU = cfg.EMU
	}
	if cfg.DamageShape > 0 {
		merged.DamageShape = cfg.DamageShape
	}
	if cfg.Horizon > 0 {
		merged.Horizon = cfg.Horizon
	}

	if cfg.Kuznets != 0 {
		merged.Kuznets = cfg.Kuznets
	}
	if cfg.VSLElasticity >= 0 {
		merged.VSLElasticity = cfg.VSLElasticity
	}

	merged.Scenario = cfg.Scenario
	merged.HealthValue = cfg.HealthValue

	// Damages past the run end are meaningless; clamp to avoid nonsense.
	if merged.Horizon > merged.Periods {
		merged.Horizon = merged.Periods
	}

	return merged
}

// Validate reports whether the config can drive a run.
func (c Config) Validate() error {
	if c.Periods < 2 || c.Periods > MaxPeriods {
		return fmt.Errorf("%w: periods=%d", ErrBadPeriods, c.Periods)
	}
	if c.PRTP < 0 || c.EMU <= 0 {
		return fmt.Errorf("%w: prtp=%g elasmu=%g", ErrBadDiscounting, c.PRTP, c.EMU)
	}
	if c.Horizon < 2 || c.Horizon > c.Periods {
		return fmt.Errorf("%w: horizon=%d periods=%d", ErrBadHorizon, c.Horizon, c.Periods)
	}
	if c.Scenario != CLE && c.Scenario != MTFR {
		return fmt.Errorf("%w: %d", ErrBadScenario, int(c.Scenario))
	}
	if c.VSLElasticity < 0 {
		return fmt.Errorf("%w: vsl elasticity=%g", ErrBadValuation, c.VSLElasticity)
	}
	return nil
}
