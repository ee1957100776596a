package model

import "errors"

var (
	// ErrBadPeriods indicates a run length outside 2..MaxPeriods.
	ErrBadPeriods = errors.New("model: run length out of range")

	// ErrBadDiscounting indicates a negative time preference or a
	// non-positive elasticity of marginal utility.
	ErrBadDiscounting = errors.New("model: bad discounting parameters")

	// ErrBadHorizon indicates a damage horizon outside 2..Periods.
	ErrBadHorizon = errors.New("model: damage horizon out of range")

	// ErrBadScenario indicates an unknown air-pollution scenario selector.
	ErrBadScenario = errors.New("model: unknown scenario")

	// ErrBadValuation indicates an unusable health-valuation parameter.
	ErrBadValuation = errors.New("model: bad valuation parameter")

	// ErrUnknownField indicates a component/field pair the instance does
	// not expose.
	ErrUnknownField = errors.New("model: unknown component or field")

	// ErrNilTable indicates Configure was called with a nil value table.
	ErrNilTable = errors.New("model: nil value table")

	// ErrShape indicates a table whose dimensions disagree with the run.
	ErrShape = errors.New("model: table dimensions mismatch")

	// ErrNotRun indicates outputs were read before the first Run.
	ErrNotRun = errors.New("model: outputs read before run")
)
