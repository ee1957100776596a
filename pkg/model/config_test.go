package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_NilUsesDefaults(t *testing.T) {
	cfg := NewConfig(nil)
	assert.Equal(t, DefaultConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestNewConfig_PositiveOverrides(t *testing.T) {
	cfg := NewConfig(&Config{
		Periods:       30,
		PRTP:          0.001,
		EMU:           1.0,
		Scenario:      MTFR,
		Horizon:       20,
		HealthValue:   true,
		VSLElasticity: 1.0,
	})

	assert.Equal(t, 30, cfg.Periods)
	assert.InDelta(t, 0.001, cfg.PRTP, 1e-12)
	assert.InDelta(t, 1.0, cfg.EMU, 1e-12)
	assert.Equal(t, MTFR, cfg.Scenario)
	assert.Equal(t, 20, cfg.Horizon)
	assert.InDelta(t, 1.0, cfg.VSLElasticity, 1e-12)

	// Untouched fields fall back to defaults.
	def := DefaultConfig()
	assert.InDelta(t, def.DamageShape, cfg.DamageShape, 1e-12)
	assert.InDelta(t, def.Kuznets, cfg.Kuznets, 1e-12)
}

func TestNewConfig_UnsetAndClamp(t *testing.T) {
	t.Run("negative_vsl_elasticity_defaults", func(t *testing.T) {
		cfg := NewConfig(&Config{Periods: 10, VSLElasticity: -1, HealthValue: true})
		assert.InDelta(t, DefaultConfig().VSLElasticity, cfg.VSLElasticity, 1e-12)
	})
	t.Run("zero_kuznets_defaults", func(t *testing.T) {
		cfg := NewConfig(&Config{Periods: 10, HealthValue: true})
		assert.InDelta(t, DefaultConfig().Kuznets, cfg.Kuznets, 1e-12)
	})
	t.Run("horizon_clamped_to_periods", func(t *testing.T) {
		cfg := NewConfig(&Config{Periods: 10, Horizon: 45, HealthValue: true})
		assert.Equal(t, 10, cfg.Horizon)
	})
	t.Run("health_value_false_respected", func(t *testing.T) {
		cfg := NewConfig(&Config{Periods: 10})
		assert.False(t, cfg.HealthValue)
	})
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		c := DefaultConfig()
		c.Periods = 20
		c.Horizon = 20
		return c
	}

	t.Run("ok", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})
	t.Run("too_few_periods", func(t *testing.T) {
		c := valid()
		c.Periods = 1
		assert.ErrorIs(t, c.Validate(), ErrBadPeriods)
	})
	t.Run("too_many_periods", func(t *testing.T) {
		c := valid()
		c.Periods = MaxPeriods + 1
		assert.ErrorIs(t, c.Validate(), ErrBadPeriods)
	})
	t.Run("negative_time_preference", func(t *testing.T) {
		c := valid()
		c.PRTP = -0.01
		assert.ErrorIs(t, c.Validate(), ErrBadDiscounting)
	})
	t.Run("zero_elasticity", func(t *testing.T) {
		c := valid()
		c.EMU = 0
		assert.ErrorIs(t, c.Validate(), ErrBadDiscounting)
	})
	t.Run("horizon_past_run_end", func(t *testing.T) {
		c := valid()
		c.Horizon = c.Periods + 5
		assert.ErrorIs(t, c.Validate(), ErrBadHorizon)
	})
	t.Run("horizon_too_short", func(t *testing.T) {
		c := valid()
		c.Horizon = 1
		assert.ErrorIs(t, c.Validate(), ErrBadHorizon)
	})
	t.Run("unknown_scenario", func(t *testing.T) {
		c := valid()
		c.Scenario = Scenario(9)
		assert.ErrorIs(t, c.Validate(), ErrBadScenario)
	})
	t.Run("negative_vsl_elasticity", func(t *testing.T) {
		c := valid()
		c.VSLElasticity = -0.5
		assert.ErrorIs(t, c.Validate(), ErrBadValuation)
	})
}

func TestScenario_String(t *testing.T) {
	assert.Equal(t, "current legislation", CLE.String())
	assert.Equal(t, "max technically feasible reduction", MTFR.String())
	assert.Equal(t, "unknown", Scenario(42).String())
}
