package modeltest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/policymodel/riceair/pkg/model"
)

func TestModel_ReadBeforeRun(t *testing.T) {
	m := New(4, 2)

	_, err := m.ReadScalar(model.ComponentWelfare, model.FieldUtility)
	require.ErrorIs(t, err, model.ErrNotRun)

	_, err = m.ReadMatrix(model.ComponentEmissions, model.FieldIndustrialCO2)
	require.ErrorIs(t, err, model.ErrNotRun)
}

func TestModel_ConfigureErrors(t *testing.T) {
	m := New(4, 2)

	t.Run("unknown_field", func(t *testing.T) {
		err := m.Configure(model.ComponentWelfare, model.FieldUtility, mat.NewDense(4, 2, nil))
		assert.ErrorIs(t, err, model.ErrUnknownField)
	})
	t.Run("nil_table", func(t *testing.T) {
		err := m.Configure(model.ComponentEmissions, model.FieldAbatement, nil)
		assert.ErrorIs(t, err, model.ErrNilTable)
	})
	t.Run("shape_mismatch", func(t *testing.T) {
		err := m.Configure(model.ComponentEmissions, model.FieldAbatement, mat.NewDense(3, 2, nil))
		assert.ErrorIs(t, err, model.ErrShape)
	})
}

func TestModel_WelfareResponseIsConcave(t *testing.T) {
	score := func(mu float64) float64 {
		m := New(4, 2)
		table := constant(4, 2, mu)
		require.NoError(t, m.Configure(model.ComponentEmissions, model.FieldAbatement, table))
		require.NoError(t, m.Configure(model.ComponentAir, model.FieldAirAbatement, table))
		require.NoError(t, m.Run())
		w, err := m.ReadScalar(model.ComponentWelfare, model.FieldUtility)
		require.NoError(t, err)
		return w
	}

	none := score(0)
	half := score(0.5)
	full := score(1)
	assert.Equal(t, 0.0, none, "zero abatement scores zero welfare")
	assert.Greater(t, half, none, "moderate abatement should pay off")
	assert.Greater(t, half, full, "full abatement should overshoot the interior optimum")
}

func TestModel_EmissionsScaleWithAbatement(t *testing.T) {
	m := New(3, 2)
	table := constant(3, 2, 0.25)
	require.NoError(t, m.Configure(model.ComponentEmissions, model.FieldAbatement, table))
	require.NoError(t, m.Run())

	eind, err := m.ReadMatrix(model.ComponentEmissions, model.FieldIndustrialCO2)
	require.NoError(t, err)
	rows, cols := eind.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 2, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			assert.InDelta(t, 7.5, eind.At(i, j), 1e-12, "baseline 10 under 0.25 abatement")
		}
	}
}

func TestModel_SnapshotIsDeepCopy(t *testing.T) {
	m := New(3, 2)
	require.NoError(t, m.Configure(model.ComponentEmissions, model.FieldAbatement, constant(3, 2, 0.4)))
	require.NoError(t, m.Configure(model.ComponentAir, model.FieldAirAbatement, constant(3, 2, 0.4)))
	require.NoError(t, m.Run())
	wantWelfare, err := m.ReadScalar(model.ComponentWelfare, model.FieldUtility)
	require.NoError(t, err)

	snap := m.Snapshot()

	// Reconfigure and re-run the copy only.
	require.NoError(t, snap.Configure(model.ComponentEmissions, model.FieldAbatement, mat.NewDense(3, 2, nil)))
	require.NoError(t, snap.Configure(model.ComponentAir, model.FieldAirAbatement, mat.NewDense(3, 2, nil)))
	require.NoError(t, snap.Run())

	// The origin must be untouched: same inputs, same welfare.
	gotWelfare, err := m.ReadScalar(model.ComponentWelfare, model.FieldUtility)
	require.NoError(t, err)
	assert.Equal(t, wantWelfare, gotWelfare)
	assert.InDelta(t, 0.4, m.Input(model.ComponentEmissions, model.FieldAbatement).At(0, 0), 1e-12)

	snapWelfare, err := snap.ReadScalar(model.ComponentWelfare, model.FieldUtility)
	require.NoError(t, err)
	assert.Equal(t, 0.0, snapWelfare, "zeroed copy scores zero welfare")
}

func TestModel_RunCounter(t *testing.T) {
	m := New(2, 2)
	require.Equal(t, 0, m.Runs())
	require.NoError(t, m.Run())
	require.NoError(t, m.Run())
	assert.Equal(t, 2, m.Runs())
}
