package optimize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlgorithm_String(t *testing.T) {
	cases := []struct {
		algorithm Algorithm
		want      string
	}{
		{Sbplx, "sbplx"},
		{Cobyla, "cobyla"},
		{Bobyqa, "bobyqa"},
		{NelderMead, "neldermead"},
		{DirectL, "direct-l"},
		{CRS2, "crs2"},
		{Isres, "isres"},
		{Esch, "esch"},
		{Algorithm(42), "unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.algorithm.String())
	}
}

func TestParseAlgorithm(t *testing.T) {
	t.Run("round_trips_string_names", func(t *testing.T) {
		for _, a := range []Algorithm{Sbplx, Cobyla, Bobyqa, NelderMead, DirectL, CRS2, Isres, Esch} {
			got, err := ParseAlgorithm(a.String())
			assert.NoError(t, err)
			assert.Equal(t, a, got)
		}
	})

	t.Run("case_and_space_insensitive", func(t *testing.T) {
		got, err := ParseAlgorithm("  SBPLX ")
		assert.NoError(t, err)
		assert.Equal(t, Sbplx, got)
	})

	t.Run("unknown_name", func(t *testing.T) {
		_, err := ParseAlgorithm("gradient-descent")
		assert.ErrorIs(t, err, ErrBadAlgorithm)
	})
}

func TestAlgorithm_Global(t *testing.T) {
	for _, a := range []Algorithm{Sbplx, Cobyla, Bobyqa, NelderMead} {
		assert.False(t, a.Global(), a.String())
	}
	for _, a := range []Algorithm{DirectL, CRS2, Isres, Esch} {
		assert.True(t, a.Global(), a.String())
	}
}

func TestAlgorithm_NloptCode(t *testing.T) {
	for _, a := range []Algorithm{Sbplx, Cobyla, Bobyqa, NelderMead, DirectL, CRS2, Isres, Esch} {
		_, err := a.nloptCode()
		assert.NoError(t, err, a.String())
	}

	_, err := Algorithm(-1).nloptCode()
	assert.ErrorIs(t, err, ErrBadAlgorithm)
}
