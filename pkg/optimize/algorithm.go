package optimize

import (
	"fmt"
	"strings"

	"github.com/go-nlopt/nlopt"
)

// Algorithm selects the derivative-free NLopt search a run uses. All of
// them work from welfare values alone; none require gradients, which the
// coupled model cannot provide.
type Algorithm int

const (
	// Sbplx is the default: Rowan's subplex, a restarted Nelder-Mead on
	// subspaces that handles the flat ridges tax trajectories produce.
	Sbplx Algorithm = iota
	// Cobyla approximates the objective with linear models.
	Cobyla
	// Bobyqa fits quadratic models inside a trust region.
	Bobyqa
	// NelderMead is the classic simplex search.
	NelderMead
	// DirectL is a deterministic global rectangle-division search.
	DirectL
	// CRS2 is a controlled random global search with local mutation.
	CRS2
	// Isres is a global evolution strategy.
	Isres
	// Esch is a simple global evolutionary search.
	Esch
)

func (a Algorithm) String() string {
	switch a {
	case Sbplx:
		return "sbplx"
	case Cobyla:
		return "cobyla"
	case Bobyqa:
		return "bobyqa"
	case NelderMead:
		return "neldermead"
	case DirectL:
		return "direct-l"
	case CRS2:
		return "crs2"
	case Isres:
		return "isres"
	case Esch:
		return "esch"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps a name as printed by String back to its
// Algorithm, case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sbplx":
		return Sbplx, nil
	case "cobyla":
		return Cobyla, nil
	case "bobyqa":
		return Bobyqa, nil
	case "neldermead":
		return NelderMead, nil
	case "direct-l":
		return DirectL, nil
	case "crs2":
		return CRS2, nil
	case "isres":
		return Isres, nil
	case "esch":
		return Esch, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadAlgorithm, s)
	}
}

// Global reports whether the algorithm searches the whole bound box
// rather than descending from the initial point.
func (a Algorithm) Global() bool {
	switch a {
	case DirectL, CRS2, Isres, Esch:
		return true
	default:
		return false
	}
}

func (a Algorithm) nloptCode() (int, error) {
	switch a {
	case Sbplx:
		return nlopt.LN_SBPLX, nil
	case Cobyla:
		return nlopt.LN_COBYLA, nil
	case Bobyqa:
		return nlopt.LN_BOBYQA, nil
	case NelderMead:
		return nlopt.LN_NELDERMEAD, nil
	case DirectL:
		return nlopt.GN_DIRECT_L, nil
	case CRS2:
		return nlopt.GN_CRS2_LM, nil
	case Isres:
		return nlopt.GN_ISRES, nil
	case Esch:
		return nlopt.GN_ESCH, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrBadAlgorithm, int(a))
	}
}
