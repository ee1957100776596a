package model

import "gonum.org/v1/gonum/mat"

// Component and field identifiers understood by RICE+AIR implementations.
// The vocabulary follows the model's own variable names.
const (
	ComponentEmissions = "emissions"
	ComponentAir       = "air"
	ComponentWelfare   = "welfare"

	FieldAbatement     = "MIU"            // industrial CO2 abatement fraction, [period, region]
	FieldAirAbatement  = "MIU_AIR"        // aerosol co-reduction control, [period, region]
	FieldLifeYears     = "LYG"            // life-years gained valuation input, [period, region]
	FieldAvoidedDeaths = "AVOIDED_DEATHS" // avoided premature deaths valuation input, [period, region]
	FieldUtility       = "UTILITY"        // discounted global welfare, scalar
	FieldIndustrialCO2 = "EIND"           // industrial CO2 emissions, GtC per period, [period, region]
)

// Model is the narrow contract an external RICE+AIR implementation
// exposes to the optimization core. A single instance is sequential:
// Configure and Run mutate it in place and must not be called from
// multiple goroutines. Parallel searches each need their own instance.
type Model interface {
	// Configure writes an input table into the named component field.
	// The instance keeps its own copy; callers may reuse value afterwards.
	Configure(component, field string, value *mat.Dense) error

	// Run recomputes all outputs from the current inputs.
	Run() error

	// ReadScalar returns a scalar output such as welfare/UTILITY.
	ReadScalar(component, field string) (float64, error)

	// ReadMatrix returns a [period, region] output such as emissions/EIND.
	// The returned matrix is a copy callers may mutate freely.
	ReadMatrix(component, field string) (*mat.Dense, error)

	// Snapshot returns an independent deep copy of the instance, inputs
	// and outputs included. Mutating either side never affects the other.
	Snapshot() Model
}
