package types

import "fmt"

// Price is a float64 wrapper representing a carbon price in US dollars
// per tonne of CO2.
type Price float64

// Backstop tables store prices in thousands of dollars per tonne.
const tableScale = 1000

// PerTonne converts a raw backstop-table entry into a Price by the fixed
// x1000 table scale.
func PerTonne(tableValue float64) Price { return Price(tableValue * tableScale) }

// Humanized returns a human-readable string with automatic unit ($/tCO2, k$/tCO2, M$/tCO2).
func (p Price) Humanized() string {
	v := float64(p)
	abs := v
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%.2f M$/tCO2", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2f k$/tCO2", v/1e3)
	default:
		return fmt.Sprintf("%.2f $/tCO2", v)
	}
}

// Thousands returns the price in table units (thousands of dollars per tonne).
func (p Price) Thousands() float64 { return float64(p) / tableScale }

// ToFloat64 returns the price as a bare float64 in dollars per tonne.
func (p Price) ToFloat64() float64 { return float64(p) }
