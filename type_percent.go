package rentfolio

import "fmt"

// Percent is a display type for percentage values (e.g. Percent(5.25) renders "5.25%").
// Rates used inside formulas stay plain float64 decimals in [0,1].
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// PercentOfRate converts a decimal rate (0.05) into its display Percent (5.00%).
func PercentOfRate(rate float64) Percent { return Percent(rate * 100) }
