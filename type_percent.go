package folio

import "fmt"

// Percent is a percentage share of the portfolio's total value.
type Percent float64

// Equal compares with a small tolerance, since percentages come from
// floating-point division at presentation boundaries.
func (p Percent) Equal(q Percent) bool {
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
