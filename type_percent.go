package analytics

import "fmt"

// Percent is a percentage, 12.5 stands for 12.5%.
type Percent float64

// Ratio converts a ratio (0.125) into a Percent (12.5%).
func Ratio(r float64) Percent { return Percent(100 * r) }

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
