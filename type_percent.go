package advisor

import (
	"fmt"
	"strconv"
)

// Percent is a percentage expressed in points: 12.5 means 12.5%.
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

func (p Percent) Abs() Percent {
	if p < 0 {
		return -p
	}
	return p
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

// Short returns the shortest representation, "5%" rather than "5.00%".
func (p Percent) Short() string {
	return strconv.FormatFloat(float64(p), 'f', -1, 64) + "%"
}

// percentOf returns part/whole in points, 0 when whole is not positive.
func percentOf(part, whole float64) Percent {
	if whole <= 0 {
		return 0
	}
	return Percent(part / whole * 100)
}
