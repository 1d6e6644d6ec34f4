package advisor

import "fmt"

// RiskTolerance is the investor's self declared appetite for volatility.
// It selects the return assumptions used by the scenario projections.
type RiskTolerance int

const (
	UnknownRiskTolerance RiskTolerance = iota
	Conservative
	Balanced
	Growth
	Aggressive
)

// RiskTolerances lists the known tiers from the most prudent to the most aggressive.
var RiskTolerances = []RiskTolerance{Conservative, Balanced, Growth, Aggressive}

func (r RiskTolerance) String() string {
	switch r {
	case Conservative:
		return "conservative"
	case Balanced:
		return "balanced"
	case Growth:
		return "growth"
	case Aggressive:
		return "aggressive"
	default:
		return "unknown"
	}
}

// ParseRiskTolerance parses a string into a RiskTolerance.
func ParseRiskTolerance(s string) (RiskTolerance, error) {
	switch s {
	case "conservative":
		return Conservative, nil
	case "balanced":
		return Balanced, nil
	case "growth":
		return Growth, nil
	case "aggressive":
		return Aggressive, nil
	default:
		return UnknownRiskTolerance, fmt.Errorf("unknown risk tolerance: %q", s)
	}
}

func (r RiskTolerance) MarshalText() ([]byte, error) {
	if r == UnknownRiskTolerance {
		return nil, fmt.Errorf("cannot marshal unknown risk tolerance")
	}
	return []byte(r.String()), nil
}

func (r *RiskTolerance) UnmarshalText(text []byte) error {
	v, err := ParseRiskTolerance(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}
