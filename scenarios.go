package advisor

import "math"

// Regime identifies one of the three projected market conditions.
type Regime string

const (
	BaseRegime      Regime = "base"
	RecessionRegime Regime = "recession"
	BullRegime      Regime = "bull"
)

// Probability bounds of the goal heuristic.
const (
	MinGoalProbability = 3
	MaxGoalProbability = 97
)

// ScenarioProjection is the account value projected year by year under one
// regime.
type ScenarioProjection struct {
	Name  Regime `json:"name"`
	Label string `json:"label"`
	// AnnualReturn is the regime's steady return. The recession regime reports
	// the base return, its first year uses RecessionShock instead.
	AnnualReturn   float64 `json:"annualReturn"`
	RecessionShock float64 `json:"recessionShock,omitempty"`
	FinalValue     float64 `json:"finalValue"`
	// GoalProbability is a heuristic in [3, 97], not a statistical estimate.
	GoalProbability  int       `json:"goalProbability"`
	YearByYearValues []float64 `json:"yearByYearValues"` // index 0 is today
}

// ProjectScenarios projects p using the default tables.
func ProjectScenarios(p *PortfolioInput, m *PortfolioMetrics) []ScenarioProjection {
	return defaultAnalyzer.ProjectScenarios(p, m)
}

// ProjectScenarios returns the base, recession and bull projections, in this
// order, using the assumptions of p's risk tolerance.
func (a *Analyzer) ProjectScenarios(p *PortfolioInput, m *PortfolioMetrics) []ScenarioProjection {
	as := a.tables.Assumption(p.RiskTolerance)
	years := p.Goal.YearsToGoal
	pv, pmt := m.TotalValue, p.AnnualContribution

	scenario := func(name Regime, label string, steady, firstYear float64) ScenarioProjection {
		values := Project(pv, pmt, years, steady, firstYear)
		final := values[len(values)-1]
		s := ScenarioProjection{
			Name:             name,
			Label:            label,
			AnnualReturn:     steady,
			FinalValue:       final,
			GoalProbability:  GoalProbability(final, p.Goal.TargetAmount),
			YearByYearValues: values,
		}
		if firstYear != steady {
			s.RecessionShock = firstYear
		}
		return s
	}

	return []ScenarioProjection{
		scenario(BaseRegime, "Base Case", as.Base, as.Base),
		scenario(RecessionRegime, "Recession", as.Base, as.RecessionShock),
		scenario(BullRegime, "Bull Market", as.Bull, as.Bull),
	}
}

// Project compounds pv over years, adding pmt at the end of each year. The
// first year grows at firstYear, the following ones at steady. Each value is
// floored at zero and rounded to whole units before compounding further.
// The result has years+1 entries, the first being pv rounded.
//
// A negative years is treated as zero.
func Project(pv, pmt float64, years int, steady, firstYear float64) []float64 {
	if years < 0 {
		years = 0
	}
	values := make([]float64, years+1)
	values[0] = roundUnits(math.Max(0, pv))
	for y := 1; y <= years; y++ {
		r := steady
		if y == 1 {
			r = firstYear
		}
		values[y] = roundUnits(math.Max(0, values[y-1]*(1+r)+pmt))
	}
	return values
}

// GoalProbability maps the ratio of a projected value to the target onto a
// piecewise linear likelihood, clamped to [3, 97] and rounded. The breakpoints
// are product judgment calls.
func GoalProbability(value, target float64) int {
	if !(target > 0) {
		// no meaningful goal: reaching zero is certain.
		return MaxGoalProbability
	}
	ratio := value / target
	var p float64
	switch {
	case ratio >= 1.5:
		p = 97
	case ratio >= 1.2:
		p = 90 + (ratio-1.2)*23
	case ratio >= 1.0:
		p = 72 + (ratio-1.0)*90
	case ratio >= 0.8:
		p = 45 + (ratio-0.8)*135
	case ratio >= 0.5:
		p = 15 + (ratio-0.5)*100
	default:
		p = math.Max(3, ratio*30)
	}
	if math.IsNaN(p) {
		p = MinGoalProbability
	}
	return int(math.Max(MinGoalProbability, math.Min(MaxGoalProbability, roundUnits(p))))
}
