package advisor

import (
	"time"

	"github.com/google/uuid"
)

// Analyzer runs the analysis against a fixed set of Tables. It holds no
// mutable state and is safe for concurrent use.
type Analyzer struct {
	tables Tables
}

// NewAnalyzer creates an Analyzer over t.
func NewAnalyzer(t Tables) *Analyzer {
	return &Analyzer{tables: t}
}

var defaultAnalyzer = NewAnalyzer(DefaultTables())

// Tables returns the tables used by a.
func (a *Analyzer) Tables() Tables { return a.tables }

// Analysis is the complete, immutable result handed to the narration and chat
// collaborators.
type Analysis struct {
	ID        string               `json:"id"`
	Timestamp time.Time            `json:"analysisTimestamp"`
	Metrics   *PortfolioMetrics    `json:"metrics"`
	TopAction *ScoredAction        `json:"topAction"` // nil when no action applies
	Actions   []ScoredAction       `json:"allActions"`
	Scenarios []ScenarioProjection `json:"scenarios"`
	Goal      Goal                 `json:"goal"`
	Currency  string               `json:"currency"`
}

// Analyze runs the whole pipeline on p using the default tables.
func Analyze(p *PortfolioInput) *Analysis {
	return defaultAnalyzer.Analyze(p)
}

// Analyze runs the whole pipeline on p: metrics, then actions and scenarios.
// p is assumed valid, see PortfolioInput.Validate.
func (a *Analyzer) Analyze(p *PortfolioInput) *Analysis {
	m := a.ComputeMetrics(p)
	res := &Analysis{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Metrics:   m,
		Actions:   a.ScoreActions(p, m),
		Scenarios: a.ProjectScenarios(p, m),
		Goal:      p.Goal,
		Currency:  p.currency(),
	}
	if len(res.Actions) > 0 {
		top := res.Actions[0]
		res.TopAction = &top
	}
	return res
}

// Scenario returns the projection of the given regime.
func (r *Analysis) Scenario(name Regime) (ScenarioProjection, bool) {
	for _, s := range r.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return ScenarioProjection{}, false
}
