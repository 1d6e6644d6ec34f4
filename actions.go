package advisor

import (
	"math"
	"sort"
)

// ActionType identifies an entry of the action catalog.
type ActionType string

const (
	DeployCash          ActionType = "DEPLOY_CASH"
	TFSAOptimize        ActionType = "TFSA_OPTIMIZE"
	RRSPOptimize        ActionType = "RRSP_OPTIMIZE"
	Rebalance           ActionType = "REBALANCE"
	TaxLossHarvest      ActionType = "TAX_LOSS_HARVEST"
	ReduceConcentration ActionType = "REDUCE_CONCENTRATION"
)

// Urgency is a coarse priority label attached to a ScoredAction.
type Urgency string

const (
	High   Urgency = "high"
	Medium Urgency = "medium"
	Low    Urgency = "low"
)

// ScoredAction is a candidate action evaluated against one portfolio.
type ScoredAction struct {
	Type      ActionType `json:"type"`
	Title     string     `json:"title"`
	Rationale string     `json:"rationale"`
	// Score is in [0, 100].
	Score int `json:"score"`
	// EstimatedAnnualBenefit is in whole currency units, 0 when the action
	// is not directly monetizable.
	EstimatedAnnualBenefit float64 `json:"estimatedAnnualBenefit"`
	Urgency                Urgency `json:"urgency"`
	Details                Details `json:"actionDetails"`
}

// ruleContext carries the read-only inputs of the rules and the figures
// several rules derive from them.
type ruleContext struct {
	p *PortfolioInput
	m *PortfolioMetrics
}

// share returns v / total value, 0 for an empty portfolio.
func (c *ruleContext) share(v float64) float64 {
	if c.m.TotalValue <= 0 {
		return 0
	}
	return v / c.m.TotalValue
}

func (c *ruleContext) money(v float64) string { return FormatMoney(v, c.p.currency()) }

// rule is one entry of the action catalog. Every function gets the benefit
// computed once by the rule itself, so that rationale, details and score all
// quote the same figure.
type rule struct {
	typ       ActionType
	title     string
	applies   func(c *ruleContext) bool
	benefit   func(c *ruleContext) float64
	score     func(c *ruleContext, benefit float64) float64
	urgency   func(c *ruleContext, benefit float64) Urgency
	rationale func(c *ruleContext, benefit float64) string
	details   func(c *ruleContext, benefit float64) Details
}

func (r *rule) evaluate(c *ruleContext) (ScoredAction, bool) {
	if !r.applies(c) {
		return ScoredAction{}, false
	}
	b := r.benefit(c)
	return ScoredAction{
		Type:                   r.typ,
		Title:                  r.title,
		Rationale:              r.rationale(c, b),
		Score:                  clampScore(r.score(c, b)),
		EstimatedAnnualBenefit: roundUnits(b),
		Urgency:                r.urgency(c, b),
		Details:                r.details(c, b),
	}, true
}

// clampScore rounds s and bounds it to [0, 100]. NaN scores to 0.
func clampScore(s float64) int {
	if math.IsNaN(s) {
		return 0
	}
	return int(math.Max(0, math.Min(100, roundUnits(s))))
}

// Catalog returns the action types in evaluation order.
func Catalog() []ActionType {
	res := make([]ActionType, len(catalog))
	for i, r := range catalog {
		res[i] = r.typ
	}
	return res
}

// ScoreActions evaluates the catalog using the default tables.
func ScoreActions(p *PortfolioInput, m *PortfolioMetrics) []ScoredAction {
	return defaultAnalyzer.ScoreActions(p, m)
}

// ScoreActions evaluates every rule of the catalog against p and m and
// returns the applicable actions, highest score first. Equal scores keep the
// catalog order.
func (a *Analyzer) ScoreActions(p *PortfolioInput, m *PortfolioMetrics) []ScoredAction {
	c := &ruleContext{p: p, m: m}
	actions := make([]ScoredAction, 0, len(catalog))
	for i := range catalog {
		if action, ok := catalog[i].evaluate(c); ok {
			actions = append(actions, action)
		}
	}
	sort.SliceStable(actions, func(i, j int) bool {
		return actions[i].Score > actions[j].Score
	})
	return actions
}

// Evaluate runs a single rule of the catalog. It returns false when the rule
// does not apply or is unknown.
func (a *Analyzer) Evaluate(t ActionType, p *PortfolioInput, m *PortfolioMetrics) (ScoredAction, bool) {
	for i := range catalog {
		if catalog[i].typ == t {
			return catalog[i].evaluate(&ruleContext{p: p, m: m})
		}
	}
	return ScoredAction{}, false
}
