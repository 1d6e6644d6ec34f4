package renderer

import (
	"fmt"

	"github.com/etnz/advisor"
	"github.com/etnz/advisor/agent"
)

// Report is the analysis prepared for display: every figure is already
// formatted so that templates only lay them out.
type Report struct {
	Title      string        `json:"title"`
	Date       string        `json:"date"`
	Summary    []Row         `json:"summary"`
	Insight    *InsightView  `json:"insight,omitempty"`
	Actions    []ActionRow   `json:"actions"`
	Goal       string        `json:"goal"`
	Scenarios  []ScenarioRow `json:"scenarios"`
	Disclaimer string        `json:"disclaimer"`
}

// Row is a labelled figure.
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type InsightView struct {
	Headline    string   `json:"headline"`
	Explanation string   `json:"explanation"`
	KeyNumbers  []string `json:"keyNumbers"`
	Confidence  int      `json:"confidence"`
}

type ActionRow struct {
	Rank      int    `json:"rank"`
	Title     string `json:"title"`
	Score     int    `json:"score"`
	Urgency   string `json:"urgency"`
	Benefit   string `json:"benefit"` // "-" when not monetizable
	Rationale string `json:"rationale"`
}

type ScenarioRow struct {
	Label       string `json:"label"`
	Return      string `json:"return"`
	FinalValue  string `json:"finalValue"`
	Probability string `json:"probability"`
}

// NewReport creates a new Report from an analysis and an optional insight.
func NewReport(a *advisor.Analysis, ins *agent.Insight) *Report {
	money := func(v float64) string { return advisor.FormatMoney(v, a.Currency) }
	m := a.Metrics

	r := &Report{
		Title:      "Portfolio Analysis",
		Date:       a.Timestamp.Format("2006-01-02"),
		Disclaimer: agent.Disclaimer,
		Goal:       fmt.Sprintf("%s in %d years", money(a.Goal.TargetAmount), a.Goal.YearsToGoal),
	}
	if a.Goal.Description != "" {
		r.Title = "Portfolio Analysis: " + a.Goal.Description
	}

	r.Summary = []Row{
		{"Total value", money(m.TotalValue)},
		{"Invested", money(m.InvestedValue)},
		{"Cash", money(m.CashValue)},
		{"Unrealized gain/loss", fmt.Sprintf("%s (%.1f%%)", money(m.UnrealizedGainLoss), m.UnrealizedGainLossPct)},
		{"Weighted annual return", fmt.Sprintf("%.1f%%", m.WeightedAnnualReturn*100)},
		{"Allocation", fmt.Sprintf("%.1f%% equity, %.1f%% fixed income, %.1f%% cash",
			m.CurrentAllocation.EquityPct, m.CurrentAllocation.FixedIncomePct, m.CurrentAllocation.CashPct)},
		{"Drift from target", fmt.Sprintf("%.1f%%", m.AllocationDrift.Total())},
	}
	if m.MostConcentratedHolding != "" {
		r.Summary = append(r.Summary, Row{"Largest position", fmt.Sprintf("%s (%.1f%%)", m.MostConcentratedHolding, m.ConcentrationRisk)})
	}
	r.Summary = append(r.Summary, Row{"Positions in loss", fmt.Sprint(len(m.PositionsInLoss))})
	if m.SavingsRate != nil {
		r.Summary = append(r.Summary, Row{"Savings rate", fmt.Sprintf("%.1f%%", *m.SavingsRate*100)})
	}
	if m.LiquidityRatio != nil {
		r.Summary = append(r.Summary, Row{"Emergency fund", fmt.Sprintf("%.1f months", *m.LiquidityRatio)})
	}

	for i, act := range a.Actions {
		benefit := "-"
		if act.EstimatedAnnualBenefit > 0 {
			benefit = money(act.EstimatedAnnualBenefit)
		}
		r.Actions = append(r.Actions, ActionRow{
			Rank:      i + 1,
			Title:     act.Title,
			Score:     act.Score,
			Urgency:   string(act.Urgency),
			Benefit:   benefit,
			Rationale: act.Rationale,
		})
	}

	for _, s := range a.Scenarios {
		ret := fmt.Sprintf("%.1f%%", s.AnnualReturn*100)
		if s.Name == advisor.RecessionRegime {
			ret = fmt.Sprintf("%.1f%% then %s", s.RecessionShock*100, ret)
		}
		r.Scenarios = append(r.Scenarios, ScenarioRow{
			Label:       s.Label,
			Return:      ret,
			FinalValue:  money(s.FinalValue),
			Probability: fmt.Sprintf("%d%%", s.GoalProbability),
		})
	}

	if ins != nil {
		r.Insight = &InsightView{
			Headline:    ins.Headline,
			Explanation: ins.Explanation,
			KeyNumbers:  ins.KeyNumbers,
			Confidence:  ins.Confidence,
		}
		if ins.Disclaimer != "" {
			r.Disclaimer = ins.Disclaimer
		}
	}
	return r
}
