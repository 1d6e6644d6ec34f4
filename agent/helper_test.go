package agent

import (
	"context"
	"time"

	"github.com/etnz/advisor"
)

// fakeModel records the prompts and answers with a canned reply.
type fakeModel struct {
	reply string
	err   error
	delay time.Duration
	got   []Prompt
}

func (f *fakeModel) Generate(ctx context.Context, p Prompt) (string, error) {
	f.got = append(f.got, p)
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.reply, f.err
}

func sampleTopAction() advisor.ScoredAction {
	return advisor.ScoredAction{
		Type:                   advisor.DeployCash,
		Title:                  "Deploy Idle Cash",
		Rationale:              "Cash is idle.",
		Score:                  70,
		EstimatedAnnualBenefit: 3500,
		Urgency:                advisor.High,
		Details: advisor.Details{
			{Key: "excessCash", Value: 10000.0},
			{Key: "excessCashPct", Value: 10.0},
			{Key: "annualDrag", Value: 350.0},
			{Key: "ignored", Value: 1.0},
		},
	}
}

func sampleAnalysis() *advisor.Analysis {
	top := sampleTopAction()
	savings := 0.25
	return &advisor.Analysis{
		ID:       "analysis-1",
		Currency: "CAD",
		Metrics: &advisor.PortfolioMetrics{
			TotalValue:           100000,
			WeightedAnnualReturn: 0.08,
			CurrentAllocation:    advisor.Allocation{EquityPct: 60, FixedIncomePct: 20, CashPct: 20},
			PositionsInLoss:      []advisor.LossPosition{},
			SavingsRate:          &savings,
		},
		TopAction: &top,
		Actions: []advisor.ScoredAction{
			top,
			{Type: advisor.RRSPOptimize, Title: "Use RRSP Contribution Room", Score: 40},
		},
		Scenarios: []advisor.ScenarioProjection{
			{Name: advisor.BaseRegime, Label: "Base Case", FinalValue: 150000, GoalProbability: 82},
			{Name: advisor.RecessionRegime, Label: "Recession", FinalValue: 120000, GoalProbability: 64},
		},
		Goal: advisor.Goal{TargetAmount: 200000, YearsToGoal: 10},
	}
}

func samplePortfolio() *advisor.PortfolioInput {
	return &advisor.PortfolioInput{
		Holdings: []advisor.Holding{
			{Symbol: "XEQT.TO", Shares: 100, CurrentPrice: 30, CostBasis: 25, AssetClass: advisor.Equity},
		},
		CashBalance:        20000,
		TFSARoomRemaining:  7000,
		RRSPRoomRemaining:  12000,
		RiskTolerance:      advisor.Balanced,
		AnnualContribution: 6000,
		Goal:               advisor.Goal{TargetAmount: 200000, YearsToGoal: 10},
	}
}
