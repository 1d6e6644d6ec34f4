package advisor

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput wraps every validation failure.
var ErrInvalidInput = errors.New("invalid portfolio")

// MaxYearsToGoal bounds the projection horizon.
const MaxYearsToGoal = 50

// Validate checks the snapshot and returns an error with all validation
// failures, or nil. The analysis functions assume a validated input.
func (p *PortfolioInput) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...))
	}
	amount := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			fail("%s must be a non-negative number, got %v", name, v)
		}
	}

	for i, h := range p.Holdings {
		if h.Symbol == "" {
			fail("holding #%d has no symbol", i)
		}
		amount(fmt.Sprintf("holding %q shares", h.Symbol), h.Shares)
		amount(fmt.Sprintf("holding %q currentPrice", h.Symbol), h.CurrentPrice)
		amount(fmt.Sprintf("holding %q costBasis", h.Symbol), h.CostBasis)
		if h.AssetClass == UnknownAssetClass {
			fail("holding %q has no asset class", h.Symbol)
		}
	}
	amount("cashBalance", p.CashBalance)
	amount("tfsaRoomRemaining", p.TFSARoomRemaining)
	amount("rrspRoomRemaining", p.RRSPRoomRemaining)
	amount("annualContribution", p.AnnualContribution)
	if p.AnnualIncome != nil {
		amount("annualIncome", *p.AnnualIncome)
	}
	if p.MonthlyExpenses != nil {
		amount("monthlyExpenses", *p.MonthlyExpenses)
	}
	if p.RiskTolerance == UnknownRiskTolerance {
		fail("riskTolerance is required")
	}
	if !(p.Goal.TargetAmount > 0) || math.IsInf(p.Goal.TargetAmount, 0) {
		fail("goal targetAmount must be positive, got %v", p.Goal.TargetAmount)
	}
	if p.Goal.YearsToGoal < 1 || p.Goal.YearsToGoal > MaxYearsToGoal {
		fail("goal yearsToGoal must be between 1 and %d, got %d", MaxYearsToGoal, p.Goal.YearsToGoal)
	}
	targets := []struct {
		name string
		v    Percent
	}{
		{"equityPct", p.TargetAllocation.EquityPct},
		{"fixedIncomePct", p.TargetAllocation.FixedIncomePct},
		{"cashPct", p.TargetAllocation.CashPct},
	}
	for _, t := range targets {
		if t.v < 0 || t.v > 100 {
			fail("targetAllocation %s must be between 0 and 100, got %v", t.name, float64(t.v))
		}
	}
	return errors.Join(errs...)
}
