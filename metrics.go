package advisor

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Allocation is a split of the total value by asset class, in points.
type Allocation struct {
	EquityPct      Percent `json:"equityPct"`
	FixedIncomePct Percent `json:"fixedIncomePct"`
	CashPct        Percent `json:"cashPct"`
	AlternativePct Percent `json:"alternativePct"`
}

// Drift is the current allocation minus the target allocation.
type Drift struct {
	EquityDrift      Percent `json:"equityDrift"`
	FixedIncomeDrift Percent `json:"fixedIncomeDrift"`
}

// Total returns the sum of the absolute drifts.
func (d Drift) Total() Percent {
	return d.EquityDrift.Abs() + d.FixedIncomeDrift.Abs()
}

// LossPosition is a holding currently trading below its cost basis.
type LossPosition struct {
	Symbol         string  `json:"symbol"`
	UnrealizedLoss float64 `json:"unrealizedLoss"` // positive amount
	LossPercent    Percent `json:"lossPercent"`
}

// PortfolioMetrics is the normalized view of a PortfolioInput.
//
// Every percentage is finite: when its denominator is zero the percentage is
// zero.
type PortfolioMetrics struct {
	TotalValue              float64        `json:"totalValue"`
	InvestedValue           float64        `json:"investedValue"`
	CashValue               float64        `json:"cashValue"`
	TotalCostBasis          float64        `json:"totalCostBasis"`
	UnrealizedGainLoss      float64        `json:"unrealizedGainLoss"`
	UnrealizedGainLossPct   Percent        `json:"unrealizedGainLossPct"`
	CurrentAllocation       Allocation     `json:"currentAllocation"`
	AllocationDrift         Drift          `json:"allocationDrift"`
	WeightedAnnualReturn    float64        `json:"weightedAnnualReturn"` // ratio, 0.08 is 8%
	ConcentrationRisk       Percent        `json:"concentrationRisk"`
	MostConcentratedHolding string         `json:"mostConcentratedHolding"`
	PositionsInLoss         []LossPosition `json:"positionsInLoss"`
	SavingsRate             *float64       `json:"savingsRate"`    // ratio, nil without income and expenses
	LiquidityRatio          *float64       `json:"liquidityRatio"` // months of expenses, nil without expenses
}

// ComputeMetrics derives the metrics of p using the default tables.
func ComputeMetrics(p *PortfolioInput) *PortfolioMetrics {
	return defaultAnalyzer.ComputeMetrics(p)
}

// ComputeMetrics derives the metrics of p.
func (a *Analyzer) ComputeMetrics(p *PortfolioInput) *PortfolioMetrics {
	n := len(p.Holdings)
	values := make([]float64, n)
	costs := make([]float64, n)
	returns := make([]float64, n)
	byClass := make(map[AssetClass]float64)
	for i, h := range p.Holdings {
		values[i] = h.MarketValue()
		costs[i] = h.CostValue()
		returns[i] = a.tables.SecurityReturn(h.Symbol)
		byClass[h.AssetClass] += values[i]
	}

	m := &PortfolioMetrics{
		InvestedValue:   floats.Sum(values),
		CashValue:       p.CashBalance,
		TotalCostBasis:  floats.Sum(costs),
		PositionsInLoss: []LossPosition{},
	}
	m.TotalValue = m.InvestedValue + p.CashBalance
	m.UnrealizedGainLoss = m.InvestedValue - m.TotalCostBasis
	m.UnrealizedGainLossPct = percentOf(m.UnrealizedGainLoss, m.TotalCostBasis)

	// Cash-equivalent holdings count as invested, the cash slice is the
	// uninvested balance only.
	m.CurrentAllocation = Allocation{
		EquityPct:      percentOf(byClass[Equity], m.TotalValue),
		FixedIncomePct: percentOf(byClass[FixedIncome], m.TotalValue),
		CashPct:        percentOf(p.CashBalance, m.TotalValue),
		AlternativePct: percentOf(byClass[Alternative], m.TotalValue),
	}
	m.AllocationDrift = Drift{
		EquityDrift:      m.CurrentAllocation.EquityPct - p.TargetAllocation.EquityPct,
		FixedIncomeDrift: m.CurrentAllocation.FixedIncomePct - p.TargetAllocation.FixedIncomePct,
	}

	if m.TotalValue > 0 {
		m.WeightedAnnualReturn = floats.Dot(values, returns) / m.TotalValue
	}

	for i, h := range p.Holdings {
		// strictly greater: ties keep the first holding.
		if pct := percentOf(values[i], m.TotalValue); pct > m.ConcentrationRisk {
			m.ConcentrationRisk = pct
			m.MostConcentratedHolding = h.Symbol
		}
		if h.InLoss() {
			loss := (h.CostBasis - h.CurrentPrice) * h.Shares
			m.PositionsInLoss = append(m.PositionsInLoss, LossPosition{
				Symbol:         h.Symbol,
				UnrealizedLoss: loss,
				LossPercent:    percentOf(h.CostBasis-h.CurrentPrice, h.CostBasis),
			})
		}
	}
	sort.SliceStable(m.PositionsInLoss, func(i, j int) bool {
		return m.PositionsInLoss[i].UnrealizedLoss > m.PositionsInLoss[j].UnrealizedLoss
	})

	if p.AnnualIncome != nil && p.MonthlyExpenses != nil {
		var rate float64
		if income := *p.AnnualIncome; income > 0 {
			rate = (income - *p.MonthlyExpenses*12) / income
		}
		m.SavingsRate = &rate
	}
	if p.MonthlyExpenses != nil {
		var months float64
		if expenses := *p.MonthlyExpenses; expenses > 0 {
			months = p.CashBalance / expenses
		}
		m.LiquidityRatio = &months
	}
	return m
}
