package advisor

// ptr is a helper for test to set optional inputs.
func ptr(v float64) *float64 { return &v }

// samplePortfolio is a small balanced portfolio with one gain, two losses
// and a concentrated position.
func samplePortfolio() *PortfolioInput {
	return &PortfolioInput{
		Holdings: []Holding{
			{Symbol: "XEQT.TO", Shares: 100, CurrentPrice: 30, CostBasis: 25, AssetClass: Equity, Sector: "Diversified"},
			{Symbol: "ZAG.TO", Shares: 200, CurrentPrice: 14, CostBasis: 15, AssetClass: FixedIncome, Sector: "Bonds"},
			{Symbol: "FOO", Shares: 10, CurrentPrice: 50, CostBasis: 100, AssetClass: Equity, Sector: "Tech"},
		},
		CashBalance:        700,
		TFSARoomRemaining:  0,
		RRSPRoomRemaining:  0,
		RiskTolerance:      Balanced,
		AnnualContribution: 1200,
		AnnualIncome:       ptr(80000),
		MonthlyExpenses:    ptr(3000),
		Goal:               Goal{TargetAmount: 20000, YearsToGoal: 5, Description: "Down payment"},
		TargetAllocation:   TargetAllocation{EquityPct: 60, FixedIncomePct: 30, CashPct: 10},
	}
}

// cashOnly returns a portfolio holding only cash.
func cashOnly(cash float64) *PortfolioInput {
	return &PortfolioInput{
		CashBalance:   cash,
		RiskTolerance: Balanced,
		Goal:          Goal{TargetAmount: 1, YearsToGoal: 1},
	}
}
