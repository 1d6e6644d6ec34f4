package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTables_WithOverrides(t *testing.T) {
	def := DefaultTables()
	custom := def.WithOverrides(
		map[string]float64{"acme": 0.2, "XEQT.TO": 0.06},
		map[RiskTolerance]Assumption{Growth: {Base: 0.1, RecessionShock: -0.3, Bull: 0.15}},
		0.05,
	)

	assert.Equal(t, 0.2, custom.SecurityReturn("ACME"))
	assert.Equal(t, 0.06, custom.SecurityReturn("xeqt.to"))
	assert.Equal(t, 0.05, custom.SecurityReturn("UNKNOWN"))
	assert.Equal(t, 0.1, custom.Assumption(Growth).Base)
	assert.Equal(t, 0.11, custom.Assumption(Aggressive).Base)

	// the defaults are left untouched
	assert.Equal(t, 0.105, def.SecurityReturn("XEQT.TO"))
	assert.Equal(t, DefaultFallbackReturn, def.SecurityReturn("ACME"))
	assert.Equal(t, 0.09, def.Assumption(Growth).Base)
	assert.Equal(t, 0.105, DefaultTables().SecurityReturn("XEQT.TO"))
}

func TestTables_UnknownTierIsBalanced(t *testing.T) {
	assert.Equal(t, DefaultTables().Assumption(Balanced), DefaultTables().Assumption(UnknownRiskTolerance))
}

func TestAnalyzer_UsesItsTables(t *testing.T) {
	p := cashOnly(0)
	p.Holdings = []Holding{{Symbol: "ACME", Shares: 1, CurrentPrice: 100, CostBasis: 100, AssetClass: Equity}}

	a := NewAnalyzer(DefaultTables().WithOverrides(map[string]float64{"ACME": 0.3}, nil, 0))
	assert.InDelta(t, 0.3, a.ComputeMetrics(p).WeightedAnnualReturn, 1e-12)
	assert.InDelta(t, DefaultFallbackReturn, ComputeMetrics(p).WeightedAnnualReturn, 1e-12)
}
