package advisor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectScenarios(t *testing.T) {
	p := cashOnly(100000)
	p.AnnualContribution = 10000
	p.Goal = Goal{TargetAmount: 300000, YearsToGoal: 10}
	m := ComputeMetrics(p)

	got := ProjectScenarios(p, m)
	require.Len(t, got, 3)

	base, recession, bull := got[0], got[1], got[2]
	assert.Equal(t, BaseRegime, base.Name)
	assert.Equal(t, RecessionRegime, recession.Name)
	assert.Equal(t, BullRegime, bull.Name)

	assert.Equal(t, []float64{100000, 117000, 135190, 154653, 175479, 197763, 221606, 247118, 274416, 303625, 334879}, base.YearByYearValues)
	assert.Equal(t, 0.07, base.AnnualReturn)
	assert.Zero(t, base.RecessionShock)
	assert.Equal(t, float64(334879), base.FinalValue)
	assert.Equal(t, 82, base.GoalProbability)

	// first year shocked, then back to the base return
	assert.Equal(t, []float64{100000, 88000, 104160, 121451, 139953, 159750, 180933, 203598, 227850, 253800, 281566}, recession.YearByYearValues)
	assert.Equal(t, 0.07, recession.AnnualReturn)
	assert.Equal(t, -0.22, recession.RecessionShock)
	assert.Equal(t, 64, recession.GoalProbability)

	assert.Equal(t, float64(122000), bull.YearByYearValues[1])
	assert.Equal(t, float64(486071), bull.FinalValue)
	assert.Equal(t, 0.12, bull.AnnualReturn)
	assert.Equal(t, 97, bull.GoalProbability)
}

func TestProjectScenarios_RiskTiers(t *testing.T) {
	tests := []struct {
		tolerance RiskTolerance
		want      Assumption
	}{
		{Conservative, Assumption{Base: 0.05, RecessionShock: -0.12, Bull: 0.08}},
		{Balanced, Assumption{Base: 0.07, RecessionShock: -0.22, Bull: 0.12}},
		{Growth, Assumption{Base: 0.09, RecessionShock: -0.32, Bull: 0.16}},
		{Aggressive, Assumption{Base: 0.11, RecessionShock: -0.42, Bull: 0.20}},
	}
	for _, tt := range tests {
		t.Run(tt.tolerance.String(), func(t *testing.T) {
			p := cashOnly(1000)
			p.RiskTolerance = tt.tolerance
			got := ProjectScenarios(p, ComputeMetrics(p))
			assert.Equal(t, tt.want.Base, got[0].AnnualReturn)
			assert.Equal(t, tt.want.RecessionShock, got[1].RecessionShock)
			assert.Equal(t, tt.want.Bull, got[2].AnnualReturn)
		})
	}
}

func TestProject_FloorsAtZero(t *testing.T) {
	// a shock beyond -100% would go negative
	got := Project(1000, 0, 3, 0.05, -1.5)
	assert.Equal(t, []float64{1000, 0, 0, 0}, got)

	got = Project(-50, 100, 2, 0.1, 0.1)
	assert.Equal(t, []float64{0, 100, 210}, got)

	assert.Equal(t, []float64{1000}, Project(1000, 10, 0, 0.1, 0.1))
	assert.Equal(t, []float64{1000}, Project(1000, 10, -3, 0.1, 0.1))
}

func TestGoalProbability(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		target float64
		want   int
	}{
		{"zero", 0, 300000, 3},
		{"tiny", 1, 300000, 3},
		{"below half", 120000, 300000, 12},  // 0.4×30
		{"half", 150000, 300000, 15},        // 15 + 0
		{"0.65", 195000, 300000, 30},        // 15 + 0.15×100
		{"0.8", 240000, 300000, 45},         // 45 + 0
		{"0.9", 270000, 300000, 59},         // 45 + 0.1×135 = 58.5
		{"on target", 300000, 300000, 72},   // 72 + 0
		{"1.1", 330000, 300000, 81},         // 72 + 0.1×90
		{"1.2", 360000, 300000, 90},         // 90 + 0
		{"1.4", 420000, 300000, 95},         // 90 + 0.2×23 = 94.6
		{"1.5", 450000, 300000, 97},
		{"huge", 1e15, 300000, 97},
		{"infinite", math.Inf(1), 300000, 97},
		{"no target", 1000, 0, 97},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoalProbability(tt.value, tt.target))
		})
	}
}
