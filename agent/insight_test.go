package agent

import (
	"context"
	"strings"
	"testing"

	"github.com/etnz/advisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfidenceBand(t *testing.T) {
	tests := []struct {
		score  int
		lo, hi int
	}{
		{70, 55, 75},
		{100, 85, 91},
		{50, 52, 55},
		{47, 52, 52},
		{10, 52, 52},
		{0, 52, 52},
	}
	for _, tt := range tests {
		lo, hi := ConfidenceBand(tt.score)
		if lo != tt.lo || hi != tt.hi {
			t.Errorf("ConfidenceBand(%d) = [%d, %d], want [%d, %d]", tt.score, lo, hi, tt.lo, tt.hi)
		}
		if lo > hi {
			t.Errorf("ConfidenceBand(%d) is inverted", tt.score)
		}
	}
}

func TestTemplateNarrator(t *testing.T) {
	a := sampleAnalysis()
	got, err := TemplateNarrator{}.Narrate(context.Background(), a)
	require.NoError(t, err)

	assert.Equal(t, "Deploy Idle Cash: Your Highest-Leverage Action Right Now", got.Headline)
	assert.True(t, strings.HasPrefix(got.Explanation, "Cash is idle. Estimated annual benefit: $3,500.\n\n"), got.Explanation)
	assert.Equal(t, []string{"excess Cash: $10,000", "excess Cash Pct: 10", "annual Drag: 350"}, got.KeyNumbers)
	assert.Equal(t, 70, got.Confidence)
	assert.Equal(t, Disclaimer, got.Disclaimer)
}

func TestTemplateNarrator_NoBenefit(t *testing.T) {
	a := sampleAnalysis()
	a.TopAction.EstimatedAnnualBenefit = 0
	a.TopAction.Score = 20
	a.TopAction.Details = advisor.Details{{Key: "symbol", Value: "FOO"}}

	got := templateInsight(a)
	assert.NotContains(t, got.Explanation, "Estimated annual benefit")
	assert.Equal(t, []string{"symbol: FOO"}, got.KeyNumbers)
	assert.Equal(t, MinConfidence, got.Confidence)
}

func TestTemplateNarrator_NoAction(t *testing.T) {
	a := sampleAnalysis()
	a.TopAction = nil
	a.Actions = nil

	got := templateInsight(a)
	assert.Contains(t, got.Headline, "No Action Needed")
	assert.Equal(t, []string{"Total value: $100,000", "Base case goal probability: 82%"}, got.KeyNumbers)
	assert.Equal(t, Disclaimer, got.Disclaimer)
}

func TestDecamelize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"excessCashPct", "excess Cash Pct"},
		{"tfsaRoom", "tfsa Room"},
		{"symbol", "symbol"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := decamelize(tt.in); got != tt.want {
			t.Errorf("decamelize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
