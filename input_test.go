package advisor

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadInput(t *testing.T) {
	p, err := LoadInput("testdata/portfolio.json")
	require.NoError(t, err)

	require.Len(t, p.Holdings, 4)
	assert.Equal(t, "TD.TO", p.Holdings[0].Symbol)
	assert.Equal(t, FixedIncome, p.Holdings[2].AssetClass)
	assert.Equal(t, Balanced, p.RiskTolerance)
	require.NotNil(t, p.AnnualIncome)
	assert.Equal(t, 110000.0, *p.AnnualIncome)
	assert.Equal(t, 15, p.Goal.YearsToGoal)
	assert.Equal(t, Percent(70), p.TargetAllocation.EquityPct)
	assert.Equal(t, DefaultCurrency, p.currency())
}

func TestDecodeInput_Errors(t *testing.T) {
	tests := []struct {
		name string
		json string
		want string
	}{
		{"unknown asset class", `{"holdings":[{"symbol":"A","assetClass":"gold"}],"riskTolerance":"balanced","goal":{"targetAmount":1,"yearsToGoal":1}}`, `unknown asset class: "gold"`},
		{"unknown risk", `{"riskTolerance":"yolo","goal":{"targetAmount":1,"yearsToGoal":1}}`, `unknown risk tolerance: "yolo"`},
		{"unknown field", `{"riskTolerance":"balanced","bitcoin":1}`, `unknown field "bitcoin"`},
		{"missing risk", `{"goal":{"targetAmount":1,"yearsToGoal":1}}`, `riskTolerance is required`},
		{"years", `{"riskTolerance":"growth","goal":{"targetAmount":1,"yearsToGoal":51}}`, `yearsToGoal must be between 1 and 50, got 51`},
		{"target", `{"riskTolerance":"growth","goal":{"targetAmount":0,"yearsToGoal":5}}`, `targetAmount must be positive`},
		{"negative cash", `{"cashBalance":-1,"riskTolerance":"growth","goal":{"targetAmount":1,"yearsToGoal":5}}`, `cashBalance must be a non-negative number`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeInput(strings.NewReader(tt.json))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	p := samplePortfolio()
	p.Holdings[0].Shares = -1
	p.Holdings[1].Symbol = ""
	p.MonthlyExpenses = ptr(-5)
	p.TargetAllocation.CashPct = 120

	err := p.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	msg := err.Error()
	assert.Contains(t, msg, `holding "XEQT.TO" shares`)
	assert.Contains(t, msg, "holding #1 has no symbol")
	assert.Contains(t, msg, "monthlyExpenses")
	assert.Contains(t, msg, "targetAllocation cashPct")
}

func TestValidate_Sample(t *testing.T) {
	assert.NoError(t, samplePortfolio().Validate())
}
