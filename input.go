package advisor

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// DefaultCurrency is used to format amounts when the input does not name one.
const DefaultCurrency = "CAD"

// Goal is the savings objective the scenarios are measured against.
type Goal struct {
	TargetAmount float64 `json:"targetAmount"`
	YearsToGoal  int     `json:"yearsToGoal"`
	Description  string  `json:"description"`
}

// TargetAllocation is the investor's intended split. It is not required to
// sum up to 100.
type TargetAllocation struct {
	EquityPct      Percent `json:"equityPct"`
	FixedIncomePct Percent `json:"fixedIncomePct"`
	CashPct        Percent `json:"cashPct"`
}

// PortfolioInput is the snapshot submitted for one analysis. It is never
// mutated by this package.
type PortfolioInput struct {
	Holdings           []Holding        `json:"holdings"`
	CashBalance        float64          `json:"cashBalance"`
	TFSARoomRemaining  float64          `json:"tfsaRoomRemaining"`
	RRSPRoomRemaining  float64          `json:"rrspRoomRemaining"`
	RiskTolerance      RiskTolerance    `json:"riskTolerance"`
	AnnualContribution float64          `json:"annualContribution"`
	AnnualIncome       *float64         `json:"annualIncome,omitempty"`
	MonthlyExpenses    *float64         `json:"monthlyExpenses,omitempty"`
	Goal               Goal             `json:"goal"`
	TargetAllocation   TargetAllocation `json:"targetAllocation"`
	Currency           string           `json:"currency,omitempty"`
}

// currency returns the currency code used to format amounts.
func (p *PortfolioInput) currency() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// DecodeInput reads a single JSON portfolio from r and validates it.
func DecodeInput(r io.Reader) (*PortfolioInput, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var p PortfolioInput
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding portfolio: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadInput decodes and validates the portfolio stored in file.
func LoadInput(file string) (*PortfolioInput, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := DecodeInput(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return p, nil
}
