package advisor

// Holding is a single position of the brokerage snapshot.
type Holding struct {
	Symbol       string     `json:"symbol"`
	Shares       float64    `json:"shares"`
	CurrentPrice float64    `json:"currentPrice"`
	CostBasis    float64    `json:"costBasis"` // per share
	AssetClass   AssetClass `json:"assetClass"`
	Sector       string     `json:"sector"`
}

// MarketValue returns the current value of the position.
func (h Holding) MarketValue() float64 { return h.Shares * h.CurrentPrice }

// CostValue returns the total amount paid for the position.
func (h Holding) CostValue() float64 { return h.Shares * h.CostBasis }

// InLoss reports whether the position trades below its cost basis.
func (h Holding) InLoss() bool { return h.CurrentPrice < h.CostBasis }
