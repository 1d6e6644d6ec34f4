package advisor

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Amounts are float64 throughout the analysis: the figures are estimates,
// not bookkeeping. Rounding and display go through decimal and go-money so
// that they do not depend on float formatting.

// roundUnits rounds v to whole currency units, half away from zero.
func roundUnits(v float64) float64 {
	return roundTo(v, 0)
}

// roundTenth rounds v to one decimal place.
func roundTenth(v float64) float64 {
	return roundTo(v, 1)
}

func roundTo(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// FormatMoney formats v as whole units of the given currency, e.g. "$20,000".
// Unknown currency codes fall back to DefaultCurrency.
func FormatMoney(v float64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		cur = money.GetCurrency(DefaultCurrency)
	}
	f := money.NewFormatter(0, cur.Decimal, cur.Thousand, cur.Grapheme, cur.Template)
	return f.Format(decimal.NewFromFloat(roundUnits(v)).IntPart())
}
