package advisor

import "strings"

// Assumption holds the annual returns used to project one risk tolerance.
type Assumption struct {
	Base           float64 `json:"base" mapstructure:"base"`
	RecessionShock float64 `json:"recessionShock" mapstructure:"recession_shock"` // first year only, negative
	Bull           float64 `json:"bull" mapstructure:"bull"`
}

// DefaultFallbackReturn is the expected return of an unknown security.
const DefaultFallbackReturn = 0.08

var defaultAssumptions = map[RiskTolerance]Assumption{
	Conservative: {Base: 0.05, RecessionShock: -0.12, Bull: 0.08},
	Balanced:     {Base: 0.07, RecessionShock: -0.22, Bull: 0.12},
	Growth:       {Base: 0.09, RecessionShock: -0.32, Bull: 0.16},
	Aggressive:   {Base: 0.11, RecessionShock: -0.42, Bull: 0.20},
}

// long run annual returns for common Canadian listings and a few US ETFs.
var defaultReturns = map[string]float64{
	"TD.TO": 0.090, "RY.TO": 0.100, "BNS.TO": 0.070,
	"BMO.TO": 0.090, "CM.TO": 0.080, "NA.TO": 0.110,
	"XIU.TO": 0.090, "XIC.TO": 0.090, "VFV.TO": 0.145,
	"ZSP.TO": 0.145, "XEQT.TO": 0.105, "XGRO.TO": 0.095,
	"XBAL.TO": 0.080, "VDY.TO": 0.085, "ZAG.TO": 0.035,
	"XBB.TO": 0.030, "VSB.TO": 0.030, "ZCN.TO": 0.090,
	"HXT.TO": 0.092, "CASH.TO": 0.050, "PSA.TO": 0.050,
	"QQQ": 0.160, "SPY": 0.145, "VTI": 0.140,
}

// Tables is the static configuration of the analysis: expected return per
// security and return assumptions per risk tolerance.
//
// A Tables is built once, at process start, and only read afterwards. The
// maps it holds must not be modified once it is handed to an Analyzer.
type Tables struct {
	returns        map[string]float64
	assumptions    map[RiskTolerance]Assumption
	fallbackReturn float64
}

// DefaultTables returns the built-in tables.
func DefaultTables() Tables {
	return Tables{
		returns:        defaultReturns,
		assumptions:    defaultAssumptions,
		fallbackReturn: DefaultFallbackReturn,
	}
}

// WithOverrides returns a copy of t where the given entries replace the
// defaults. Symbols are case insensitive. A zero fallback keeps the current one.
func (t Tables) WithOverrides(returns map[string]float64, assumptions map[RiskTolerance]Assumption, fallback float64) Tables {
	n := Tables{
		returns:        make(map[string]float64, len(t.returns)+len(returns)),
		assumptions:    make(map[RiskTolerance]Assumption, len(t.assumptions)+len(assumptions)),
		fallbackReturn: t.fallbackReturn,
	}
	for k, v := range t.returns {
		n.returns[k] = v
	}
	for k, v := range returns {
		n.returns[strings.ToUpper(k)] = v
	}
	for k, v := range t.assumptions {
		n.assumptions[k] = v
	}
	for k, v := range assumptions {
		n.assumptions[k] = v
	}
	if fallback != 0 {
		n.fallbackReturn = fallback
	}
	return n
}

// SecurityReturn returns the expected annual return of symbol, or the
// fallback rate when the symbol is unknown.
func (t Tables) SecurityReturn(symbol string) float64 {
	if r, ok := t.returns[strings.ToUpper(symbol)]; ok {
		return r
	}
	return t.fallbackReturn
}

// Assumption returns the return assumptions for a risk tolerance. Unknown
// tiers get the balanced assumptions.
func (t Tables) Assumption(r RiskTolerance) Assumption {
	if a, ok := t.assumptions[r]; ok {
		return a
	}
	return defaultAssumptions[Balanced]
}
