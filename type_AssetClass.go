package advisor

import "fmt"

// AssetClass defines the broad category a holding belongs to.
type AssetClass int

const (
	// UnknownAssetClass is the zero value, it never passes validation.
	UnknownAssetClass AssetClass = iota
	// Equity covers stocks and equity funds.
	Equity
	// FixedIncome covers bonds and bond funds.
	FixedIncome
	// CashEquivalent covers money market and high interest savings funds.
	CashEquivalent
	// Alternative covers everything else (REITs, commodities, crypto...).
	Alternative
)

func (c AssetClass) String() string {
	switch c {
	case Equity:
		return "equity"
	case FixedIncome:
		return "fixed_income"
	case CashEquivalent:
		return "cash"
	case Alternative:
		return "alternative"
	default:
		return "unknown"
	}
}

// ParseAssetClass parses a string into an AssetClass.
func ParseAssetClass(s string) (AssetClass, error) {
	switch s {
	case "equity":
		return Equity, nil
	case "fixed_income":
		return FixedIncome, nil
	case "cash":
		return CashEquivalent, nil
	case "alternative":
		return Alternative, nil
	default:
		return UnknownAssetClass, fmt.Errorf("unknown asset class: %q", s)
	}
}

func (c AssetClass) MarshalText() ([]byte, error) {
	if c == UnknownAssetClass {
		return nil, fmt.Errorf("cannot marshal unknown asset class")
	}
	return []byte(c.String()), nil
}

func (c *AssetClass) UnmarshalText(text []byte) error {
	v, err := ParseAssetClass(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
