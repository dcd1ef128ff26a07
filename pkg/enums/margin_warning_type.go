package enums

import "fmt"

// MarginWarningType enumerates non-blocking margin advisories.
type MarginWarningType string

const (
	MarginWarningTypeSellPriceBelowCost MarginWarningType = "sell_price_below_cost"
	MarginWarningTypeBelowMinimum       MarginWarningType = "below_minimum_margin"
)

var validMarginWarningTypes = []MarginWarningType{
	MarginWarningTypeSellPriceBelowCost,
	MarginWarningTypeBelowMinimum,
}

// String implements fmt.Stringer.
func (m MarginWarningType) String() string {
	return string(m)
}

// IsValid reports whether the value is known.
func (m MarginWarningType) IsValid() bool {
	for _, candidate := range validMarginWarningTypes {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMarginWarningType converts raw input into a MarginWarningType.
func ParseMarginWarningType(value string) (MarginWarningType, error) {
	for _, candidate := range validMarginWarningTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid margin warning type %q", value)
}
