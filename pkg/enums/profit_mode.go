package enums

import "fmt"

// ProfitMode identifies which margin field is the user-edited, authoritative input.
type ProfitMode string

const (
	ProfitModePercentage ProfitMode = "percentage"
	ProfitModeAmount     ProfitMode = "amount"
	ProfitModeSellPrice  ProfitMode = "sell_price"
)

var validProfitModes = []ProfitMode{
	ProfitModePercentage,
	ProfitModeAmount,
	ProfitModeSellPrice,
}

// String implements fmt.Stringer.
func (p ProfitMode) String() string {
	return string(p)
}

// IsValid reports whether the mode is recognized.
func (p ProfitMode) IsValid() bool {
	for _, candidate := range validProfitModes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProfitMode converts a raw string into a ProfitMode.
func ParseProfitMode(value string) (ProfitMode, error) {
	for _, candidate := range validProfitModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid profit mode %q", value)
}
