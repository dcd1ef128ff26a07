package enums

import "fmt"

// ComboWarningType enumerates data-quality advisories raised while pricing a combo.
type ComboWarningType string

const (
	ComboWarningTypeMissingProduct      ComboWarningType = "missing_product"
	ComboWarningTypeUnconvertedCurrency ComboWarningType = "unconverted_currency"
)

var validComboWarningTypes = []ComboWarningType{
	ComboWarningTypeMissingProduct,
	ComboWarningTypeUnconvertedCurrency,
}

// String implements fmt.Stringer.
func (c ComboWarningType) String() string {
	return string(c)
}

// IsValid reports whether the value is known.
func (c ComboWarningType) IsValid() bool {
	for _, candidate := range validComboWarningTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseComboWarningType converts raw input into a ComboWarningType.
func ParseComboWarningType(value string) (ComboWarningType, error) {
	for _, candidate := range validComboWarningTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid combo warning type %q", value)
}
