package enums

import "fmt"

// StockIssueKind classifies why a combo item blocks the combo from sale.
type StockIssueKind string

const (
	StockIssueKindOutOfStock   StockIssueKind = "out_of_stock"
	StockIssueKindInsufficient StockIssueKind = "insufficient_stock"
)

var validStockIssueKinds = []StockIssueKind{
	StockIssueKindOutOfStock,
	StockIssueKindInsufficient,
}

// String implements fmt.Stringer.
func (s StockIssueKind) String() string {
	return string(s)
}

// IsValid reports whether the kind is known.
func (s StockIssueKind) IsValid() bool {
	for _, candidate := range validStockIssueKinds {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStockIssueKind converts raw input into a StockIssueKind.
func ParseStockIssueKind(value string) (StockIssueKind, error) {
	for _, candidate := range validStockIssueKinds {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stock issue kind %q", value)
}
