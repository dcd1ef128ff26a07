package currency

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/pkg/db/models"
)

// RateTable is the sparse exchange-rate map keyed by "fromID-toID". A pair may
// be present in one direction only; the converter falls back to the inverse.
type RateTable map[string]decimal.Decimal

// Key builds the ordered-pair lookup key.
func Key(fromID, toID uuid.UUID) string {
	return fmt.Sprintf("%s-%s", fromID, toID)
}

// NewRateTable indexes exchange-rate rows for lookup. Non-positive rates are
// dropped rather than letting them poison a division later.
func NewRateTable(rows []models.ExchangeRate) RateTable {
	table := make(RateTable, len(rows))
	for _, row := range rows {
		if !row.Rate.IsPositive() {
			continue
		}
		table[Key(row.FromCurrencyID, row.ToCurrencyID)] = row.Rate
	}
	return table
}

// Conversion is the result of a currency conversion. Converted reports whether
// the returned value is actually denominated in the target currency; a false
// value means no rate existed and the amount passed through unchanged.
type Conversion struct {
	Value     decimal.Decimal
	Converted bool
}

// Convert translates amount from one currency to another using the rate table.
// It never fails: identity cases return the amount as-is, and a missing rate
// pair falls back to the unconverted amount with Converted=false so callers
// can surface the unit mismatch instead of silently trusting it.
func Convert(amount decimal.Decimal, fromID, toID uuid.UUID, rates RateTable) Conversion {
	if amount.IsZero() || fromID == toID {
		return Conversion{Value: amount, Converted: true}
	}
	if fromID == uuid.Nil || toID == uuid.Nil {
		return Conversion{Value: amount, Converted: false}
	}
	if rate, ok := rates[Key(fromID, toID)]; ok {
		return Conversion{Value: amount.Mul(rate), Converted: true}
	}
	if rate, ok := rates[Key(toID, fromID)]; ok {
		return Conversion{Value: amount.Div(rate), Converted: true}
	}
	return Conversion{Value: amount, Converted: false}
}
