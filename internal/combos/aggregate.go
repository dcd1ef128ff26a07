package combos

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/internal/currency"
	"github.com/tiendahub/storefront-backend/pkg/enums"
	"github.com/tiendahub/storefront-backend/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// BasePriceResult is the quantity-weighted, currency-normalized cost of a
// combo's items. Dangling product references and missing exchange rates do not
// abort the sum; they are counted and surfaced as warnings so the caller can
// decide how loudly to complain.
type BasePriceResult struct {
	Base        decimal.Decimal
	Incomplete  int
	Unconverted int
	Warnings    types.ComboWarnings
}

// ComputeBasePrice sums each selected product's base price, converted to the
// snapshot's base currency and weighted by quantity. Items referencing a
// deleted product contribute nothing. An empty selection yields zero.
func ComputeBasePrice(items []Item, snap *Snapshot) BasePriceResult {
	result := BasePriceResult{Base: decimal.Zero}

	for _, item := range items {
		product, ok := snap.Products[item.ProductID]
		if !ok {
			result.Incomplete++
			result.Warnings = append(result.Warnings, types.ComboWarning{
				Type:    enums.ComboWarningTypeMissingProduct,
				Message: fmt.Sprintf("product %s no longer exists and was skipped", item.ProductID),
			})
			continue
		}

		conv := currency.Convert(product.BasePrice, product.BaseCurrencyID, snap.BaseCurrencyID, snap.Rates)
		if !conv.Converted {
			result.Unconverted++
			result.Warnings = append(result.Warnings, types.ComboWarning{
				Type:    enums.ComboWarningTypeUnconvertedCurrency,
				Message: fmt.Sprintf("no exchange rate for product %s; price used as-is", product.ID),
			})
		}

		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		result.Base = result.Base.Add(conv.Value.Mul(decimal.NewFromInt(int64(qty))))
	}

	return result
}

// ComputeFinalPrice applies the effective percentage margin to the base price.
func ComputeFinalPrice(base, marginPercent decimal.Decimal) decimal.Decimal {
	return base.Mul(decimal.NewFromInt(1).Add(marginPercent.Div(hundred)))
}
