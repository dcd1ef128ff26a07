package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendahub/storefront-backend/pkg/errors"
	"github.com/tiendahub/storefront-backend/pkg/types"
)

var hundred = decimal.NewFromInt(100)

// Input is the single authoritative margin field chosen by the author. The
// other two representations are always derived from it, never edited directly.
type Input struct {
	Mode  enums.ProfitMode
	Value decimal.Decimal
}

// Breakdown carries the driving margin value plus the two derived caches kept
// for display. Values are full precision; callers round at the boundary where
// a number is surfaced. A nil field means the derivation is undefined for the
// current base price (division by a non-positive base).
type Breakdown struct {
	Percent   *decimal.Decimal
	Amount    *decimal.Decimal
	SellPrice *decimal.Decimal
	Warnings  types.MarginWarnings
}

// Rounded returns a copy with every defined value rounded to 2 decimal places.
func (b Breakdown) Rounded() Breakdown {
	out := Breakdown{Warnings: b.Warnings}
	out.Percent = roundPtr(b.Percent)
	out.Amount = roundPtr(b.Amount)
	out.SellPrice = roundPtr(b.SellPrice)
	return out
}

func roundPtr(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	rounded := d.Round(2)
	return &rounded
}

// Calculator derives the redundant margin representations and enforces the
// catalog's margin policy.
type Calculator struct {
	minMarginPercent decimal.Decimal
}

// NewCalculator builds a calculator with the catalog-wide minimum margin
// threshold used for the non-blocking below-minimum advisory.
func NewCalculator(minMarginPercent decimal.Decimal) *Calculator {
	return &Calculator{minMarginPercent: minMarginPercent}
}

// Derive computes the two non-driving margin fields from the driving one.
// Negative percentage or amount inputs are rejected outright; a target sell
// price below cost is accepted but clamps the derived fields to zero and
// raises a non-blocking warning.
func (c *Calculator) Derive(basePrice decimal.Decimal, input Input) (Breakdown, error) {
	if !input.Mode.IsValid() {
		return Breakdown{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown profit mode").
			WithDetails(map[string]string{"mode": input.Mode.String()})
	}

	switch input.Mode {
	case enums.ProfitModePercentage:
		if input.Value.IsNegative() {
			return Breakdown{}, negativeMarginError("profit_margin")
		}
		return deriveFromPercentage(basePrice, input.Value), nil

	case enums.ProfitModeAmount:
		if input.Value.IsNegative() {
			return Breakdown{}, negativeMarginError("profit_amount")
		}
		return deriveFromAmount(basePrice, input.Value), nil

	default: // enums.ProfitModeSellPrice
		return deriveFromSellPrice(basePrice, input.Value), nil
	}
}

// RecomputeForNewBase refreshes the derived amount and sell price after the
// aggregate base price changed while the driving mode stayed percentage. The
// stored percentage is trusted; a negative one is clamped rather than
// rejected so a stale record cannot wedge the draft.
func (c *Calculator) RecomputeForNewBase(basePrice, storedPercent decimal.Decimal) Breakdown {
	if storedPercent.IsNegative() {
		storedPercent = decimal.Zero
	}
	return deriveFromPercentage(basePrice, storedPercent)
}

// ValidateForSave applies save-time policy to the effective percentage. A zero
// margin needs an explicit caller confirmation on a second call; a margin
// below the configured minimum is allowed but flagged.
func (c *Calculator) ValidateForSave(percent decimal.Decimal, confirmZeroMargin bool) (types.MarginWarnings, error) {
	if percent.IsNegative() {
		return nil, negativeMarginError("profit_margin")
	}
	if percent.IsZero() {
		if !confirmZeroMargin {
			return nil, pkgerrors.New(pkgerrors.CodeConfirmationRequired, "zero profit margin requires confirmation").
				WithDetails(map[string]string{"confirm_flag": "confirm_zero_margin"})
		}
		return nil, nil
	}
	if percent.LessThan(c.minMarginPercent) {
		return types.MarginWarnings{{
			Type:    enums.MarginWarningTypeBelowMinimum,
			Message: "profit margin is below the configured minimum of " + c.minMarginPercent.String() + "%",
		}}, nil
	}
	return nil, nil
}

func deriveFromPercentage(base, percent decimal.Decimal) Breakdown {
	amount := base.Mul(percent).Div(hundred)
	sell := base.Add(amount)
	return Breakdown{Percent: &percent, Amount: &amount, SellPrice: &sell}
}

func deriveFromAmount(base, amount decimal.Decimal) Breakdown {
	sell := base.Add(amount)
	out := Breakdown{Amount: &amount, SellPrice: &sell}
	if base.IsPositive() {
		percent := amount.Div(base).Mul(hundred)
		out.Percent = &percent
	}
	return out
}

func deriveFromSellPrice(base, sell decimal.Decimal) Breakdown {
	out := Breakdown{SellPrice: &sell}

	amount := sell.Sub(base)
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	out.Amount = &amount

	if base.IsPositive() {
		percent := sell.Div(base).Sub(decimal.NewFromInt(1)).Mul(hundred)
		if percent.IsNegative() {
			percent = decimal.Zero
		}
		out.Percent = &percent
	}

	if sell.LessThan(base) {
		out.Warnings = append(out.Warnings, types.MarginWarning{
			Type:    enums.MarginWarningTypeSellPriceBelowCost,
			Message: "target sell price is below the combo's base cost",
		})
	}
	return out
}

func negativeMarginError(field string) *pkgerrors.Error {
	return pkgerrors.New(pkgerrors.CodeValidation, "negative margin is not allowed").
		WithDetails(map[string]string{"field": field})
}
