package combos

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/pkg/types"
)

// DraftQuote is the recomputed pricing state returned after every draft edit.
// The two non-driving margin fields are display caches derived from the
// driving one; nil means the derivation is undefined for the current base.
type DraftQuote struct {
	BasePrice        decimal.Decimal      `json:"base_price"`
	ProfitMode       string               `json:"profit_mode"`
	ProfitMargin     *decimal.Decimal     `json:"profit_margin,omitempty"`
	ProfitAmount     *decimal.Decimal     `json:"profit_amount,omitempty"`
	SellPrice        *decimal.Decimal     `json:"sell_price,omitempty"`
	MarginWarnings   types.MarginWarnings `json:"margin_warnings"`
	ComboWarnings    types.ComboWarnings  `json:"combo_warnings"`
	IncompleteItems  int                  `json:"incomplete_items"`
	UnconvertedItems int                  `json:"unconverted_items"`
}

// SaveComboResult carries the persisted combo plus the non-blocking advisories
// raised at save time.
type SaveComboResult struct {
	ComboID        uuid.UUID            `json:"combo_id"`
	Name           string               `json:"name"`
	ProfitMargin   decimal.Decimal      `json:"profit_margin"`
	IsActive       bool                 `json:"is_active"`
	MarginWarnings types.MarginWarnings `json:"margin_warnings"`
	ComboWarnings  types.ComboWarnings  `json:"combo_warnings"`
}

// ComboDisplay is the read-time projection of a persisted combo: prices in the
// requested display currency, stock facts, and the derived activation state.
type ComboDisplay struct {
	ComboID             uuid.UUID           `json:"combo_id"`
	Name                string              `json:"name"`
	CurrencyCode        string              `json:"currency_code"`
	BasePrice           decimal.Decimal     `json:"base_price"`
	FinalPrice          decimal.Decimal     `json:"final_price"`
	BasePriceFormatted  string              `json:"base_price_formatted"`
	FinalPriceFormatted string              `json:"final_price_formatted"`
	ProfitMargin        decimal.Decimal     `json:"profit_margin"`
	StockIssues         []StockIssue        `json:"stock_issues"`
	IsEffectivelyActive bool                `json:"is_effectively_active"`
	Savings             decimal.Decimal     `json:"savings"`
	SavingsPercent      decimal.Decimal     `json:"savings_percent"`
	Warnings            types.ComboWarnings `json:"warnings"`
	IncompleteItems     int                 `json:"incomplete_items"`
}
