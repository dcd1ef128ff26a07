package combos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/tiendahub/storefront-backend/internal/currency"
	"github.com/tiendahub/storefront-backend/internal/pricing"
	"github.com/tiendahub/storefront-backend/pkg/db/models"
	"github.com/tiendahub/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendahub/storefront-backend/pkg/errors"
	"github.com/tiendahub/storefront-backend/pkg/metrics"
	"github.com/tiendahub/storefront-backend/pkg/types"
)

// SnapshotLoader supplies the catalog state a pricing computation runs over.
type SnapshotLoader interface {
	Snapshot(ctx context.Context) (*Snapshot, error)
}

// ComboStore persists combos and reads them back with their items.
type ComboStore interface {
	Save(ctx context.Context, combo *models.Combo) (*models.Combo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Combo, error)
}

// SaveComboInput is the write payload for persisting a combo.
type SaveComboInput struct {
	Draft             Draft
	IsActive          bool
	ConfirmZeroMargin bool
}

// Service is the pricing facade for combos: draft quoting, persistence with
// margin policy enforcement, and display-side projection.
type Service interface {
	QuoteDraft(ctx context.Context, draft Draft) (*DraftQuote, error)
	SaveCombo(ctx context.Context, input SaveComboInput) (*SaveComboResult, error)
	DisplayCombo(ctx context.Context, comboID, displayCurrencyID uuid.UUID) (*ComboDisplay, error)
}

type service struct {
	snapshots     SnapshotLoader
	store         ComboStore
	calc          *pricing.Calculator
	defaultMargin decimal.Decimal
	metrics       *metrics.PricingMetrics
}

// NewService wires the combo facade. Metrics may be nil in tests.
func NewService(snapshots SnapshotLoader, store ComboStore, calc *pricing.Calculator, defaultMargin decimal.Decimal, m *metrics.PricingMetrics) (Service, error) {
	if snapshots == nil {
		return nil, errors.New("snapshot loader is required")
	}
	if store == nil {
		return nil, errors.New("combo store is required")
	}
	if calc == nil {
		return nil, errors.New("margin calculator is required")
	}
	return &service{
		snapshots:     snapshots,
		store:         store,
		calc:          calc,
		defaultMargin: defaultMargin,
		metrics:       m,
	}, nil
}

func (s *service) QuoteDraft(ctx context.Context, draft Draft) (*DraftQuote, error) {
	start := time.Now()
	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		s.metrics.IncQuote("error")
		return nil, err
	}

	base := ComputeBasePrice(draft.Items, snap)
	breakdown, err := s.calc.Derive(base.Base, draft.Margin)
	if err != nil {
		s.metrics.IncQuote("rejected")
		return nil, err
	}

	s.metrics.ObserveDuration("quote", time.Since(start))
	s.metrics.IncQuote("ok")

	rounded := breakdown.Rounded()
	return &DraftQuote{
		BasePrice:        base.Base.Round(2),
		ProfitMode:       draft.Margin.Mode.String(),
		ProfitMargin:     rounded.Percent,
		ProfitAmount:     rounded.Amount,
		SellPrice:        rounded.SellPrice,
		MarginWarnings:   breakdown.Warnings,
		ComboWarnings:    base.Warnings,
		IncompleteItems:  base.Incomplete,
		UnconvertedItems: base.Unconverted,
	}, nil
}

func (s *service) SaveCombo(ctx context.Context, input SaveComboInput) (*SaveComboResult, error) {
	start := time.Now()
	draft := input.Draft
	if draft.Name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "combo name is required")
	}
	if len(draft.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "combo requires at least one item")
	}
	for _, item := range draft.Items {
		if item.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item quantity must be at least 1").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	base := ComputeBasePrice(draft.Items, snap)
	breakdown, err := s.calc.Derive(base.Base, draft.Margin)
	if err != nil {
		return nil, err
	}

	pct := decimal.Zero
	if breakdown.Percent != nil {
		pct = *breakdown.Percent
	}

	// Margin policy gates persistence. A confirmation-required error must
	// leave no trace in the store.
	warnings, err := s.calc.ValidateForSave(pct, input.ConfirmZeroMargin)
	if err != nil {
		return nil, err
	}

	stored := pct.Round(4)
	combo := &models.Combo{
		Name:         draft.Name,
		ProfitMargin: &stored,
		IsActive:     input.IsActive,
		Items:        make([]models.ComboItem, 0, len(draft.Items)),
	}
	if draft.ID != nil {
		combo.ID = *draft.ID
	}
	for i, item := range draft.Items {
		combo.Items = append(combo.Items, models.ComboItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Position:  i,
		})
	}

	saved, err := s.store.Save(ctx, combo)
	if err != nil {
		return nil, err
	}

	s.metrics.ObserveDuration("save", time.Since(start))

	margin := decimal.Zero
	if saved.ProfitMargin != nil {
		margin = *saved.ProfitMargin
	}
	return &SaveComboResult{
		ComboID:        saved.ID,
		Name:           saved.Name,
		ProfitMargin:   margin,
		IsActive:       saved.IsActive,
		MarginWarnings: warnings,
		ComboWarnings:  base.Warnings,
	}, nil
}

func (s *service) DisplayCombo(ctx context.Context, comboID, displayCurrencyID uuid.UUID) (*ComboDisplay, error) {
	start := time.Now()
	combo, err := s.store.FindByID(ctx, comboID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "combo not found").
				WithDetails(map[string]any{"combo_id": comboID})
		}
		return nil, err
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	if displayCurrencyID == uuid.Nil {
		displayCurrencyID = snap.BaseCurrencyID
	}

	items := make([]Item, 0, len(combo.Items))
	for _, it := range combo.Items {
		items = append(items, Item{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	base := ComputeBasePrice(items, snap)
	margin := s.defaultMargin
	if combo.ProfitMargin != nil {
		margin = *combo.ProfitMargin
	}
	// The stored percentage is re-applied to whatever the base price is now.
	recomputed := s.calc.RecomputeForNewBase(base.Base, margin)
	margin = *recomputed.Percent
	final := ComputeFinalPrice(base.Base, margin)

	warnings := base.Warnings
	baseConv := currency.Convert(base.Base, snap.BaseCurrencyID, displayCurrencyID, snap.Rates)
	finalConv := currency.Convert(final, snap.BaseCurrencyID, displayCurrencyID, snap.Rates)
	if !baseConv.Converted || !finalConv.Converted {
		warnings = append(warnings, types.ComboWarning{
			Type:    enums.ComboWarningTypeUnconvertedCurrency,
			Message: "combo total could not be converted to the requested currency",
		})
	}

	issues := CheckStockIssues(items, snap)
	active := IsEffectivelyActive(combo.IsActive, issues)

	// Savings compares the buy-separately total against the combo price,
	// both in the display currency. Negative savings is a legitimate value.
	individualTotal := decimal.Zero
	for _, item := range items {
		product, ok := snap.Products[item.ProductID]
		if !ok {
			continue
		}
		unit := product.BasePrice
		if product.FinalPrice != nil {
			unit = *product.FinalPrice
		}
		conv := currency.Convert(unit, product.BaseCurrencyID, displayCurrencyID, snap.Rates)
		individualTotal = individualTotal.Add(conv.Value.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	savings := individualTotal.Sub(finalConv.Value)
	savingsPercent := decimal.Zero
	if individualTotal.IsPositive() {
		savingsPercent = savings.Div(individualTotal).Mul(hundred)
	}

	code, symbol := displayCurrencyParts(snap, displayCurrencyID)

	if active {
		s.metrics.IncDisplay("active")
	} else {
		s.metrics.IncDisplay("deactivated")
	}
	s.metrics.ObserveDuration("display", time.Since(start))

	baseRounded := baseConv.Value.Round(2)
	finalRounded := finalConv.Value.Round(2)
	return &ComboDisplay{
		ComboID:             combo.ID,
		Name:                combo.Name,
		CurrencyCode:        code,
		BasePrice:           baseRounded,
		FinalPrice:          finalRounded,
		BasePriceFormatted:  symbol + baseRounded.StringFixed(2),
		FinalPriceFormatted: symbol + finalRounded.StringFixed(2),
		ProfitMargin:        margin.Round(2),
		StockIssues:         issues,
		IsEffectivelyActive: active,
		Savings:             savings.Round(2),
		SavingsPercent:      savingsPercent.Round(2),
		Warnings:            warnings,
		IncompleteItems:     base.Incomplete,
	}, nil
}

func displayCurrencyParts(snap *Snapshot, currencyID uuid.UUID) (code, symbol string) {
	if ccy, ok := snap.Currencies[currencyID]; ok {
		return ccy.Code, ccy.Symbol
	}
	return "", ""
}
