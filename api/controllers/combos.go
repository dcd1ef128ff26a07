package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/api/responses"
	"github.com/tiendahub/storefront-backend/api/validators"
	combosvc "github.com/tiendahub/storefront-backend/internal/combos"
	"github.com/tiendahub/storefront-backend/internal/pricing"
	"github.com/tiendahub/storefront-backend/pkg/enums"
	pkgerrors "github.com/tiendahub/storefront-backend/pkg/errors"
	"github.com/tiendahub/storefront-backend/pkg/logger"
)

type comboItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

type quoteComboRequest struct {
	Name        string             `json:"name,omitempty"`
	Items       []comboItemRequest `json:"items" validate:"required,min=1,dive"`
	ProfitMode  string             `json:"profit_mode" validate:"required,oneof=percentage amount sell_price"`
	ProfitValue decimal.Decimal    `json:"profit_value"`
}

type saveComboRequest struct {
	ID                *string            `json:"id,omitempty" validate:"omitempty,uuid"`
	Name              string             `json:"name" validate:"required,min=1,max=200"`
	Items             []comboItemRequest `json:"items" validate:"required,min=1,dive"`
	ProfitMode        string             `json:"profit_mode" validate:"required,oneof=percentage amount sell_price"`
	ProfitValue       decimal.Decimal    `json:"profit_value"`
	IsActive          bool               `json:"is_active"`
	ConfirmZeroMargin bool               `json:"confirm_zero_margin"`
}

func toDraftItems(items []comboItemRequest) ([]combosvc.Item, error) {
	out := make([]combosvc.Item, 0, len(items))
	for _, item := range items {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id").
				WithDetails(map[string]any{"product_id": item.ProductID})
		}
		out = append(out, combosvc.Item{ProductID: id, Quantity: item.Quantity})
	}
	return out, nil
}

func toMarginInput(mode string, value decimal.Decimal) (pricing.Input, error) {
	parsed, err := enums.ParseProfitMode(mode)
	if err != nil {
		return pricing.Input{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid profit mode")
	}
	return pricing.Input{Mode: parsed, Value: value}, nil
}

// QuoteCombo recomputes the full pricing state for an in-flight draft.
func QuoteCombo(svc combosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "combo service unavailable"))
			return
		}

		var payload quoteComboRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := toDraftItems(payload.Items)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		margin, err := toMarginInput(payload.ProfitMode, payload.ProfitValue)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.QuoteDraft(r.Context(), combosvc.Draft{
			Name:   payload.Name,
			Items:  items,
			Margin: margin,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// SaveCombo persists a combo. A zero effective margin is refused with a
// confirmation-required error until the request carries confirm_zero_margin.
func SaveCombo(svc combosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "combo service unavailable"))
			return
		}

		var payload saveComboRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := toDraftItems(payload.Items)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		margin, err := toMarginInput(payload.ProfitMode, payload.ProfitValue)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		draft := combosvc.Draft{
			Name:   payload.Name,
			Items:  items,
			Margin: margin,
		}
		if payload.ID != nil {
			id, err := uuid.Parse(*payload.ID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid combo id"))
				return
			}
			draft.ID = &id
		}

		result, err := svc.SaveCombo(r.Context(), combosvc.SaveComboInput{
			Draft:             draft,
			IsActive:          payload.IsActive,
			ConfirmZeroMargin: payload.ConfirmZeroMargin,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := http.StatusCreated
		if payload.ID != nil {
			status = http.StatusOK
		}
		responses.WriteSuccessStatus(w, status, result)
	}
}

// DisplayCombo returns the storefront projection of a saved combo, optionally
// converted to the currency passed as ?currency=<uuid>.
func DisplayCombo(svc combosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "combo service unavailable"))
			return
		}

		comboID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid combo id"))
			return
		}

		currencyID, err := validators.ParseQueryUUID(r, "currency")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		display, err := svc.DisplayCombo(r.Context(), comboID, currencyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, display)
	}
}
