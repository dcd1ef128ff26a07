package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	combosvc "github.com/tiendahub/storefront-backend/internal/combos"
	pkgerrors "github.com/tiendahub/storefront-backend/pkg/errors"
	"github.com/tiendahub/storefront-backend/pkg/logger"
)

type stubComboService struct {
	quote      *combosvc.DraftQuote
	quoteErr   error
	save       *combosvc.SaveComboResult
	saveErr    error
	display    *combosvc.ComboDisplay
	displayErr error

	lastSave    combosvc.SaveComboInput
	lastDisplay uuid.UUID
	lastCcy     uuid.UUID
}

func (s *stubComboService) QuoteDraft(ctx context.Context, draft combosvc.Draft) (*combosvc.DraftQuote, error) {
	return s.quote, s.quoteErr
}

func (s *stubComboService) SaveCombo(ctx context.Context, input combosvc.SaveComboInput) (*combosvc.SaveComboResult, error) {
	s.lastSave = input
	return s.save, s.saveErr
}

func (s *stubComboService) DisplayCombo(ctx context.Context, comboID, displayCurrencyID uuid.UUID) (*combosvc.ComboDisplay, error) {
	s.lastDisplay = comboID
	s.lastCcy = displayCurrencyID
	return s.display, s.displayErr
}

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: io.Discard})
}

func TestQuoteCombo(t *testing.T) {
	logg := testLogger()
	productID := uuid.New()

	t.Run("success", func(t *testing.T) {
		base := decimal.NewFromInt(100)
		stub := &stubComboService{quote: &combosvc.DraftQuote{BasePrice: base, ProfitMode: "percentage"}}
		body := `{"items":[{"product_id":"` + productID.String() + `","quantity":2}],"profit_mode":"percentage","profit_value":"20"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos/quote", strings.NewReader(body))
		rec := httptest.NewRecorder()
		QuoteCombo(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("rejects unknown profit mode", func(t *testing.T) {
		stub := &stubComboService{}
		body := `{"items":[{"product_id":"` + productID.String() + `","quantity":1}],"profit_mode":"markdown","profit_value":"20"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos/quote", strings.NewReader(body))
		rec := httptest.NewRecorder()
		QuoteCombo(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("rejects empty items", func(t *testing.T) {
		stub := &stubComboService{}
		body := `{"items":[],"profit_mode":"percentage","profit_value":"20"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos/quote", strings.NewReader(body))
		rec := httptest.NewRecorder()
		QuoteCombo(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("nil service", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos/quote", strings.NewReader("{}"))
		rec := httptest.NewRecorder()
		QuoteCombo(nil, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestSaveCombo(t *testing.T) {
	logg := testLogger()
	productID := uuid.New()

	t.Run("created", func(t *testing.T) {
		stub := &stubComboService{save: &combosvc.SaveComboResult{ComboID: uuid.New(), Name: "Duo"}}
		body := `{"name":"Duo","items":[{"product_id":"` + productID.String() + `","quantity":1}],"profit_mode":"percentage","profit_value":"10","is_active":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos", strings.NewReader(body))
		rec := httptest.NewRecorder()
		SaveCombo(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastSave.ConfirmZeroMargin {
			t.Fatal("confirm flag must default to false")
		}
	})

	t.Run("update returns 200", func(t *testing.T) {
		comboID := uuid.New()
		stub := &stubComboService{save: &combosvc.SaveComboResult{ComboID: comboID, Name: "Duo"}}
		body := `{"id":"` + comboID.String() + `","name":"Duo","items":[{"product_id":"` + productID.String() + `","quantity":1}],"profit_mode":"percentage","profit_value":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos", strings.NewReader(body))
		rec := httptest.NewRecorder()
		SaveCombo(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.lastSave.Draft.ID == nil || *stub.lastSave.Draft.ID != comboID {
			t.Fatalf("expected draft id to be forwarded, got %v", stub.lastSave.Draft.ID)
		}
	})

	t.Run("zero margin without confirmation maps to 428", func(t *testing.T) {
		stub := &stubComboService{
			saveErr: pkgerrors.New(pkgerrors.CodeConfirmationRequired, "zero profit margin requires confirmation").
				WithDetails(map[string]string{"confirm_flag": "confirm_zero_margin"}),
		}
		body := `{"name":"At cost","items":[{"product_id":"` + productID.String() + `","quantity":1}],"profit_mode":"percentage","profit_value":"0"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos", strings.NewReader(body))
		rec := httptest.NewRecorder()
		SaveCombo(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusPreconditionRequired {
			t.Fatalf("expected 428, got %d", rec.Code)
		}

		var envelope struct {
			Error struct {
				Code    string            `json:"code"`
				Details map[string]string `json:"details"`
			} `json:"error"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
			t.Fatalf("failed to decode body: %v", err)
		}
		if envelope.Error.Code != string(pkgerrors.CodeConfirmationRequired) {
			t.Fatalf("unexpected error code %s", envelope.Error.Code)
		}
		if envelope.Error.Details["confirm_flag"] != "confirm_zero_margin" {
			t.Fatalf("expected confirm flag detail, got %v", envelope.Error.Details)
		}
	})

	t.Run("missing name", func(t *testing.T) {
		stub := &stubComboService{}
		body := `{"items":[{"product_id":"` + productID.String() + `","quantity":1}],"profit_mode":"percentage","profit_value":"10"}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/combos", strings.NewReader(body))
		rec := httptest.NewRecorder()
		SaveCombo(stub, logg).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestDisplayCombo(t *testing.T) {
	logg := testLogger()
	comboID := uuid.New()
	currencyID := uuid.New()

	makeRequest := func(stub *stubComboService, id, query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/combos/"+id+"/display"+query, nil)
		routeCtx := chi.NewRouteContext()
		routeCtx.URLParams.Add("id", id)
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
		rec := httptest.NewRecorder()
		DisplayCombo(stub, logg).ServeHTTP(rec, req)
		return rec
	}

	t.Run("success with currency", func(t *testing.T) {
		stub := &stubComboService{display: &combosvc.ComboDisplay{ComboID: comboID, Name: "Duo", CurrencyCode: "EUR"}}
		rec := makeRequest(stub, comboID.String(), "?currency="+currencyID.String())
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if stub.lastDisplay != comboID || stub.lastCcy != currencyID {
			t.Fatalf("expected ids to be forwarded, got %s / %s", stub.lastDisplay, stub.lastCcy)
		}
	})

	t.Run("defaults currency to nil", func(t *testing.T) {
		stub := &stubComboService{display: &combosvc.ComboDisplay{ComboID: comboID}}
		rec := makeRequest(stub, comboID.String(), "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if stub.lastCcy != uuid.Nil {
			t.Fatalf("expected nil currency, got %s", stub.lastCcy)
		}
	})

	t.Run("invalid combo id", func(t *testing.T) {
		rec := makeRequest(&stubComboService{}, "not-a-uuid", "")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		stub := &stubComboService{displayErr: pkgerrors.New(pkgerrors.CodeNotFound, "combo not found")}
		rec := makeRequest(stub, comboID.String(), "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("invalid currency query", func(t *testing.T) {
		rec := makeRequest(&stubComboService{}, comboID.String(), "?currency=abc")
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
