package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	combosvc "github.com/tiendahub/storefront-backend/internal/combos"
	"github.com/tiendahub/storefront-backend/pkg/config"
	"github.com/tiendahub/storefront-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

type stubComboService struct{}

func (stubComboService) QuoteDraft(ctx context.Context, draft combosvc.Draft) (*combosvc.DraftQuote, error) {
	return &combosvc.DraftQuote{}, nil
}

func (stubComboService) SaveCombo(ctx context.Context, input combosvc.SaveComboInput) (*combosvc.SaveComboResult, error) {
	return &combosvc.SaveComboResult{}, nil
}

func (stubComboService) DisplayCombo(ctx context.Context, comboID, displayCurrencyID uuid.UUID) (*combosvc.ComboDisplay, error) {
	return &combosvc.ComboDisplay{ComboID: comboID}, nil
}

func newTestRouter() http.Handler {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	return NewRouter(cfg, logg, stubPinger{}, stubPinger{}, stubComboService{})
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter()

	cases := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"health live", http.MethodGet, "/health/live", http.StatusOK},
		{"health ready", http.MethodGet, "/health/ready", http.StatusOK},
		{"metrics", http.MethodGet, "/metrics", http.StatusOK},
		{"public ping", http.MethodGet, "/api/public/ping", http.StatusOK},
		{"display combo", http.MethodGet, "/api/v1/combos/" + uuid.NewString() + "/display", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			if rec.Code != tc.status {
				t.Fatalf("expected %d for %s %s, got %d", tc.status, tc.method, tc.path, rec.Code)
			}
		})
	}
}

func TestRouterSetsRequestID(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected X-Request-Id header to be set")
	}
}
