package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tiendahub/storefront-backend/pkg/db/models"
)

type stubReader struct {
	products   []models.Product
	currencies []models.Currency
	rates      []models.ExchangeRate
	rateCalls  int
	ratesErr   error
}

func (s *stubReader) Products(ctx context.Context) ([]models.Product, error) {
	return s.products, nil
}

func (s *stubReader) Currencies(ctx context.Context) ([]models.Currency, error) {
	return s.currencies, nil
}

func (s *stubReader) ExchangeRates(ctx context.Context) ([]models.ExchangeRate, error) {
	s.rateCalls++
	return s.rates, s.ratesErr
}

type fakeCache struct {
	values map[string]string
	misses error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string]string{}, misses: errors.New("redis: nil")}
}

func (f *fakeCache) Get(ctx context.Context, key string) (string, error) {
	if value, ok := f.values[key]; ok {
		return value, nil
	}
	return "", f.misses
}

func (f *fakeCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	switch typed := value.(type) {
	case []byte:
		f.values[key] = string(typed)
	case string:
		f.values[key] = typed
	}
	return nil
}

func (f *fakeCache) RateTableKey(baseCurrencyID string) string {
	return "sf:rate_table:" + baseCurrencyID
}

func newStubCatalog() *stubReader {
	usd := uuid.New()
	eur := uuid.New()
	return &stubReader{
		products: []models.Product{
			{ID: uuid.New(), SKU: "MUG-001", Title: "Mug", BasePrice: decimal.NewFromInt(10), BaseCurrencyID: usd, Stock: 5},
		},
		currencies: []models.Currency{
			{ID: usd, Code: "USD", Symbol: "$", IsBase: true},
			{ID: eur, Code: "EUR", Symbol: "€"},
		},
		rates: []models.ExchangeRate{
			{FromCurrencyID: eur, ToCurrencyID: usd, Rate: decimal.RequireFromString("1.10")},
		},
	}
}

func TestSnapshotLoader_AssemblesCatalogView(t *testing.T) {
	t.Parallel()

	reader := newStubCatalog()
	loader, err := NewSnapshotLoader(reader, nil, time.Minute, nil)
	if err != nil {
		t.Fatalf("NewSnapshotLoader failed: %v", err)
	}

	snap, err := loader.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(snap.Products) != 1 || len(snap.Currencies) != 2 {
		t.Fatalf("unexpected snapshot contents: %+v", snap)
	}
	if snap.BaseCurrencyID == uuid.Nil {
		t.Fatal("expected base currency to be resolved")
	}
	if len(snap.Rates) != 1 {
		t.Fatalf("expected 1 rate, got %d", len(snap.Rates))
	}
}

func TestSnapshotLoader_CachesRateTable(t *testing.T) {
	t.Parallel()

	reader := newStubCatalog()
	cache := newFakeCache()
	loader, err := NewSnapshotLoader(reader, cache, time.Minute, nil)
	if err != nil {
		t.Fatalf("NewSnapshotLoader failed: %v", err)
	}

	ctx := context.Background()
	if _, err := loader.Snapshot(ctx); err != nil {
		t.Fatalf("first snapshot failed: %v", err)
	}
	if reader.rateCalls != 1 {
		t.Fatalf("expected 1 rate read on cold cache, got %d", reader.rateCalls)
	}
	if len(cache.values) != 1 {
		t.Fatalf("expected cache to be populated, got %v", cache.values)
	}

	snap, err := loader.Snapshot(ctx)
	if err != nil {
		t.Fatalf("second snapshot failed: %v", err)
	}
	if reader.rateCalls != 1 {
		t.Fatalf("expected cached rates to skip storage, got %d reads", reader.rateCalls)
	}
	if len(snap.Rates) != 1 {
		t.Fatalf("expected cached table with 1 rate, got %d", len(snap.Rates))
	}
}

func TestSnapshotLoader_BadCachePayloadFallsBack(t *testing.T) {
	t.Parallel()

	reader := newStubCatalog()
	cache := newFakeCache()
	loader, err := NewSnapshotLoader(reader, cache, time.Minute, nil)
	if err != nil {
		t.Fatalf("NewSnapshotLoader failed: %v", err)
	}

	// Poison the cache entry for the base currency.
	base := reader.currencies[0].ID.String()
	cache.values[cache.RateTableKey(base)] = "{not json"

	snap, err := loader.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reader.rateCalls != 1 {
		t.Fatalf("expected fallback to storage, got %d reads", reader.rateCalls)
	}
	if len(snap.Rates) != 1 {
		t.Fatalf("expected rebuilt table, got %v", snap.Rates)
	}
}
