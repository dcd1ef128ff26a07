package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/tiendahub/storefront-backend/internal/combos"
	"github.com/tiendahub/storefront-backend/internal/currency"
	"github.com/tiendahub/storefront-backend/pkg/db/models"
	"github.com/tiendahub/storefront-backend/pkg/logger"
	"github.com/tiendahub/storefront-backend/pkg/redis"
)

// catalogReader is the storage surface the loader needs.
type catalogReader interface {
	Products(ctx context.Context) ([]models.Product, error)
	Currencies(ctx context.Context) ([]models.Currency, error)
	ExchangeRates(ctx context.Context) ([]models.ExchangeRate, error)
}

// rateCache holds a prebuilt rate table between catalog reads. The cache is an
// optimization only; every miss or decode failure falls back to the database.
type rateCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	RateTableKey(baseCurrencyID string) string
}

// SnapshotLoader assembles the catalog view a pricing computation runs over,
// with the exchange-rate table cached in Redis between requests.
type SnapshotLoader struct {
	repo  catalogReader
	cache rateCache
	ttl   time.Duration
	logg  *logger.Logger
}

// NewSnapshotLoader wires the loader. The cache may be nil, in which case
// every snapshot hits the database for rates.
func NewSnapshotLoader(repo catalogReader, cache rateCache, ttl time.Duration, logg *logger.Logger) (*SnapshotLoader, error) {
	if repo == nil {
		return nil, errors.New("catalog repository is required")
	}
	return &SnapshotLoader{repo: repo, cache: cache, ttl: ttl, logg: logg}, nil
}

// Snapshot loads products and currencies, then attaches the rate table from
// cache or storage.
func (l *SnapshotLoader) Snapshot(ctx context.Context) (*combos.Snapshot, error) {
	products, err := l.repo.Products(ctx)
	if err != nil {
		return nil, err
	}
	currencies, err := l.repo.Currencies(ctx)
	if err != nil {
		return nil, err
	}

	snap := combos.NewSnapshot(products, currencies, nil)

	rates, err := l.rateTable(ctx, snap.BaseCurrencyID.String())
	if err != nil {
		return nil, err
	}
	snap.Rates = rates
	return snap, nil
}

func (l *SnapshotLoader) rateTable(ctx context.Context, baseCurrencyID string) (currency.RateTable, error) {
	if l.cache != nil {
		key := l.cache.RateTableKey(baseCurrencyID)
		if cached, err := l.cache.Get(ctx, key); err == nil {
			var table currency.RateTable
			if err := json.Unmarshal([]byte(cached), &table); err == nil {
				return table, nil
			}
			if l.logg != nil {
				l.logg.Warn(ctx, "discarding undecodable cached rate table")
			}
		} else if !redis.IsNil(err) && l.logg != nil {
			l.logg.Warn(ctx, "rate table cache read failed: "+err.Error())
		}
	}

	rows, err := l.repo.ExchangeRates(ctx)
	if err != nil {
		return nil, err
	}
	table := currency.NewRateTable(rows)

	if l.cache != nil {
		if payload, err := json.Marshal(table); err == nil {
			key := l.cache.RateTableKey(baseCurrencyID)
			if err := l.cache.Set(ctx, key, payload, l.ttl); err != nil && l.logg != nil {
				l.logg.Warn(ctx, "rate table cache write failed: "+err.Error())
			}
		}
	}
	return table, nil
}
