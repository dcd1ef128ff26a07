package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tiendahub/storefront-backend/pkg/db/models"
)

func newCatalogTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, conn.Exec(`
		CREATE TABLE currencies (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL UNIQUE,
			symbol TEXT NOT NULL,
			is_base BOOLEAN NOT NULL DEFAULT FALSE,
			created_at DATETIME,
			updated_at DATETIME
		)`).Error)
	require.NoError(t, conn.Exec(`
		CREATE TABLE products (
			id TEXT PRIMARY KEY,
			sku TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			categories TEXT,
			base_price NUMERIC NOT NULL,
			base_currency_id TEXT NOT NULL,
			final_price NUMERIC,
			stock INTEGER NOT NULL DEFAULT 0,
			min_stock_alert INTEGER NOT NULL DEFAULT 10,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at DATETIME,
			updated_at DATETIME
		)`).Error)
	require.NoError(t, conn.Exec(`
		CREATE TABLE exchange_rates (
			id TEXT PRIMARY KEY,
			from_currency_id TEXT NOT NULL,
			to_currency_id TEXT NOT NULL,
			rate NUMERIC NOT NULL,
			created_at DATETIME,
			updated_at DATETIME,
			UNIQUE (from_currency_id, to_currency_id)
		)`).Error)
	return conn
}

func TestRepositoryReads(t *testing.T) {
	conn := newCatalogTestDB(t)
	repo := NewRepository(conn)
	ctx := context.Background()

	usd := models.Currency{ID: uuid.New(), Code: "USD", Symbol: "$", IsBase: true}
	eur := models.Currency{ID: uuid.New(), Code: "EUR", Symbol: "€"}
	require.NoError(t, conn.Create(&usd).Error)
	require.NoError(t, conn.Create(&eur).Error)

	price := decimal.NewFromInt(10)
	require.NoError(t, conn.Create(&models.Product{
		ID:             uuid.New(),
		SKU:            "MUG-001",
		Title:          "Mug",
		BasePrice:      price,
		BaseCurrencyID: usd.ID,
		Stock:          5,
	}).Error)

	require.NoError(t, conn.Create(&models.ExchangeRate{
		ID:             uuid.New(),
		FromCurrencyID: eur.ID,
		ToCurrencyID:   usd.ID,
		Rate:           decimal.RequireFromString("1.10"),
	}).Error)

	currencies, err := repo.Currencies(ctx)
	require.NoError(t, err)
	assert.Len(t, currencies, 2)

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "MUG-001", products[0].SKU)
	assert.True(t, products[0].BasePrice.Equal(price))

	rates, err := repo.ExchangeRates(ctx)
	require.NoError(t, err)
	require.Len(t, rates, 1)
	assert.Equal(t, eur.ID, rates[0].FromCurrencyID)
}

func TestRepositoryReads_EmptyCatalog(t *testing.T) {
	repo := NewRepository(newCatalogTestDB(t))
	ctx := context.Background()

	products, err := repo.Products(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	rates, err := repo.ExchangeRates(ctx)
	require.NoError(t, err)
	assert.Empty(t, rates)
}
