package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/tiendahub/storefront-backend/pkg/db/models"
)

// Repository is the read-only gorm adapter over the catalog tables. Products,
// currencies and rates are owned by the inventory side; pricing only reads.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds the catalog reader over a live gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Products returns every product row. Inactive products are included; the
// pricing layer decides what an inactive reference means.
func (r *Repository) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Currencies returns every catalog currency.
func (r *Repository) Currencies(ctx context.Context) ([]models.Currency, error) {
	var currencies []models.Currency
	if err := r.db.WithContext(ctx).Find(&currencies).Error; err != nil {
		return nil, err
	}
	return currencies, nil
}

// ExchangeRates returns every stored rate row. The table is sparse; callers
// must not assume both directions of a pair exist.
func (r *Repository) ExchangeRates(ctx context.Context) ([]models.ExchangeRate, error) {
	var rates []models.ExchangeRate
	if err := r.db.WithContext(ctx).Find(&rates).Error; err != nil {
		return nil, err
	}
	return rates, nil
}
