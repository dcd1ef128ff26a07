package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is the inventory-owned listing the pricing engine reads. The engine
// never mutates products.
type Product struct {
	ID             uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SKU            string           `gorm:"column:sku;not null;uniqueIndex"`
	Title          string           `gorm:"column:title;not null"`
	Categories     pq.StringArray   `gorm:"column:categories;type:text[];default:ARRAY[]::text[]"`
	BasePrice      decimal.Decimal  `gorm:"column:base_price;type:numeric(12,2);not null"`
	BaseCurrencyID uuid.UUID        `gorm:"column:base_currency_id;type:uuid;not null"`
	FinalPrice     *decimal.Decimal `gorm:"column:final_price;type:numeric(12,2)"`
	Stock          int              `gorm:"column:stock;not null;default:0"`
	MinStockAlert  int              `gorm:"column:min_stock_alert;not null;default:10"`
	IsActive       bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}
