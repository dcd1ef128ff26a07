package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion factor for an ordered currency pair.
// The table is sparse: a pair may exist in one direction only.
type ExchangeRate struct {
	ID             uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	FromCurrencyID uuid.UUID       `gorm:"column:from_currency_id;type:uuid;not null;uniqueIndex:idx_exchange_rates_pair"`
	ToCurrencyID   uuid.UUID       `gorm:"column:to_currency_id;type:uuid;not null;uniqueIndex:idx_exchange_rates_pair"`
	Rate           decimal.Decimal `gorm:"column:rate;type:numeric(18,8);not null"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
