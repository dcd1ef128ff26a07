package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Combo is the persisted bundle. Only the percentage margin survives storage;
// amount and sell price are recomputed from it on every read. A nil margin
// means the catalog-wide default applies.
type Combo struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name         string           `gorm:"column:name;not null"`
	ProfitMargin *decimal.Decimal `gorm:"column:profit_margin;type:numeric(8,4)"`
	IsActive     bool             `gorm:"column:is_active;not null;default:true"`
	Items        []ComboItem      `gorm:"foreignKey:ComboID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// ComboItem is one product line inside a combo. Position preserves author order.
type ComboItem struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ComboID   uuid.UUID `gorm:"column:combo_id;type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"column:product_id;type:uuid;not null"`
	Quantity  int       `gorm:"column:quantity;not null;default:1"`
	Position  int       `gorm:"column:position;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}
