package models

import (
	"time"

	"github.com/google/uuid"
)

// Currency represents a catalog currency. Exactly one row carries is_base=true.
type Currency struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Code      string    `gorm:"column:code;not null;uniqueIndex"`
	Symbol    string    `gorm:"column:symbol;not null"`
	IsBase    bool      `gorm:"column:is_base;not null;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
