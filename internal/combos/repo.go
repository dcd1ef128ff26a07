package combos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tiendahub/storefront-backend/pkg/db"
	"github.com/tiendahub/storefront-backend/pkg/db/models"
	pkgerrors "github.com/tiendahub/storefront-backend/pkg/errors"
)

// Repository is the gorm-backed ComboStore.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds the combo repository over a live gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Save upserts the combo and replaces its item rows wholesale inside one
// transaction, so a half-written item list can never be observed. IDs are
// assigned client-side; sqlite in tests has no gen_random_uuid().
func (r *Repository) Save(ctx context.Context, combo *models.Combo) (*models.Combo, error) {
	if combo.ID == uuid.Nil {
		combo.ID = uuid.New()
	}

	items := combo.Items
	combo.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(combo).Error; err != nil {
			return err
		}
		if err := tx.Where("combo_id = ?", combo.ID).Delete(&models.ComboItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].ID = uuid.New()
			items[i].ComboID = combo.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "combo contains duplicate products")
		}
		return nil, err
	}

	combo.Items = items
	return combo, nil
}

// FindByID loads a combo with its items in stored position order. Returns
// gorm.ErrRecordNotFound when the combo does not exist.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Combo, error) {
	var combo models.Combo
	err := r.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("position ASC")
		}).
		First(&combo, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &combo, nil
}
