package combos

import (
	"github.com/google/uuid"

	"github.com/tiendahub/storefront-backend/internal/pricing"
)

// Draft is the transient authoring state of a combo. It exists only while the
// combo is being edited; saving collapses it to the persisted shape, where the
// percentage margin is the sole surviving representation.
type Draft struct {
	ID     *uuid.UUID
	Name   string
	Items  []Item
	Margin pricing.Input
}
