package combos

import (
	"github.com/google/uuid"

	"github.com/tiendahub/storefront-backend/internal/currency"
	"github.com/tiendahub/storefront-backend/pkg/db/models"
)

// Snapshot is the consistent catalog view a single pricing computation runs
// over. Callers assemble it once per request; the engine never reaches out to
// storage mid-computation.
type Snapshot struct {
	Products       map[uuid.UUID]models.Product
	Currencies     map[uuid.UUID]models.Currency
	Rates          currency.RateTable
	BaseCurrencyID uuid.UUID
}

// NewSnapshot indexes catalog rows for lookup. The base currency is the single
// currency flagged is_base; uuid.Nil when the catalog carries none.
func NewSnapshot(products []models.Product, currencies []models.Currency, rates []models.ExchangeRate) *Snapshot {
	snap := &Snapshot{
		Products:   make(map[uuid.UUID]models.Product, len(products)),
		Currencies: make(map[uuid.UUID]models.Currency, len(currencies)),
		Rates:      currency.NewRateTable(rates),
	}
	for _, p := range products {
		snap.Products[p.ID] = p
	}
	for _, c := range currencies {
		snap.Currencies[c.ID] = c
		if c.IsBase {
			snap.BaseCurrencyID = c.ID
		}
	}
	return snap
}

// Item is one product line in a combo or draft.
type Item struct {
	ProductID uuid.UUID
	Quantity  int
}
