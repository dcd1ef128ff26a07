package combos

import (
	"github.com/google/uuid"

	"github.com/tiendahub/storefront-backend/pkg/enums"
)

// StockIssue records why one combo item blocks the combo from sale.
type StockIssue struct {
	ProductID   uuid.UUID            `json:"product_id"`
	ProductName string               `json:"product_name"`
	Kind        enums.StockIssueKind `json:"kind"`
	Required    int                  `json:"required"`
	Available   int                  `json:"available"`
}

// CheckStockIssues evaluates per-item stock sufficiency in combo item order.
// Items whose product no longer exists are skipped; the stale reference is the
// aggregator's concern, not a stock fact.
func CheckStockIssues(items []Item, snap *Snapshot) []StockIssue {
	var issues []StockIssue
	for _, item := range items {
		product, ok := snap.Products[item.ProductID]
		if !ok {
			continue
		}

		switch {
		case product.Stock == 0:
			issues = append(issues, StockIssue{
				ProductID:   product.ID,
				ProductName: product.Title,
				Kind:        enums.StockIssueKindOutOfStock,
				Required:    item.Quantity,
				Available:   0,
			})
		case product.Stock < item.Quantity:
			issues = append(issues, StockIssue{
				ProductID:   product.ID,
				ProductName: product.Title,
				Kind:        enums.StockIssueKindInsufficient,
				Required:    item.Quantity,
				Available:   product.Stock,
			})
		}
	}
	return issues
}

// IsEffectivelyActive reports whether a combo can be displayed and purchased:
// it must be administratively active and free of stock issues. Recomputed on
// every read, never stored.
func IsEffectivelyActive(isActive bool, issues []StockIssue) bool {
	return isActive && len(issues) == 0
}
