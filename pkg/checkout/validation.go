package checkout

import (
	"fmt"

	"github.com/google/uuid"

	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

// StockValidationInput describes the data required to verify a cart line against stock.
type StockValidationInput struct {
	VariantID   uuid.UUID
	ProductName string
	SKU         string
	Stock       int
	Quantity    int
}

// StockViolationDetail exposes the data returned to callers when a validation fails.
type StockViolationDetail struct {
	VariantID    uuid.UUID `json:"variantId"`
	ProductName  string    `json:"productName,omitempty"`
	SKU          string    `json:"sku,omitempty"`
	Available    int       `json:"available"`
	RequestedQty int       `json:"requestedQty"`
}

// ValidateStock ensures no line asks for more units than the variant holds.
// It only reads stock; nothing is reserved.
func ValidateStock(items []StockValidationInput) error {
	var violations []StockViolationDetail
	for _, item := range items {
		if item.Quantity <= item.Stock {
			continue
		}
		violations = append(violations, StockViolationDetail{
			VariantID:    item.VariantID,
			ProductName:  item.ProductName,
			SKU:          item.SKU,
			Available:    item.Stock,
			RequestedQty: item.Quantity,
		})
	}
	if len(violations) == 0 {
		return nil
	}
	return pkgerrors.New(pkgerrors.CodeStateConflict, fmt.Sprintf("insufficient stock for %d item(s)", len(violations))).WithDetails(map[string]any{
		"violations": violations,
	})
}
