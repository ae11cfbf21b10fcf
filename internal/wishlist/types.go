package wishlist

import (
	"github.com/google/uuid"

	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// ToggleResult reports the state after a toggle.
type ToggleResult struct {
	Added bool `json:"added"`
}

// ToggleRequest is the body of POST /wishlist.
type ToggleRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
}

// WishlistProduct is the priced summary shown on the wishlist page.
type WishlistProduct struct {
	ID                     uuid.UUID    `json:"id"`
	Name                   string       `json:"name"`
	Slug                   string       `json:"slug"`
	Gender                 enums.Gender `json:"gender"`
	BrandName              string       `json:"brandName"`
	ImageURL               *string      `json:"imageUrl"`
	MinEffectivePriceCents *int         `json:"minEffectivePriceCents"`
	HasActiveDiscount      bool         `json:"hasActiveDiscount"`
}
