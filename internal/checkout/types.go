package checkout

import (
	"time"

	"github.com/google/uuid"
)

// LineInput is one cart line as sent by the client. Prices are never trusted
// from the client; only the variant and quantity are read.
type LineInput struct {
	VariantID uuid.UUID `json:"variantId" validate:"required"`
	Quantity  int       `json:"quantity" validate:"min=1"`
}

type QuoteRequest struct {
	Items      []LineInput `json:"items" validate:"required,min=1,dive"`
	CouponCode string      `json:"couponCode,omitempty" validate:"max=64"`
}

// Customer holds the contact fields collected at checkout.
type Customer struct {
	Name    string `json:"name" validate:"required,max=120"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone,omitempty" validate:"max=40"`
	Address string `json:"address" validate:"required,max=240"`
	City    string `json:"city" validate:"required,max=120"`
	Notes   string `json:"notes,omitempty" validate:"max=500"`
}

type ConfirmRequest struct {
	Customer   Customer    `json:"customer" validate:"required"`
	Items      []LineInput `json:"items" validate:"required,min=1,dive"`
	CouponCode string      `json:"couponCode,omitempty" validate:"max=64"`
}

// CartItem is a re-priced cart line. PriceCents is the effective unit price.
type CartItem struct {
	VariantID      uuid.UUID `json:"variantId"`
	ProductName    string    `json:"productName"`
	VariantLabel   string    `json:"variantLabel"`
	SKU            string    `json:"sku"`
	ImageURL       *string   `json:"imageUrl"`
	PriceCents     int       `json:"priceCents"`
	Quantity       int       `json:"quantity"`
	LineTotalCents int       `json:"lineTotalCents"`
}

type Quote struct {
	Items               []CartItem `json:"items"`
	SubtotalCents       int        `json:"subtotalCents"`
	CouponCode          *string    `json:"couponCode"`
	CouponDiscountCents int        `json:"couponDiscountCents"`
	ShippingCents       int        `json:"shippingCents"`
	TotalCents          int        `json:"totalCents"`
	// FreeShippingRemainingCents is how much more the shopper must spend for free shipping.
	FreeShippingRemainingCents int `json:"freeShippingRemainingCents"`
}

// Confirmation is the receipt of a simulated order. Nothing is stored.
type Confirmation struct {
	Reference   string    `json:"reference"`
	ConfirmedAt time.Time `json:"confirmedAt"`
	Customer    Customer  `json:"customer"`
	Quote       Quote     `json:"quote"`
}
