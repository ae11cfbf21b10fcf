package pricing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdmejias/perfumes-app/pkg/db/models"
	"github.com/jdmejias/perfumes-app/pkg/enums"
)

var hundred = decimal.NewFromInt(100)

// Discount is the pricing view of a variant- or product-level discount.
type Discount struct {
	ID       uuid.UUID          `json:"id"`
	Name     string             `json:"name"`
	Kind     enums.DiscountKind `json:"kind"`
	Value    decimal.Decimal    `json:"value"`
	IsActive bool               `json:"isActive"`
	StartAt  *time.Time         `json:"startAt"`
	EndAt    *time.Time         `json:"endAt"`
}

// DiscountFromModel converts a stored discount.
func DiscountFromModel(m models.Discount) Discount {
	return Discount{
		ID:       m.ID,
		Name:     m.Name,
		Kind:     m.Kind,
		Value:    m.Value,
		IsActive: m.IsActive,
		StartAt:  m.StartAt,
		EndAt:    m.EndAt,
	}
}

// DiscountsFromModels keeps the input order, which decides first-match resolution.
func DiscountsFromModels(ms []models.Discount) []Discount {
	out := make([]Discount, 0, len(ms))
	for _, m := range ms {
		out = append(out, DiscountFromModel(m))
	}
	return out
}

// ActiveAt reports whether the discount applies at now. Both window bounds are inclusive.
func (d Discount) ActiveAt(now time.Time) bool {
	if !d.IsActive {
		return false
	}
	if d.StartAt != nil && d.StartAt.After(now) {
		return false
	}
	if d.EndAt != nil && d.EndAt.Before(now) {
		return false
	}
	return true
}

// FindActiveDiscount returns the first discount active at now, or nil. Callers
// control precedence through the order of discounts.
func FindActiveDiscount(discounts []Discount, now time.Time) *Discount {
	for i := range discounts {
		if discounts[i].ActiveAt(now) {
			found := discounts[i]
			return &found
		}
	}
	return nil
}

// ApplyDiscount returns the discounted price in cents. PERCENT values are
// clamped to [0, 100] and the result is rounded half away from zero; FIXED
// values below zero are ignored and the result floors at zero. The result is
// never above priceCents.
func ApplyDiscount(priceCents int, d Discount) int {
	price := decimal.NewFromInt(int64(priceCents))

	var discounted decimal.Decimal
	switch d.Kind {
	case enums.DiscountKindPercent:
		percent := clamp(d.Value, decimal.Zero, hundred)
		discounted = price.Mul(hundred.Sub(percent)).Div(hundred)
	case enums.DiscountKindFixed:
		amount := decimal.Max(d.Value, decimal.Zero)
		discounted = decimal.Max(price.Sub(amount), decimal.Zero)
	default:
		return priceCents
	}
	return int(discounted.Round(0).IntPart())
}

func clamp(v, lo, hi decimal.Decimal) decimal.Decimal {
	return decimal.Min(decimal.Max(v, lo), hi)
}
