package pricing

import "time"

// EffectivePrice is derived on every read and never stored.
type EffectivePrice struct {
	EffectivePriceCents int       `json:"effectivePriceCents"`
	DiscountApplied     *Discount `json:"discountApplied"`
}

// GetEffectivePrice resolves the price of one variant at now. An active
// variant discount always wins over product discounts, even when the product
// discount would be cheaper; product discounts apply only when no variant
// discount is active.
func GetEffectivePrice(priceCents int, variantDiscounts, productDiscounts []Discount, now time.Time) EffectivePrice {
	if d := FindActiveDiscount(variantDiscounts, now); d != nil {
		return EffectivePrice{EffectivePriceCents: ApplyDiscount(priceCents, *d), DiscountApplied: d}
	}
	if d := FindActiveDiscount(productDiscounts, now); d != nil {
		return EffectivePrice{EffectivePriceCents: ApplyDiscount(priceCents, *d), DiscountApplied: d}
	}
	return EffectivePrice{EffectivePriceCents: priceCents}
}
