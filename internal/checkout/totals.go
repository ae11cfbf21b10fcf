package checkout

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jdmejias/perfumes-app/pkg/config"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

// couponDiscount resolves a coupon code against the configured demo coupon.
// An empty code yields no discount; any other unknown code is rejected.
func couponDiscount(cfg config.CheckoutConfig, code string, subtotalCents int) (*string, int, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, 0, nil
	}
	if cfg.CouponCode == "" || !strings.EqualFold(code, cfg.CouponCode) {
		return nil, 0, pkgerrors.New(pkgerrors.CodeValidation, "invalid coupon code").
			WithDetails(map[string]any{"couponCode": code})
	}
	off := decimal.NewFromInt(int64(subtotalCents)).
		Mul(decimal.NewFromInt(int64(cfg.CouponPercent))).
		Div(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	applied := strings.ToUpper(cfg.CouponCode)
	return &applied, int(off), nil
}

// computeTotals fills the money fields of q from its items.
func computeTotals(cfg config.CheckoutConfig, q *Quote, code string) error {
	subtotal := 0
	for _, item := range q.Items {
		subtotal += item.LineTotalCents
	}

	applied, off, err := couponDiscount(cfg, code, subtotal)
	if err != nil {
		return err
	}

	discounted := subtotal - off
	shipping := cfg.ShippingCents
	remaining := cfg.FreeShippingThresholdCents - discounted
	if discounted >= cfg.FreeShippingThresholdCents {
		shipping = 0
		remaining = 0
	}

	q.SubtotalCents = subtotal
	q.CouponCode = applied
	q.CouponDiscountCents = off
	q.ShippingCents = shipping
	q.TotalCents = discounted + shipping
	q.FreeShippingRemainingCents = remaining
	return nil
}
