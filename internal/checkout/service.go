package checkout

import (
	"context"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jdmejias/perfumes-app/internal/pricing"
	stockcheck "github.com/jdmejias/perfumes-app/pkg/checkout"
	"github.com/jdmejias/perfumes-app/pkg/clock"
	"github.com/jdmejias/perfumes-app/pkg/config"
	"github.com/jdmejias/perfumes-app/pkg/db/models"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
	"github.com/jdmejias/perfumes-app/pkg/logger"
)

const referencePrefix = "LUX-"

type variantLoader interface {
	FindActiveVariantsByIDs(ctx context.Context, ids []uuid.UUID, now time.Time) ([]models.ProductVariant, error)
}

// ServiceParams groups dependencies for the checkout service.
type ServiceParams struct {
	Variants variantLoader
	Clock    clock.Clock
	Config   config.CheckoutConfig
	Logger   *logger.Logger
}

// Service prices carts server-side and simulates order confirmation.
type Service interface {
	Quote(ctx context.Context, req QuoteRequest) (*Quote, error)
	Confirm(ctx context.Context, req ConfirmRequest) (*Confirmation, error)
}

type service struct {
	variants variantLoader
	clock    clock.Clock
	cfg      config.CheckoutConfig
	logg     *logger.Logger
	validate *validator.Validate
}

func NewService(params ServiceParams) (Service, error) {
	if params.Variants == nil {
		return nil, fmt.Errorf("variant loader required")
	}
	clk := params.Clock
	if clk == nil {
		clk = clock.New()
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})
	return &service{
		variants: params.Variants,
		clock:    clk,
		cfg:      params.Config,
		logg:     params.Logger,
		validate: v,
	}, nil
}

func (s *service) Quote(ctx context.Context, req QuoteRequest) (*Quote, error) {
	return s.quote(ctx, req.Items, req.CouponCode, s.clock.Now())
}

// Confirm validates the customer, re-prices the cart and returns a reference.
func (s *service) Confirm(ctx context.Context, req ConfirmRequest) (*Confirmation, error) {
	customer := normalizeCustomer(req.Customer)
	if err := s.validate.Struct(customer); err != nil {
		return nil, customerValidationError(err)
	}

	now := s.clock.Now()
	quote, err := s.quote(ctx, req.Items, req.CouponCode, now)
	if err != nil {
		return nil, err
	}

	confirmation := &Confirmation{
		Reference:   newReference(),
		ConfirmedAt: now,
		Customer:    customer,
		Quote:       *quote,
	}
	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"reference":   confirmation.Reference,
			"items":       len(quote.Items),
			"total_cents": quote.TotalCents,
		})
		s.logg.Info(logCtx, "checkout.confirmed")
	}
	return confirmation, nil
}

func (s *service) quote(ctx context.Context, lines []LineInput, coupon string, now time.Time) (*Quote, error) {
	merged, err := mergeLines(lines)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(merged))
	for _, line := range merged {
		ids = append(ids, line.VariantID)
	}
	variants, err := s.variants.FindActiveVariantsByIDs(ctx, ids, now)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load variants")
	}
	byID := make(map[uuid.UUID]models.ProductVariant, len(variants))
	for _, v := range variants {
		byID[v.ID] = v
	}

	var missing []uuid.UUID
	stock := make([]stockcheck.StockValidationInput, 0, len(merged))
	items := make([]CartItem, 0, len(merged))
	for _, line := range merged {
		v, ok := byID[line.VariantID]
		if !ok || v.Product == nil {
			missing = append(missing, line.VariantID)
			continue
		}
		stock = append(stock, stockcheck.StockValidationInput{
			VariantID:   v.ID,
			ProductName: v.Product.Name,
			SKU:         v.SKU,
			Stock:       v.Stock,
			Quantity:    line.Quantity,
		})
		items = append(items, priceLine(v, line.Quantity, now))
	}
	if len(missing) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "variant not found").
			WithDetails(map[string]any{"variantIds": missing})
	}
	if err := stockcheck.ValidateStock(stock); err != nil {
		return nil, err
	}

	quote := &Quote{Items: items}
	if err := computeTotals(s.cfg, quote, coupon); err != nil {
		return nil, err
	}
	return quote, nil
}

func priceLine(v models.ProductVariant, quantity int, now time.Time) CartItem {
	eff := pricing.GetEffectivePrice(
		v.PriceCents,
		pricing.DiscountsFromModels(v.Discounts),
		pricing.DiscountsFromModels(v.Product.Discounts),
		now,
	)
	item := CartItem{
		VariantID:      v.ID,
		ProductName:    v.Product.Name,
		VariantLabel:   VariantLabel(v),
		SKU:            v.SKU,
		PriceCents:     eff.EffectivePriceCents,
		Quantity:       quantity,
		LineTotalCents: eff.EffectivePriceCents * quantity,
	}
	if len(v.Product.Images) > 0 {
		url := v.Product.Images[0].URL
		item.ImageURL = &url
	}
	return item
}

// VariantLabel renders the size and type shown on cart lines, e.g. "10ml – Decant".
func VariantLabel(v models.ProductVariant) string {
	return fmt.Sprintf("%dml – %s", v.SizeML, v.Type.Label())
}

// mergeLines folds repeated variants into one line, keeping first-seen order.
func mergeLines(lines []LineInput) ([]LineInput, error) {
	if len(lines) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	index := make(map[uuid.UUID]int, len(lines))
	out := make([]LineInput, 0, len(lines))
	for _, line := range lines {
		if line.VariantID == uuid.Nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant id is required")
		}
		if line.Quantity < 1 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1").
				WithDetails(map[string]any{"variantId": line.VariantID})
		}
		if i, ok := index[line.VariantID]; ok {
			out[i].Quantity += line.Quantity
			continue
		}
		index[line.VariantID] = len(out)
		out = append(out, line)
	}
	return out, nil
}

func normalizeCustomer(c Customer) Customer {
	return Customer{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.ToLower(strings.TrimSpace(c.Email)),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
		City:    strings.TrimSpace(c.City),
		Notes:   strings.TrimSpace(c.Notes),
	}
}

func customerValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid customer")
	}
	details := map[string]string{}
	for _, fe := range errs {
		details["customer."+fe.Field()] = fe.Tag()
	}
	return pkgerrors.New(pkgerrors.CodeValidation, "invalid customer").WithDetails(details)
}

func newReference() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return referencePrefix + strings.ToUpper(id[:8])
}
