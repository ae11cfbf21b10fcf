package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/jdmejias/perfumes-app/internal/catalog"
	"github.com/jdmejias/perfumes-app/pkg/clock"
	"github.com/jdmejias/perfumes-app/pkg/config"
	"github.com/jdmejias/perfumes-app/pkg/db/dbtest"
	"github.com/jdmejias/perfumes-app/pkg/db/models"
	"github.com/jdmejias/perfumes-app/pkg/enums"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

var testCheckout = config.CheckoutConfig{
	ShippingCents:              50000,
	FreeShippingThresholdCents: 200000,
	CouponCode:                 "LUXAURIS10",
	CouponPercent:              10,
}

var testNow = dbtest.Base.Add(time.Hour)

type fixture struct {
	svc     Service
	decant  *models.ProductVariant
	bottle  *models.ProductVariant
	hidden  *models.ProductVariant
	product *models.Product
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	conn := dbtest.Open(t)
	brand := dbtest.MustCreateBrand(t, conn, "Afnan", "afnan")
	product := dbtest.MustCreateProduct(t, conn, brand, "afnan-9pm", dbtest.ProductOpts{Name: "Afnan 9PM", ImageURLs: []string{"/products/afnan-9pm.jpg"}})
	decant := dbtest.MustCreateVariant(t, conn, product, 10, 3500, dbtest.VariantOpts{Stock: 20})
	bottle := dbtest.MustCreateVariant(t, conn, product, 100, 120000, dbtest.VariantOpts{Type: enums.VariantTypeFullBottle, Stock: 2})
	hidden := dbtest.MustCreateVariant(t, conn, product, 5, 2000, dbtest.VariantOpts{Stock: 30, Inactive: true})
	dbtest.MustCreateDiscount(t, conn, dbtest.DiscountOpts{Kind: enums.DiscountKindPercent, Value: 10, ProductID: &product.ID})

	return fixture{
		svc:     mustService(t, catalog.NewRepository(conn)),
		decant:  decant,
		bottle:  bottle,
		hidden:  hidden,
		product: product,
	}
}

func mustService(t *testing.T, loader variantLoader) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{Variants: loader, Clock: clock.NewFixed(testNow), Config: testCheckout})
	require.NoError(t, err)
	return svc
}

func TestQuoteReprices(t *testing.T) {
	f := newFixture(t)

	quote, err := f.svc.Quote(context.Background(), QuoteRequest{Items: []LineInput{
		{VariantID: f.decant.ID, Quantity: 2},
	}})
	require.NoError(t, err)
	require.Len(t, quote.Items, 1)

	item := quote.Items[0]
	assert.Equal(t, "Afnan 9PM", item.ProductName)
	assert.Equal(t, "10ml – Decant", item.VariantLabel)
	assert.Equal(t, 3150, item.PriceCents)
	assert.Equal(t, 6300, item.LineTotalCents)
	require.NotNil(t, item.ImageURL)
	assert.Equal(t, "/products/afnan-9pm.jpg", *item.ImageURL)

	assert.Equal(t, 6300, quote.SubtotalCents)
	assert.Nil(t, quote.CouponCode)
	assert.Equal(t, 50000, quote.ShippingCents)
	assert.Equal(t, 56300, quote.TotalCents)
	assert.Equal(t, 200000-6300, quote.FreeShippingRemainingCents)
}

func TestQuoteCouponAndFreeShipping(t *testing.T) {
	f := newFixture(t)

	quote, err := f.svc.Quote(context.Background(), QuoteRequest{
		Items:      []LineInput{{VariantID: f.bottle.ID, Quantity: 2}},
		CouponCode: "luxauris10",
	})
	require.NoError(t, err)
	// 120000 with 10% product discount = 108000 each.
	assert.Equal(t, 216000, quote.SubtotalCents)
	require.NotNil(t, quote.CouponCode)
	assert.Equal(t, "LUXAURIS10", *quote.CouponCode)
	assert.Equal(t, 21600, quote.CouponDiscountCents)
	// 216000 - 21600 = 194400 stays under the free-shipping threshold.
	assert.Equal(t, 50000, quote.ShippingCents)
	assert.Equal(t, 194400+50000, quote.TotalCents)

	quote, err = f.svc.Quote(context.Background(), QuoteRequest{
		Items: []LineInput{{VariantID: f.bottle.ID, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Zero(t, quote.ShippingCents)
	assert.Zero(t, quote.FreeShippingRemainingCents)
	assert.Equal(t, 216000, quote.TotalCents)
}

func TestQuoteErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	cases := []struct {
		name string
		req  QuoteRequest
		code pkgerrors.Code
	}{
		{name: "unknown variant", req: QuoteRequest{Items: []LineInput{{VariantID: uuid.New(), Quantity: 1}}}, code: pkgerrors.CodeNotFound},
		{name: "inactive variant", req: QuoteRequest{Items: []LineInput{{VariantID: f.hidden.ID, Quantity: 1}}}, code: pkgerrors.CodeNotFound},
		{name: "over stock", req: QuoteRequest{Items: []LineInput{{VariantID: f.bottle.ID, Quantity: 3}}}, code: pkgerrors.CodeStateConflict},
		{name: "merged lines over stock", req: QuoteRequest{Items: []LineInput{{VariantID: f.bottle.ID, Quantity: 2}, {VariantID: f.bottle.ID, Quantity: 1}}}, code: pkgerrors.CodeStateConflict},
		{name: "bad coupon", req: QuoteRequest{Items: []LineInput{{VariantID: f.decant.ID, Quantity: 1}}, CouponCode: "FREE"}, code: pkgerrors.CodeValidation},
		{name: "empty cart", req: QuoteRequest{}, code: pkgerrors.CodeValidation},
		{name: "zero quantity", req: QuoteRequest{Items: []LineInput{{VariantID: f.decant.ID, Quantity: 0}}}, code: pkgerrors.CodeValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.Quote(ctx, tc.req)
			require.Error(t, err)
			assert.True(t, pkgerrors.IsCode(err, tc.code), "got %v", err)
		})
	}
}

func TestConfirm(t *testing.T) {
	f := newFixture(t)
	customer := Customer{Name: " Ana García ", Email: "ANA@example.com", Address: "Calle 123", City: "CDMX"}

	conf, err := f.svc.Confirm(context.Background(), ConfirmRequest{
		Customer: customer,
		Items:    []LineInput{{VariantID: f.decant.ID, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(conf.Reference, "LUX-"))
	assert.Len(t, conf.Reference, len("LUX-")+8)
	assert.Equal(t, strings.ToUpper(conf.Reference), conf.Reference)
	assert.Equal(t, testNow, conf.ConfirmedAt)
	assert.Equal(t, "Ana García", conf.Customer.Name)
	assert.Equal(t, "ana@example.com", conf.Customer.Email)
	assert.Equal(t, 3150+50000, conf.Quote.TotalCents)
}

func TestConfirmRejectsIncompleteCustomer(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Confirm(context.Background(), ConfirmRequest{
		Customer: Customer{Name: "Ana", Email: "not-an-email", City: "CDMX"},
		Items:    []LineInput{{VariantID: f.decant.ID, Quantity: 1}},
	})
	require.Error(t, err)
	typed := pkgerrors.As(err)
	require.NotNil(t, typed)
	assert.Equal(t, pkgerrors.CodeValidation, typed.Code())
	details, ok := typed.Details().(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "customer.email")
	assert.Contains(t, details, "customer.address")
}

type failingLoader struct{}

func (failingLoader) FindActiveVariantsByIDs(context.Context, []uuid.UUID, time.Time) ([]models.ProductVariant, error) {
	return nil, gorm.ErrInvalidDB
}

func TestQuoteDataSourceFailure(t *testing.T) {
	svc := mustService(t, failingLoader{})
	_, err := svc.Quote(context.Background(), QuoteRequest{Items: []LineInput{{VariantID: uuid.New(), Quantity: 1}}})
	assert.True(t, pkgerrors.IsCode(err, pkgerrors.CodeDependency))
	assert.True(t, errors.Is(err, gorm.ErrInvalidDB))
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "100ml – Frasco", VariantLabel(models.ProductVariant{SizeML: 100, Type: enums.VariantTypeFullBottle}))
	assert.Equal(t, "5ml – Tester", VariantLabel(models.ProductVariant{SizeML: 5, Type: enums.VariantTypeTester}))
}
