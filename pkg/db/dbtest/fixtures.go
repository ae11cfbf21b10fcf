package dbtest

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jdmejias/perfumes-app/pkg/db/models"
	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// Base is the reference instant fixtures are stamped relative to.
var Base = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// discountSeq spaces default discount timestamps so creation order decides
// first-match resolution instead of random ids.
var discountSeq atomic.Int64

func MustCreateBrand(t testing.TB, db *gorm.DB, name, slug string) *models.Brand {
	t.Helper()
	brand := &models.Brand{ID: uuid.New(), Name: name, Slug: slug, CreatedAt: Base}
	if err := db.Create(brand).Error; err != nil {
		t.Fatalf("create brand: %v", err)
	}
	return brand
}

func MustCreateCategory(t testing.TB, db *gorm.DB, name, slug string, kind enums.CategoryType) *models.Category {
	t.Helper()
	category := &models.Category{ID: uuid.New(), Name: name, Slug: slug, Type: &kind, CreatedAt: Base}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category: %v", err)
	}
	return category
}

// ProductOpts tweaks MustCreateProduct. Zero values get sensible defaults.
type ProductOpts struct {
	Name        string
	Description string
	Gender      enums.Gender
	Inactive    bool
	CreatedAt   time.Time
	Categories  []*models.Category
	ImageURLs   []string
}

func MustCreateProduct(t testing.TB, db *gorm.DB, brand *models.Brand, slug string, opts ProductOpts) *models.Product {
	t.Helper()
	if opts.Name == "" {
		opts.Name = slug
	}
	if opts.Gender == "" {
		opts.Gender = enums.GenderMen
	}
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = Base
	}
	product := &models.Product{
		ID:            uuid.New(),
		Slug:          slug,
		Name:          opts.Name,
		Gender:        opts.Gender,
		Concentration: enums.ConcentrationEDP,
		IsActive:      true,
		BrandID:       brand.ID,
		CreatedAt:     opts.CreatedAt,
		UpdatedAt:     opts.CreatedAt,
	}
	if opts.Description != "" {
		desc := opts.Description
		product.Description = &desc
	}
	if err := db.Omit(clause.Associations).Create(product).Error; err != nil {
		t.Fatalf("create product: %v", err)
	}
	// is_active has a column default, so false has to be written explicitly.
	if opts.Inactive {
		mustUpdate(t, db, &models.Product{}, product.ID, "is_active", false)
		product.IsActive = false
	}
	for _, c := range opts.Categories {
		if err := db.Exec("INSERT INTO product_categories (product_id, category_id) VALUES (?, ?)", product.ID, c.ID).Error; err != nil {
			t.Fatalf("link category: %v", err)
		}
	}
	for i, url := range opts.ImageURLs {
		alt := opts.Name
		img := &models.ProductImage{ID: uuid.New(), ProductID: product.ID, URL: url, Alt: &alt, Position: i}
		if err := db.Create(img).Error; err != nil {
			t.Fatalf("create image: %v", err)
		}
	}
	return product
}

// VariantOpts tweaks MustCreateVariant.
type VariantOpts struct {
	Type     enums.VariantType
	Stock    int
	Inactive bool
}

func MustCreateVariant(t testing.TB, db *gorm.DB, product *models.Product, sizeML, priceCents int, opts VariantOpts) *models.ProductVariant {
	t.Helper()
	if opts.Type == "" {
		opts.Type = enums.VariantTypeDecant
	}
	variant := &models.ProductVariant{
		ID:         uuid.New(),
		ProductID:  product.ID,
		Type:       opts.Type,
		SizeML:     sizeML,
		SKU:        product.Slug + "-" + uuid.NewString()[:8],
		PriceCents: priceCents,
		Stock:      opts.Stock,
		IsActive:   true,
		CreatedAt:  product.CreatedAt,
		UpdatedAt:  product.CreatedAt,
	}
	if err := db.Omit(clause.Associations).Create(variant).Error; err != nil {
		t.Fatalf("create variant: %v", err)
	}
	if opts.Inactive {
		mustUpdate(t, db, &models.ProductVariant{}, variant.ID, "is_active", false)
		variant.IsActive = false
	}
	return variant
}

// DiscountOpts describes one discount row. Exactly one of ProductID and
// VariantID should be set.
type DiscountOpts struct {
	Kind      enums.DiscountKind
	Value     int64
	Inactive  bool
	StartAt   *time.Time
	EndAt     *time.Time
	ProductID *uuid.UUID
	VariantID *uuid.UUID
	CreatedAt time.Time
}

func MustCreateDiscount(t testing.TB, db *gorm.DB, opts DiscountOpts) *models.Discount {
	t.Helper()
	if opts.Kind == "" {
		opts.Kind = enums.DiscountKindPercent
	}
	if opts.CreatedAt.IsZero() {
		opts.CreatedAt = Base.Add(time.Duration(discountSeq.Add(1)) * time.Second)
	}
	discount := &models.Discount{
		ID:        uuid.New(),
		Name:      string(opts.Kind),
		Kind:      opts.Kind,
		Value:     decimal.NewFromInt(opts.Value),
		IsActive:  true,
		StartAt:   opts.StartAt,
		EndAt:     opts.EndAt,
		ProductID: opts.ProductID,
		VariantID: opts.VariantID,
		CreatedAt: opts.CreatedAt,
	}
	if err := db.Create(discount).Error; err != nil {
		t.Fatalf("create discount: %v", err)
	}
	if opts.Inactive {
		mustUpdate(t, db, &models.Discount{}, discount.ID, "is_active", false)
		discount.IsActive = false
	}
	return discount
}

func MustCreateUser(t testing.TB, db *gorm.DB, email string) *models.User {
	t.Helper()
	user := &models.User{ID: uuid.New(), Email: email, PasswordHash: "hash", CreatedAt: Base, UpdatedAt: Base}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	return user
}

func mustUpdate(t testing.TB, db *gorm.DB, model any, id uuid.UUID, column string, value any) {
	t.Helper()
	if err := db.Model(model).Where("id = ?", id).Update(column, value).Error; err != nil {
		t.Fatalf("update %s: %v", column, err)
	}
}
