package catalog

import (
	"time"

	"github.com/google/uuid"

	"github.com/jdmejias/perfumes-app/internal/pricing"
	"github.com/jdmejias/perfumes-app/pkg/db/models"
	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// FeaturedSlug is the /products path segment routed to the featured list.
// A product stored under it could never be fetched by slug.
const FeaturedSlug = "featured"

// IsReservedSlug reports whether slug collides with a fixed /products route.
func IsReservedSlug(slug string) bool {
	return slug == FeaturedSlug
}

// Filters are the listing knobs. Query, Category, Brand and Gender are pushed to
// the database; MinPrice, MaxPrice, OnSale and the price sorts run after
// effective prices are derived.
type Filters struct {
	Query    string
	Category string
	Brand    string
	Gender   *enums.Gender
	MinPrice *int
	MaxPrice *int
	OnSale   bool
	Sort     enums.CatalogSort
}

type BrandDTO struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type CategoryDTO struct {
	ID   uuid.UUID           `json:"id"`
	Name string              `json:"name"`
	Slug string              `json:"slug"`
	Type *enums.CategoryType `json:"type"`
}

type ImageDTO struct {
	URL      string  `json:"url"`
	Alt      *string `json:"alt"`
	Position int     `json:"position"`
}

// ProductListItem is one card of the catalog grid. MinEffectivePriceCents is
// nil when the product has no active variants.
type ProductListItem struct {
	ID                     uuid.UUID           `json:"id"`
	Name                   string              `json:"name"`
	Slug                   string              `json:"slug"`
	Description            *string             `json:"description"`
	Gender                 enums.Gender        `json:"gender"`
	Concentration          enums.Concentration `json:"concentration"`
	IsActive               bool                `json:"isActive"`
	CreatedAt              time.Time           `json:"createdAt"`
	Brand                  BrandDTO            `json:"brand"`
	Categories             []CategoryDTO       `json:"categories"`
	Image                  *ImageDTO           `json:"image"`
	MinEffectivePriceCents *int                `json:"minEffectivePriceCents"`
	HasActiveDiscount      bool                `json:"hasActiveDiscount"`
	VariantCount           int                 `json:"variantCount"`
}

// ListResult is the full, unpaginated match set.
type ListResult struct {
	Items []ProductListItem `json:"items"`
	Total int               `json:"total"`
}

type VariantDetail struct {
	ID                  uuid.UUID         `json:"id"`
	Type                enums.VariantType `json:"type"`
	SizeML              int               `json:"sizeMl"`
	SKU                 string            `json:"sku"`
	PriceCents          int               `json:"priceCents"`
	CompareAtPriceCents *int              `json:"compareAtPriceCents"`
	Stock               int               `json:"stock"`
	EffectivePriceCents int               `json:"effectivePriceCents"`
	DiscountApplied     *pricing.Discount `json:"discountApplied"`
}

type ProductDetail struct {
	ID            uuid.UUID           `json:"id"`
	Slug          string              `json:"slug"`
	Name          string              `json:"name"`
	Description   *string             `json:"description"`
	Gender        enums.Gender        `json:"gender"`
	Concentration enums.Concentration `json:"concentration"`
	TopNotes      *string             `json:"topNotes"`
	MiddleNotes   *string             `json:"middleNotes"`
	BaseNotes     *string             `json:"baseNotes"`
	IsActive      bool                `json:"isActive"`
	CreatedAt     time.Time           `json:"createdAt"`
	Brand         BrandDTO            `json:"brand"`
	Categories    []CategoryDTO       `json:"categories"`
	Images        []ImageDTO          `json:"images"`
	Variants      []VariantDetail     `json:"variants"`
	Discounts     []pricing.Discount  `json:"discounts"`
}

func newBrandDTO(b models.Brand) BrandDTO {
	return BrandDTO{ID: b.ID, Name: b.Name, Slug: b.Slug}
}

func newCategoryDTO(c models.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID, Name: c.Name, Slug: c.Slug, Type: c.Type}
}

func newCategoryDTOs(cs []models.Category) []CategoryDTO {
	out := make([]CategoryDTO, 0, len(cs))
	for _, c := range cs {
		out = append(out, newCategoryDTO(c))
	}
	return out
}

func newImageDTO(img models.ProductImage) ImageDTO {
	return ImageDTO{URL: img.URL, Alt: img.Alt, Position: img.Position}
}
