package catalog

import (
	"sort"
	"time"

	"github.com/jdmejias/perfumes-app/internal/pricing"
	"github.com/jdmejias/perfumes-app/pkg/db/models"
	"github.com/jdmejias/perfumes-app/pkg/enums"
)

// PriceSummary is what the listing derives from a product's active variants.
type PriceSummary struct {
	MinEffectivePriceCents *int
	HasActiveDiscount      bool
	VariantCount           int
}

// SummarizePrices prices every variant at now. The variants and discounts are
// expected to be pre-filtered to active ones.
func SummarizePrices(p models.Product, now time.Time) PriceSummary {
	productDiscounts := pricing.DiscountsFromModels(p.Discounts)
	summary := PriceSummary{VariantCount: len(p.Variants)}

	for _, v := range p.Variants {
		eff := pricing.GetEffectivePrice(v.PriceCents, pricing.DiscountsFromModels(v.Discounts), productDiscounts, now)
		if eff.DiscountApplied != nil {
			summary.HasActiveDiscount = true
		}
		if summary.MinEffectivePriceCents == nil || eff.EffectivePriceCents < *summary.MinEffectivePriceCents {
			price := eff.EffectivePriceCents
			summary.MinEffectivePriceCents = &price
		}
	}
	return summary
}

// BuildListItem maps a loaded product onto its listing card.
func BuildListItem(p models.Product, now time.Time) ProductListItem {
	summary := SummarizePrices(p, now)
	item := ProductListItem{
		ID:                     p.ID,
		Name:                   p.Name,
		Slug:                   p.Slug,
		Description:            p.Description,
		Gender:                 p.Gender,
		Concentration:          p.Concentration,
		IsActive:               p.IsActive,
		CreatedAt:              p.CreatedAt,
		Brand:                  newBrandDTO(p.Brand),
		Categories:             newCategoryDTOs(p.Categories),
		MinEffectivePriceCents: summary.MinEffectivePriceCents,
		HasActiveDiscount:      summary.HasActiveDiscount,
		VariantCount:           summary.VariantCount,
	}
	if len(p.Images) > 0 {
		cover := newImageDTO(p.Images[0])
		item.Image = &cover
	}
	return item
}

// ApplyPostFilters keeps the items that satisfy the filters depending on
// derived prices. A nil minimum price never satisfies a price bound.
func ApplyPostFilters(items []ProductListItem, f Filters) []ProductListItem {
	out := make([]ProductListItem, 0, len(items))
	for _, item := range items {
		if f.OnSale && !item.HasActiveDiscount {
			continue
		}
		if f.MinPrice != nil && (item.MinEffectivePriceCents == nil || *item.MinEffectivePriceCents < *f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && (item.MinEffectivePriceCents == nil || *item.MinEffectivePriceCents > *f.MaxPrice) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// SortItems applies the price sorts in place. Newest keeps storage order.
// Items without a price compare as 0.
func SortItems(items []ProductListItem, order enums.CatalogSort) {
	switch order {
	case enums.CatalogSortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return priceOrZero(items[i]) < priceOrZero(items[j])
		})
	case enums.CatalogSortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return priceOrZero(items[i]) > priceOrZero(items[j])
		})
	}
}

func priceOrZero(item ProductListItem) int {
	if item.MinEffectivePriceCents == nil {
		return 0
	}
	return *item.MinEffectivePriceCents
}

// BuildDetail maps a loaded product onto the detail payload. Variants keep the
// order they were loaded in.
func BuildDetail(p models.Product, now time.Time) ProductDetail {
	productDiscounts := pricing.DiscountsFromModels(p.Discounts)

	variants := make([]VariantDetail, 0, len(p.Variants))
	for _, v := range p.Variants {
		eff := pricing.GetEffectivePrice(v.PriceCents, pricing.DiscountsFromModels(v.Discounts), productDiscounts, now)
		variants = append(variants, VariantDetail{
			ID:                  v.ID,
			Type:                v.Type,
			SizeML:              v.SizeML,
			SKU:                 v.SKU,
			PriceCents:          v.PriceCents,
			CompareAtPriceCents: v.CompareAtPriceCents,
			Stock:               v.Stock,
			EffectivePriceCents: eff.EffectivePriceCents,
			DiscountApplied:     eff.DiscountApplied,
		})
	}

	images := make([]ImageDTO, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, newImageDTO(img))
	}

	return ProductDetail{
		ID:            p.ID,
		Slug:          p.Slug,
		Name:          p.Name,
		Description:   p.Description,
		Gender:        p.Gender,
		Concentration: p.Concentration,
		TopNotes:      p.TopNotes,
		MiddleNotes:   p.MiddleNotes,
		BaseNotes:     p.BaseNotes,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		Brand:         newBrandDTO(p.Brand),
		Categories:    newCategoryDTOs(p.Categories),
		Images:        images,
		Variants:      variants,
		Discounts:     productDiscounts,
	}
}
