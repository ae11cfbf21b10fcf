// Package seed loads the demo catalog.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jdmejias/perfumes-app/internal/catalog"
	"github.com/jdmejias/perfumes-app/pkg/db"
	"github.com/jdmejias/perfumes-app/pkg/db/models"
	"github.com/jdmejias/perfumes-app/pkg/enums"
	"github.com/jdmejias/perfumes-app/pkg/logger"
)

// Summary counts what Run inserted.
type Summary struct {
	Brands     int
	Categories int
	Products   int
	Variants   int
	Discounts  int
}

// wipeOrder deletes children before parents.
var wipeOrder = []string{
	"wishlist_items",
	"discounts",
	"product_images",
	"product_variants",
	"product_categories",
	"products",
	"categories",
	"brands",
}

// Run replaces the catalog with the demo data in one transaction. Users are kept.
func Run(ctx context.Context, client *db.Client, logg *logger.Logger, now time.Time) (Summary, error) {
	var summary Summary
	if err := checkSlugs(products); err != nil {
		return summary, err
	}
	err := client.WithTx(ctx, func(tx *gorm.DB) error {
		for _, table := range wipeOrder {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("wipe %s: %w", table, err)
			}
		}

		brandIDs := make(map[string]uuid.UUID, len(brands))
		for _, b := range brands {
			row := models.Brand{ID: uuid.New(), Name: b.Name, Slug: b.Slug, CreatedAt: now}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create brand %s: %w", b.Slug, err)
			}
			brandIDs[b.Slug] = row.ID
			summary.Brands++
		}

		categoryRows := make(map[string]models.Category, len(categories))
		for _, c := range categories {
			kind := c.Type
			row := models.Category{ID: uuid.New(), Name: c.Name, Slug: c.Slug, Type: &kind, CreatedAt: now}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("create category %s: %w", c.Slug, err)
			}
			categoryRows[c.Slug] = row
			summary.Categories++
		}

		for i, p := range products {
			// Later entries are newer so the newest-first listing ends with the first entry.
			createdAt := now.Add(-time.Duration(len(products)-i) * time.Second)
			product := buildProduct(p, brandIDs[p.Brand], createdAt)
			if err := tx.Omit(clause.Associations).Create(&product).Error; err != nil {
				return fmt.Errorf("create product %s: %w", p.Slug, err)
			}
			for _, slug := range p.Categories {
				if err := tx.Exec(
					"INSERT INTO product_categories (product_id, category_id) VALUES (?, ?)",
					product.ID, categoryRows[slug].ID,
				).Error; err != nil {
					return fmt.Errorf("link %s to %s: %w", p.Slug, slug, err)
				}
			}
			if err := tx.Create(&product.Images).Error; err != nil {
				return fmt.Errorf("create images for %s: %w", p.Slug, err)
			}
			if err := tx.Omit(clause.Associations).Create(&product.Variants).Error; err != nil {
				return fmt.Errorf("create variants for %s: %w", p.Slug, err)
			}
			summary.Products++
			summary.Variants += len(product.Variants)

			if p.Prices.Percent > 0 {
				productID := product.ID
				discount := models.Discount{
					ID:        uuid.New(),
					Name:      "Descuento " + p.Name,
					Kind:      enums.DiscountKindPercent,
					Value:     decimal.NewFromInt(p.Prices.Percent),
					IsActive:  true,
					ProductID: &productID,
					CreatedAt: createdAt,
				}
				if err := tx.Create(&discount).Error; err != nil {
					return fmt.Errorf("create discount for %s: %w", p.Slug, err)
				}
				summary.Discounts++
			}
		}
		return nil
	})
	if err != nil {
		return Summary{}, err
	}

	if logg != nil {
		logCtx := logg.WithFields(ctx, map[string]any{
			"brands":     summary.Brands,
			"categories": summary.Categories,
			"products":   summary.Products,
			"variants":   summary.Variants,
			"discounts":  summary.Discounts,
		})
		logg.Info(logCtx, "seed.complete")
	}
	return summary, nil
}

func checkSlugs(items []productSeed) error {
	for _, p := range items {
		if catalog.IsReservedSlug(p.Slug) {
			return fmt.Errorf("product slug %q is reserved by the /products routes", p.Slug)
		}
	}
	return nil
}

func buildProduct(p productSeed, brandID uuid.UUID, createdAt time.Time) models.Product {
	id := uuid.New()
	description, top, middle, base := p.Description, p.TopNotes, p.MiddleNotes, p.BaseNotes
	alt := p.Name

	sizes := []struct {
		kind  enums.VariantType
		ml    int
		price int
		stock int
	}{
		{enums.VariantTypeDecant, 5, p.Prices.ML5, 30},
		{enums.VariantTypeDecant, 10, p.Prices.ML10, 20},
		{enums.VariantTypeFullBottle, 100, p.Prices.ML100, 10},
	}
	variants := make([]models.ProductVariant, 0, len(sizes))
	for _, s := range sizes {
		variants = append(variants, models.ProductVariant{
			ID:         uuid.New(),
			ProductID:  id,
			Type:       s.kind,
			SizeML:     s.ml,
			SKU:        fmt.Sprintf("%s-%dml", p.Slug, s.ml),
			PriceCents: s.price,
			Stock:      s.stock,
			IsActive:   true,
			CreatedAt:  createdAt,
			UpdatedAt:  createdAt,
		})
	}

	return models.Product{
		ID:            id,
		Slug:          p.Slug,
		Name:          p.Name,
		Description:   &description,
		Gender:        p.Gender,
		Concentration: enums.ConcentrationEDP,
		TopNotes:      &top,
		MiddleNotes:   &middle,
		BaseNotes:     &base,
		IsActive:      true,
		BrandID:       brandID,
		Images:        []models.ProductImage{{ID: uuid.New(), ProductID: id, URL: p.Image, Alt: &alt, Position: 0}},
		Variants:      variants,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}
