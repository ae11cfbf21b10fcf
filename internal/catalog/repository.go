package catalog

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdmejias/perfumes-app/pkg/db/models"
)

// ProductQuery holds the predicates the database can evaluate.
type ProductQuery struct {
	Search   string
	Category string
	Brand    string
	Gender   string
	Limit    int
}

// Repository reads the catalog. Every product read preloads only active
// variants and only discounts whose window contains now.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

// activeDiscounts restricts a discounts preload to rows live at now, in the
// stable order first-match resolution depends on.
func activeDiscounts(now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Where("is_active = ?", true).
			Where("(start_at IS NULL OR start_at <= ?)", now).
			Where("(end_at IS NULL OR end_at >= ?)", now).
			Order("created_at ASC").
			Order("id ASC")
	}
}

func activeVariants(order string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("is_active = ?", true).Order(order).Order("id ASC")
	}
}

func imagesByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC").Order("id ASC")
}

func categoriesByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

func withPricing(q *gorm.DB, now time.Time, variantOrder string) *gorm.DB {
	return q.
		Preload("Brand").
		Preload("Categories", categoriesByName).
		Preload("Images", imagesByPosition).
		Preload("Variants", activeVariants(variantOrder)).
		Preload("Variants.Discounts", activeDiscounts(now)).
		Preload("Discounts", activeDiscounts(now))
}

// ListActiveProducts returns active products matching q, newest first.
func (r *Repository) ListActiveProducts(ctx context.Context, q ProductQuery, now time.Time) ([]models.Product, error) {
	qb := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Where("products.is_active = ?", true)

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := containsPattern(search)
		qb = qb.Where(
			`(LOWER(products.name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(products.description, '')) LIKE ? ESCAPE '\')`,
			pattern, pattern,
		)
	}
	if q.Gender != "" {
		qb = qb.Where("products.gender = ?", q.Gender)
	}
	if q.Brand != "" {
		qb = qb.Where("products.brand_id IN (SELECT b.id FROM brands b WHERE b.slug = ?)", q.Brand)
	}
	if q.Category != "" {
		qb = qb.Where(`EXISTS (
			SELECT 1 FROM product_categories pc
			JOIN categories c ON c.id = pc.category_id
			WHERE pc.product_id = products.id AND c.slug = ?
		)`, q.Category)
	}

	qb = qb.Order("products.created_at DESC").Order("products.id DESC")
	if q.Limit > 0 {
		qb = qb.Limit(q.Limit)
	}

	var products []models.Product
	if err := withPricing(qb, now, "created_at ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindActiveBySlug loads one active product with variants ordered by size.
// A missing or inactive product yields (nil, nil).
func (r *Repository) FindActiveBySlug(ctx context.Context, slug string, now time.Time) (*models.Product, error) {
	var product models.Product
	qb := r.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true)
	err := withPricing(qb, now, "size_ml ASC").First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindActiveProductsByIDs loads the active subset of ids, in no particular order.
func (r *Repository) FindActiveProductsByIDs(ctx context.Context, ids []uuid.UUID, now time.Time) ([]models.Product, error) {
	if len(ids) == 0 {
		return []models.Product{}, nil
	}
	var products []models.Product
	qb := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true)
	if err := withPricing(qb, now, "size_ml ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindActiveVariantsByIDs loads purchasable variants together with the parent
// product's cover image and live product discounts.
func (r *Repository) FindActiveVariantsByIDs(ctx context.Context, ids []uuid.UUID, now time.Time) ([]models.ProductVariant, error) {
	if len(ids) == 0 {
		return []models.ProductVariant{}, nil
	}
	var variants []models.ProductVariant
	err := r.db.WithContext(ctx).
		Where("id IN ? AND is_active = ?", ids, true).
		Where("product_id IN (SELECT p.id FROM products p WHERE p.is_active = ?)", true).
		Preload("Discounts", activeDiscounts(now)).
		Preload("Product").
		Preload("Product.Images", imagesByPosition).
		Preload("Product.Discounts", activeDiscounts(now)).
		Find(&variants).Error
	if err != nil {
		return nil, err
	}
	return variants, nil
}

// ProductExists reports whether a product with id exists, active or not.
func (r *Repository) ProductExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *Repository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error; err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}
