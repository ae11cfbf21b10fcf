package wishlist

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jdmejias/perfumes-app/internal/catalog"
	"github.com/jdmejias/perfumes-app/pkg/clock"
	"github.com/jdmejias/perfumes-app/pkg/db"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

var errConcurrentAdd = errors.New("wishlist item already saved")

// ServiceParams groups dependencies for the wishlist service.
type ServiceParams struct {
	DB    *db.Client
	Clock clock.Clock
}

// Service exposes business rules for wishlist management. A uuid.Nil user is
// an anonymous caller.
type Service interface {
	ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	Toggle(ctx context.Context, userID, productID uuid.UUID) (ToggleResult, error)
	ListProducts(ctx context.Context, userID uuid.UUID) ([]WishlistProduct, error)
}

type service struct {
	db    *db.Client
	clock clock.Clock
}

// NewService builds a wishlist service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "database client required")
	}
	clk := params.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &service{db: params.DB, clock: clk}, nil
}

func (s *service) ListIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	if userID == uuid.Nil {
		return []uuid.UUID{}, nil
	}
	ids, err := NewRepository(s.db.DB()).ListProductIDs(ctx, userID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list wishlist")
	}
	return ids, nil
}

// Toggle removes the product when saved and saves it otherwise.
func (s *service) Toggle(ctx context.Context, userID, productID uuid.UUID) (ToggleResult, error) {
	if userID == uuid.Nil {
		return ToggleResult{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "login required")
	}
	if productID == uuid.Nil {
		return ToggleResult{}, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}

	var result ToggleResult
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		exists, err := catalog.NewRepository(tx).ProductExists(ctx, productID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
		}
		if !exists {
			return pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}

		repo := NewRepository(tx)
		saved, err := repo.Exists(ctx, userID, productID)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist item")
		}
		if saved {
			if err := repo.RemoveItem(ctx, userID, productID); err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "remove wishlist item")
			}
			result.Added = false
			return nil
		}

		if err := repo.AddItem(ctx, userID, productID); err != nil {
			if db.IsUniqueViolation(err, UserProductConstraint) {
				return errConcurrentAdd
			}
			return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "add wishlist item")
		}
		result.Added = true
		return nil
	})
	if errors.Is(err, errConcurrentAdd) {
		// A parallel toggle saved it first; the end state is the same.
		return ToggleResult{Added: true}, nil
	}
	if err != nil {
		return ToggleResult{}, err
	}
	return result, nil
}

// ListProducts prices the saved products at a single instant. Inactive products
// are skipped; order follows the wishlist.
func (s *service) ListProducts(ctx context.Context, userID uuid.UUID) ([]WishlistProduct, error) {
	ids, err := s.ListIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []WishlistProduct{}, nil
	}

	now := s.clock.Now()
	products, err := catalog.NewRepository(s.db.DB()).FindActiveProductsByIDs(ctx, ids, now)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load wishlist products")
	}

	byID := make(map[uuid.UUID]WishlistProduct, len(products))
	for _, p := range products {
		summary := catalog.SummarizePrices(p, now)
		item := WishlistProduct{
			ID:                     p.ID,
			Name:                   p.Name,
			Slug:                   p.Slug,
			Gender:                 p.Gender,
			BrandName:              p.Brand.Name,
			MinEffectivePriceCents: summary.MinEffectivePriceCents,
			HasActiveDiscount:      summary.HasActiveDiscount,
		}
		if len(p.Images) > 0 {
			url := p.Images[0].URL
			item.ImageURL = &url
		}
		byID[p.ID] = item
	}

	out := make([]WishlistProduct, 0, len(byID))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
