package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jdmejias/perfumes-app/pkg/clock"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
	"github.com/jdmejias/perfumes-app/pkg/logger"
	"github.com/jdmejias/perfumes-app/pkg/metrics"
	"github.com/jdmejias/perfumes-app/pkg/redis"
)

const defaultFeaturedLimit = 8

// LookupCache stores brand and category lists. Prices are never cached.
type LookupCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	CacheKey(parts ...string) string
}

// ServiceParams groups dependencies for the catalog service.
type ServiceParams struct {
	Repo           *Repository
	Clock          clock.Clock
	Metrics        *metrics.CatalogMetrics
	Cache          LookupCache
	Logger         *logger.Logger
	FeaturedLimit  int
	LookupCacheTTL time.Duration
}

// Service is the read side of the storefront catalog.
type Service interface {
	ListProducts(ctx context.Context, filters Filters) (ListResult, error)
	FeaturedProducts(ctx context.Context) ([]ProductListItem, error)
	GetProductBySlug(ctx context.Context, slug string) (*ProductDetail, error)
	ListBrands(ctx context.Context) ([]BrandDTO, error)
	ListCategories(ctx context.Context) ([]CategoryDTO, error)
}

type service struct {
	repo          *Repository
	clock         clock.Clock
	metrics       *metrics.CatalogMetrics
	cache         LookupCache
	logg          *logger.Logger
	featuredLimit int
	cacheTTL      time.Duration
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "catalog repo is required")
	}
	clk := params.Clock
	if clk == nil {
		clk = clock.New()
	}
	limit := params.FeaturedLimit
	if limit <= 0 {
		limit = defaultFeaturedLimit
	}
	return &service{
		repo:          params.Repo,
		clock:         clk,
		metrics:       params.Metrics,
		cache:         params.Cache,
		logg:          params.Logger,
		featuredLimit: limit,
		cacheTTL:      params.LookupCacheTTL,
	}, nil
}

// ListProducts runs the two-phase pipeline: storage predicates first, then
// price derivation, post-filters and price sorts in memory.
func (s *service) ListProducts(ctx context.Context, filters Filters) (result ListResult, err error) {
	started := time.Now()
	defer func() { s.metrics.Observe("list", started, result.Total, err) }()

	now := s.clock.Now()
	products, err := s.repo.ListActiveProducts(ctx, filters.storageQuery(), now)
	if err != nil {
		return ListResult{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	items := make([]ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, BuildListItem(p, now))
	}
	items = ApplyPostFilters(items, filters)
	SortItems(items, filters.Sort)

	return ListResult{Items: items, Total: len(items)}, nil
}

// FeaturedProducts returns the newest active products.
func (s *service) FeaturedProducts(ctx context.Context) (items []ProductListItem, err error) {
	started := time.Now()
	defer func() { s.metrics.Observe("featured", started, len(items), err) }()

	now := s.clock.Now()
	products, err := s.repo.ListActiveProducts(ctx, ProductQuery{Limit: s.featuredLimit}, now)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list featured products")
	}
	items = make([]ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, BuildListItem(p, now))
	}
	return items, nil
}

// GetProductBySlug returns nil when no active product carries slug.
func (s *service) GetProductBySlug(ctx context.Context, slug string) (detail *ProductDetail, err error) {
	started := time.Now()
	defer func() {
		n := 0
		if detail != nil {
			n = 1
		}
		s.metrics.Observe("detail", started, n, err)
	}()

	now := s.clock.Now()
	product, err := s.repo.FindActiveBySlug(ctx, slug, now)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load product")
	}
	if product == nil {
		return nil, nil
	}
	d := BuildDetail(*product, now)
	return &d, nil
}

func (s *service) ListBrands(ctx context.Context) ([]BrandDTO, error) {
	var cached []BrandDTO
	if s.readCache(ctx, "brands", &cached) {
		return cached, nil
	}

	brands, err := s.repo.ListBrands(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list brands")
	}
	out := make([]BrandDTO, 0, len(brands))
	for _, b := range brands {
		out = append(out, newBrandDTO(b))
	}
	s.writeCache(ctx, "brands", out)
	return out, nil
}

func (s *service) ListCategories(ctx context.Context) ([]CategoryDTO, error) {
	var cached []CategoryDTO
	if s.readCache(ctx, "categories", &cached) {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list categories")
	}
	out := newCategoryDTOs(categories)
	s.writeCache(ctx, "categories", out)
	return out, nil
}

func (s *service) readCache(ctx context.Context, name string, dest any) bool {
	if s.cache == nil {
		return false
	}
	raw, err := s.cache.Get(ctx, s.cache.CacheKey("catalog", name))
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.warn(ctx, "catalog.cache.read_failed", name, err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		s.warn(ctx, "catalog.cache.decode_failed", name, err)
		return false
	}
	return true
}

func (s *service) writeCache(ctx context.Context, name string, value any) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(value)
	if err != nil {
		s.warn(ctx, "catalog.cache.encode_failed", name, err)
		return
	}
	if err := s.cache.Set(ctx, s.cache.CacheKey("catalog", name), payload, s.cacheTTL); err != nil {
		s.warn(ctx, "catalog.cache.write_failed", name, err)
	}
}

func (s *service) warn(ctx context.Context, event, name string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{"lookup": name, "error": err.Error()})
	s.logg.Warn(ctx, event)
}

