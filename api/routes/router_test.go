package routes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdmejias/perfumes-app/api/controllers"
	"github.com/jdmejias/perfumes-app/api/middleware"
	"github.com/jdmejias/perfumes-app/internal/auth"
	"github.com/jdmejias/perfumes-app/internal/catalog"
	"github.com/jdmejias/perfumes-app/internal/checkout"
	"github.com/jdmejias/perfumes-app/internal/users"
	"github.com/jdmejias/perfumes-app/internal/wishlist"
	pkgAuth "github.com/jdmejias/perfumes-app/pkg/auth"
	"github.com/jdmejias/perfumes-app/pkg/config"
	"github.com/jdmejias/perfumes-app/pkg/logger"
	"github.com/jdmejias/perfumes-app/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

type stubSessions struct{}

func (stubSessions) HasSession(context.Context, string) (bool, error) { return true, nil }

type denyLimiter struct{}

func (denyLimiter) FixedWindowAllow(context.Context, string, int64, time.Duration) (bool, int64, error) {
	return false, 99, nil
}

type stubCatalog struct{}

func (stubCatalog) ListProducts(context.Context, catalog.Filters) (catalog.ListResult, error) {
	return catalog.ListResult{Items: []catalog.ProductListItem{}}, nil
}

func (stubCatalog) FeaturedProducts(context.Context) ([]catalog.ProductListItem, error) {
	return []catalog.ProductListItem{}, nil
}

func (stubCatalog) GetProductBySlug(context.Context, string) (*catalog.ProductDetail, error) {
	return nil, nil
}

func (stubCatalog) ListBrands(context.Context) ([]catalog.BrandDTO, error) {
	return []catalog.BrandDTO{}, nil
}

func (stubCatalog) ListCategories(context.Context) ([]catalog.CategoryDTO, error) {
	return []catalog.CategoryDTO{}, nil
}

type stubAuth struct{}

func (stubAuth) Register(context.Context, auth.RegisterRequest) (*auth.SessionResult, error) {
	return &auth.SessionResult{Token: "t", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (stubAuth) Login(context.Context, auth.LoginRequest) (*auth.SessionResult, error) {
	return &auth.SessionResult{Token: "t", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (stubAuth) Logout(context.Context, string) error { return nil }

func (stubAuth) Me(_ context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return &users.UserDTO{ID: userID, Email: "ana@example.com"}, nil
}

type stubWishlist struct{}

func (stubWishlist) ListIDs(context.Context, uuid.UUID) ([]uuid.UUID, error) {
	return []uuid.UUID{}, nil
}

func (stubWishlist) Toggle(context.Context, uuid.UUID, uuid.UUID) (wishlist.ToggleResult, error) {
	return wishlist.ToggleResult{Added: true}, nil
}

func (stubWishlist) ListProducts(context.Context, uuid.UUID) ([]wishlist.WishlistProduct, error) {
	return []wishlist.WishlistProduct{}, nil
}

type stubCheckout struct{}

func (stubCheckout) Quote(context.Context, checkout.QuoteRequest) (*checkout.Quote, error) {
	return &checkout.Quote{}, nil
}

func (stubCheckout) Confirm(context.Context, checkout.ConfirmRequest) (*checkout.Confirmation, error) {
	return &checkout.Confirmation{Reference: "LUX-00000000"}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App:     config.AppConfig{Env: "dev"},
		JWT:     config.JWTConfig{Secret: "secret", Issuer: "luxauris", ExpirationMinutes: 60},
		Session: config.SessionConfig{CookieName: "luxauris_session", CookiePath: "/"},
		AuthRateLimit: config.AuthRateLimitConfig{
			LoginWindow:  time.Minute,
			LoginIPLimit: 5,
		},
	}
}

func newTestRouter(t *testing.T, limiter RateLimiter) http.Handler {
	t.Helper()
	reg := metrics.NewRegistry()
	return NewRouter(Dependencies{
		Config:         testConfig(),
		Logger:         logger.New(logger.Options{ServiceName: "test", Output: io.Discard}),
		Sessions:       stubSessions{},
		Limiter:        limiter,
		Ready:          map[string]controllers.Pinger{"postgres": stubPinger{}, "redis": stubPinger{}},
		Catalog:        stubCatalog{},
		Auth:           stubAuth{},
		Wishlist:       stubWishlist{},
		Checkout:       stubCheckout{},
		HTTPMetrics:    metrics.NewHTTPMetrics(reg),
		MetricsHandler: metrics.Handler(reg),
	})
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func bearer(t *testing.T) string {
	t.Helper()
	token, _, err := pkgAuth.MintAccessToken(testConfig().JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "ana@example.com",
	})
	require.NoError(t, err)
	return "Bearer " + token
}

func TestRouterPublicRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	for _, path := range []string{
		"/health/live",
		"/health/ready",
		"/api/v1/products",
		"/api/v1/products/featured",
		"/api/v1/brands",
		"/api/v1/categories",
		"/api/v1/wishlist",
		"/api/v1/wishlist/products",
	} {
		t.Run(path, func(t *testing.T) {
			rec := serve(router, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
		})
	}
}

func TestRouterUnknownProductIs404(t *testing.T) {
	rec := serve(newTestRouter(t, nil), httptest.NewRequest(http.MethodGet, "/api/v1/products/ghost", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouterProtectedRoutes(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req.Header.Set("Authorization", bearer(t))
	rec = serve(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	toggle := `{"productId":"` + uuid.NewString() + `"}`
	rec = serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/wishlist", strings.NewReader(toggle)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/wishlist", strings.NewReader(toggle))
	req.Header.Set(middleware.SessionTokenHeader, strings.TrimPrefix(bearer(t), "Bearer "))
	rec = serve(router, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterCheckoutRoutes(t *testing.T) {
	router := newTestRouter(t, nil)
	line := `{"variantId":"` + uuid.NewString() + `","quantity":1}`

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/cart/quote", strings.NewReader(`{"items":[`+line+`]}`)))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/checkout/confirm", strings.NewReader(`{"customer":{"name":"Ana"},"items":[`+line+`]}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouterLoginIsRateLimited(t *testing.T) {
	router := newTestRouter(t, denyLimiter{})
	body := `{"email":"ana@example.com","password":"secret1"}`

	rec := serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body)))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// register has no limits configured in testConfig
	rec = serve(router, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body)))
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouterExposesMetrics(t *testing.T) {
	router := newTestRouter(t, nil)
	serve(router, httptest.NewRequest(http.MethodGet, "/api/v1/brands", nil))

	rec := serve(router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `http_requests_total{method="GET",route="/api/v1/brands",status="200"} 1`)
	assert.Contains(t, body, "go_goroutines")
}
