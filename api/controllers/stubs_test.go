package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jdmejias/perfumes-app/api/middleware"
	"github.com/jdmejias/perfumes-app/internal/auth"
	"github.com/jdmejias/perfumes-app/internal/catalog"
	"github.com/jdmejias/perfumes-app/internal/checkout"
	"github.com/jdmejias/perfumes-app/internal/users"
	"github.com/jdmejias/perfumes-app/internal/wishlist"
	"github.com/jdmejias/perfumes-app/pkg/config"
	"github.com/jdmejias/perfumes-app/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

func testConfig(env string) *config.Config {
	return &config.Config{
		App:     config.AppConfig{Env: env},
		Session: config.SessionConfig{CookieName: "luxauris_session", CookiePath: "/"},
	}
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func newRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	return httptest.NewRequest(method, target, reader)
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withUser(r *http.Request, userID uuid.UUID, accessID string) *http.Request {
	ctx := middleware.WithUserID(r.Context(), userID)
	ctx = middleware.WithAccessID(ctx, accessID)
	return r.WithContext(ctx)
}

type stubCatalog struct {
	gotFilters catalog.Filters
	gotSlug    string
	list       catalog.ListResult
	featured   []catalog.ProductListItem
	detail     *catalog.ProductDetail
	brands     []catalog.BrandDTO
	categories []catalog.CategoryDTO
	err        error
}

func (s *stubCatalog) ListProducts(_ context.Context, f catalog.Filters) (catalog.ListResult, error) {
	s.gotFilters = f
	return s.list, s.err
}

func (s *stubCatalog) FeaturedProducts(context.Context) ([]catalog.ProductListItem, error) {
	return s.featured, s.err
}

func (s *stubCatalog) GetProductBySlug(_ context.Context, slug string) (*catalog.ProductDetail, error) {
	s.gotSlug = slug
	return s.detail, s.err
}

func (s *stubCatalog) ListBrands(context.Context) ([]catalog.BrandDTO, error) {
	return s.brands, s.err
}

func (s *stubCatalog) ListCategories(context.Context) ([]catalog.CategoryDTO, error) {
	return s.categories, s.err
}

type stubAuth struct {
	result      *auth.SessionResult
	user        *users.UserDTO
	err         error
	gotRegister auth.RegisterRequest
	gotLogin    auth.LoginRequest
	revoked     string
	meUser      uuid.UUID
}

func (s *stubAuth) Register(_ context.Context, req auth.RegisterRequest) (*auth.SessionResult, error) {
	s.gotRegister = req
	return s.result, s.err
}

func (s *stubAuth) Login(_ context.Context, req auth.LoginRequest) (*auth.SessionResult, error) {
	s.gotLogin = req
	return s.result, s.err
}

func (s *stubAuth) Logout(_ context.Context, accessID string) error {
	s.revoked = accessID
	return s.err
}

func (s *stubAuth) Me(_ context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	s.meUser = userID
	return s.user, s.err
}

type stubWishlist struct {
	ids       []uuid.UUID
	products  []wishlist.WishlistProduct
	toggle    wishlist.ToggleResult
	err       error
	gotUser   uuid.UUID
	gotToggle uuid.UUID
}

func (s *stubWishlist) ListIDs(_ context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	s.gotUser = userID
	return s.ids, s.err
}

func (s *stubWishlist) Toggle(_ context.Context, userID, productID uuid.UUID) (wishlist.ToggleResult, error) {
	s.gotUser = userID
	s.gotToggle = productID
	return s.toggle, s.err
}

func (s *stubWishlist) ListProducts(_ context.Context, userID uuid.UUID) ([]wishlist.WishlistProduct, error) {
	s.gotUser = userID
	return s.products, s.err
}

type stubCheckout struct {
	quote        *checkout.Quote
	confirmation *checkout.Confirmation
	err          error
	gotQuote     checkout.QuoteRequest
	gotConfirm   checkout.ConfirmRequest
}

func (s *stubCheckout) Quote(_ context.Context, req checkout.QuoteRequest) (*checkout.Quote, error) {
	s.gotQuote = req
	return s.quote, s.err
}

func (s *stubCheckout) Confirm(_ context.Context, req checkout.ConfirmRequest) (*checkout.Confirmation, error) {
	s.gotConfirm = req
	return s.confirmation, s.err
}
