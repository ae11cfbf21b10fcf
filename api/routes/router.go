package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jdmejias/perfumes-app/api/controllers"
	"github.com/jdmejias/perfumes-app/api/middleware"
	"github.com/jdmejias/perfumes-app/internal/auth"
	"github.com/jdmejias/perfumes-app/internal/catalog"
	"github.com/jdmejias/perfumes-app/internal/checkout"
	"github.com/jdmejias/perfumes-app/internal/wishlist"
	"github.com/jdmejias/perfumes-app/pkg/auth/session"
	"github.com/jdmejias/perfumes-app/pkg/config"
	"github.com/jdmejias/perfumes-app/pkg/logger"
	"github.com/jdmejias/perfumes-app/pkg/metrics"
)

// RateLimiter is the fixed-window counter used by the auth endpoints.
type RateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// Dependencies groups everything the router wires into handlers.
type Dependencies struct {
	Config   *config.Config
	Logger   *logger.Logger
	Sessions session.AccessSessionChecker
	Limiter  RateLimiter
	Ready    map[string]controllers.Pinger

	Catalog  catalog.Service
	Auth     auth.Service
	Wishlist wishlist.Service
	Checkout checkout.Service

	HTTPMetrics    *metrics.HTTPMetrics
	MetricsHandler http.Handler
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
		cfg.AuthRateLimit.RegisterEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Ready))
	})
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}

	requireAuth := middleware.Auth(cfg, deps.Sessions, logg)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.OptionalAuth(cfg, deps.Sessions, logg))

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ProductsList(deps.Catalog, logg))
			r.Get("/"+catalog.FeaturedSlug, controllers.ProductsFeatured(deps.Catalog, logg))
			r.Get("/{slug}", controllers.ProductBySlug(deps.Catalog, logg))
		})
		r.Get("/brands", controllers.BrandsList(deps.Catalog, logg))
		r.Get("/categories", controllers.CategoriesList(deps.Catalog, logg))

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(registerPolicy, deps.Limiter, logg)).Post("/register", controllers.AuthRegister(deps.Auth, cfg, logg))
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Limiter, logg)).Post("/login", controllers.AuthLogin(deps.Auth, cfg, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Auth, cfg, logg))
			r.With(requireAuth).Get("/me", controllers.AuthMe(deps.Auth, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistIDs(deps.Wishlist, logg))
			r.With(requireAuth).Post("/", controllers.WishlistToggle(deps.Wishlist, logg))
			r.Get("/products", controllers.WishlistProducts(deps.Wishlist, logg))
		})

		r.Post("/cart/quote", controllers.CartQuote(deps.Checkout, logg))
		r.Post("/checkout/confirm", controllers.CheckoutConfirm(deps.Checkout, logg))
	})

	return r
}
