package controllers

import (
	"net/http"

	"github.com/jdmejias/perfumes-app/api/middleware"
	"github.com/jdmejias/perfumes-app/api/responses"
	"github.com/jdmejias/perfumes-app/api/validators"
	"github.com/jdmejias/perfumes-app/internal/wishlist"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
	"github.com/jdmejias/perfumes-app/pkg/logger"
)

func wishlistUnavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "wishlist service unavailable")
}

// WishlistIDs lists the caller's saved product ids; anonymous callers get [].
func WishlistIDs(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, wishlistUnavailable())
			return
		}
		ids, err := svc.ListIDs(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, ids)
	}
}

func WishlistToggle(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, wishlistUnavailable())
			return
		}

		var body wishlist.ToggleRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Toggle(r.Context(), middleware.UserIDFromContext(r.Context()), body.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if logg != nil {
			ctx := logg.WithFields(r.Context(), map[string]any{
				"product_id": body.ProductID.String(),
				"added":      result.Added,
			})
			logg.Info(ctx, "wishlist.toggle")
		}
		responses.WriteSuccess(w, result)
	}
}

func WishlistProducts(svc wishlist.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, wishlistUnavailable())
			return
		}
		products, err := svc.ListProducts(r.Context(), middleware.UserIDFromContext(r.Context()))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, products)
	}
}
