package controllers

import (
	"net/http"

	"github.com/jdmejias/perfumes-app/api/responses"
	"github.com/jdmejias/perfumes-app/api/validators"
	"github.com/jdmejias/perfumes-app/internal/checkout"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
	"github.com/jdmejias/perfumes-app/pkg/logger"
)

func checkoutUnavailable() error {
	return pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable")
}

// CartQuote re-prices the submitted cart lines.
func CartQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, checkoutUnavailable())
			return
		}

		var body checkout.QuoteRequest
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quote, err := svc.Quote(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// CheckoutConfirm leaves customer validation to the service so field errors
// come back keyed as customer.<field>.
func CheckoutConfirm(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, checkoutUnavailable())
			return
		}

		var body checkout.ConfirmRequest
		if err := validators.DecodeJSON(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Confirm(r.Context(), body)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}
