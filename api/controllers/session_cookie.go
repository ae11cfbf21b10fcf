package controllers

import (
	"net/http"
	"time"

	"github.com/jdmejias/perfumes-app/api/middleware"
	"github.com/jdmejias/perfumes-app/pkg/config"
)

// setSessionCookie delivers the token as an HttpOnly cookie and echoes it in
// the session header for non-browser clients.
func setSessionCookie(w http.ResponseWriter, cfg *config.Config, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    token,
		Path:     cookiePath(cfg),
		Expires:  expiresAt,
		MaxAge:   int(time.Until(expiresAt).Seconds()),
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(middleware.SessionTokenHeader, token)
}

func clearSessionCookie(w http.ResponseWriter, cfg *config.Config) {
	http.SetCookie(w, &http.Cookie{
		Name:     cfg.Session.CookieName,
		Value:    "",
		Path:     cookiePath(cfg),
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   cfg.App.IsProd(),
		SameSite: http.SameSiteLaxMode,
	})
}

func cookiePath(cfg *config.Config) string {
	if cfg.Session.CookiePath == "" {
		return "/"
	}
	return cfg.Session.CookiePath
}
