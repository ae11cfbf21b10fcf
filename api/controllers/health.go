package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/jdmejias/perfumes-app/api/responses"
	"github.com/jdmejias/perfumes-app/pkg/config"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
	"github.com/jdmejias/perfumes-app/pkg/logger"
)

const (
	envHeader    = "X-Luxauris-Env"
	readyTimeout = 2 * time.Second
)

// Pinger is any dependency whose reachability gates readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every dependency and fails with DEPENDENCY_ERROR listing
// the ones that did not answer.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		checks := make(map[string]string, len(deps))
		var firstErr error
		for name, dep := range deps {
			if dep == nil {
				checks[name] = "missing"
				if firstErr == nil {
					firstErr = pkgerrors.New(pkgerrors.CodeDependency, name+" not configured")
				}
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				checks[name] = "down"
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			checks[name] = "ok"
		}

		if firstErr != nil {
			err := pkgerrors.Wrap(pkgerrors.CodeDependency, firstErr, "dependencies unavailable").
				WithDetails(map[string]any{"checks": checks})
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]any{"status": "ready", "checks": checks})
	}
}
