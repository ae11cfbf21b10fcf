package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdmejias/perfumes-app/pkg/auth"
	"github.com/jdmejias/perfumes-app/pkg/config"
)

type stubSessionVerifier struct {
	ok  bool
	err error
}

func (s stubSessionVerifier) HasSession(context.Context, string) (bool, error) {
	return s.ok, s.err
}

func testConfig() *config.Config {
	return &config.Config{
		JWT:     config.JWTConfig{Secret: "secret", Issuer: "luxauris", ExpirationMinutes: 60},
		Session: config.SessionConfig{CookieName: "luxauris_session", CookiePath: "/"},
	}
}

func mintTestToken(t *testing.T, cfg *config.Config, userID uuid.UUID) string {
	t.Helper()
	token, _, err := auth.MintAccessToken(cfg.JWT, time.Now(), auth.AccessTokenPayload{
		UserID: userID,
		Email:  "ana@example.com",
		JTI:    "access-1",
	})
	require.NoError(t, err)
	return token
}

type captured struct {
	called   bool
	userID   uuid.UUID
	accessID string
	email    string
}

func captureHandler(c *captured) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.userID = UserIDFromContext(r.Context())
		c.accessID = AccessIDFromContext(r.Context())
		c.email = EmailFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	var c captured
	handler := Auth(testConfig(), stubSessionVerifier{ok: true}, nil)(captureHandler(&c))

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.False(t, c.called)
}

func TestAuthRejectsInvalidToken(t *testing.T) {
	var c captured
	handler := Auth(testConfig(), stubSessionVerifier{ok: true}, nil)(captureHandler(&c))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer invalid")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.False(t, c.called)
}

func TestAuthAcceptsEveryTokenCarrier(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()
	token := mintTestToken(t, cfg, userID)

	tests := map[string]func(*http.Request){
		"bearer": func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
		"header": func(r *http.Request) { r.Header.Set(SessionTokenHeader, token) },
		"cookie": func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "luxauris_session", Value: token}) },
	}
	for name, apply := range tests {
		t.Run(name, func(t *testing.T) {
			var c captured
			handler := Auth(cfg, stubSessionVerifier{ok: true}, nil)(captureHandler(&c))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			apply(req)
			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)
			assert.Equal(t, userID, c.userID)
			assert.Equal(t, "access-1", c.accessID)
			assert.Equal(t, "ana@example.com", c.email)
		})
	}
}

func TestAuthRejectsRevokedSession(t *testing.T) {
	cfg := testConfig()
	token := mintTestToken(t, cfg, uuid.New())

	var c captured
	handler := Auth(cfg, stubSessionVerifier{ok: false}, nil)(captureHandler(&c))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.False(t, c.called)
}

func TestAuthSessionStoreFailureIsDependencyError(t *testing.T) {
	cfg := testConfig()
	token := mintTestToken(t, cfg, uuid.New())

	var c captured
	handler := Auth(cfg, stubSessionVerifier{err: errors.New("redis down")}, nil)(captureHandler(&c))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusServiceUnavailable, resp.Code)
}

func TestOptionalAuthFallsBackToAnonymous(t *testing.T) {
	cfg := testConfig()

	cases := map[string]struct {
		token    string
		verifier stubSessionVerifier
	}{
		"no token":      {},
		"garbage token": {token: "garbage", verifier: stubSessionVerifier{ok: true}},
		"revoked":       {token: mintTestToken(t, cfg, uuid.New()), verifier: stubSessionVerifier{ok: false}},
		"store down":    {token: mintTestToken(t, cfg, uuid.New()), verifier: stubSessionVerifier{err: errors.New("down")}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var c captured
			handler := OptionalAuth(cfg, tc.verifier, nil)(captureHandler(&c))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.token != "" {
				req.Header.Set(SessionTokenHeader, tc.token)
			}
			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, req)

			require.Equal(t, http.StatusOK, resp.Code)
			assert.True(t, c.called)
			assert.Equal(t, uuid.Nil, c.userID)
		})
	}
}

func TestOptionalAuthAttachesValidSession(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	var c captured
	handler := OptionalAuth(cfg, stubSessionVerifier{ok: true}, nil)(captureHandler(&c))
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "luxauris_session", Value: mintTestToken(t, cfg, userID)})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, userID, c.userID)
}
