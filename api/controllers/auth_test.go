package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdmejias/perfumes-app/api/middleware"
	"github.com/jdmejias/perfumes-app/internal/auth"
	"github.com/jdmejias/perfumes-app/internal/users"
	pkgerrors "github.com/jdmejias/perfumes-app/pkg/errors"
)

func sessionResult() *auth.SessionResult {
	return &auth.SessionResult{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(7 * 24 * time.Hour),
		User:      &users.UserDTO{ID: uuid.New(), Email: "ana@example.com"},
	}
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "luxauris_session" {
			return c
		}
	}
	return nil
}

func TestAuthRegisterSetsSession(t *testing.T) {
	stub := &stubAuth{result: sessionResult()}
	rec := httptest.NewRecorder()
	req := newRequest(http.MethodPost, "/api/v1/auth/register", `{"name":"Ana","email":"ana@example.com","password":"secret1"}`)
	AuthRegister(stub, testConfig("dev"), testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "ana@example.com", stub.gotRegister.Email)
	assert.Equal(t, "signed.jwt.token", rec.Header().Get(middleware.SessionTokenHeader))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Equal(t, "signed.jwt.token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.False(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	assert.NotContains(t, rec.Body.String(), "signed.jwt.token")
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Contains(t, body, "user")
	assert.Contains(t, body, "expiresAt")
}

func TestAuthRegisterValidatesBody(t *testing.T) {
	stub := &stubAuth{result: sessionResult()}
	rec := httptest.NewRecorder()
	req := newRequest(http.MethodPost, "/api/v1/auth/register", `{"email":"not-an-email","password":"123"}`)
	AuthRegister(stub, testConfig("dev"), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "must be a valid email", env.Error.Details["email"])
	assert.Equal(t, "must be at least 6", env.Error.Details["password"])
	assert.Empty(t, stub.gotRegister.Email)
}

func TestAuthRegisterConflict(t *testing.T) {
	stub := &stubAuth{err: pkgerrors.New(pkgerrors.CodeConflict, "email already registered")}
	rec := httptest.NewRecorder()
	req := newRequest(http.MethodPost, "/api/v1/auth/register", `{"email":"ana@example.com","password":"secret1"}`)
	AuthRegister(stub, testConfig("dev"), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthLoginSecureCookieInProd(t *testing.T) {
	stub := &stubAuth{result: sessionResult()}
	rec := httptest.NewRecorder()
	req := newRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"secret1"}`)
	AuthLogin(stub, testConfig("prod"), testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.Secure)
}

func TestAuthLoginInvalidCredentials(t *testing.T) {
	stub := &stubAuth{err: pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")}
	rec := httptest.NewRecorder()
	req := newRequest(http.MethodPost, "/api/v1/auth/login", `{"email":"ana@example.com","password":"wrong"}`)
	AuthLogin(stub, testConfig("dev"), testLogger()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", decodeEnvelope(t, rec).Error.Message)
	assert.Nil(t, sessionCookie(rec))
}

func TestAuthLogoutRevokesAndClears(t *testing.T) {
	stub := &stubAuth{}
	rec := httptest.NewRecorder()
	req := withUser(newRequest(http.MethodPost, "/api/v1/auth/logout", ""), uuid.New(), "access-9")
	AuthLogout(stub, testConfig("dev"), nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "access-9", stub.revoked)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.Less(t, cookie.MaxAge, 0)
}

func TestAuthLogoutPropagatesStoreFailure(t *testing.T) {
	stub := &stubAuth{err: pkgerrors.Wrap(pkgerrors.CodeDependency, errors.New("redis down"), "revoke session")}
	rec := httptest.NewRecorder()
	req := withUser(newRequest(http.MethodPost, "/api/v1/auth/logout", ""), uuid.New(), "access-9")
	AuthLogout(stub, testConfig("dev"), nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestAuthMe(t *testing.T) {
	userID := uuid.New()
	stub := &stubAuth{user: &users.UserDTO{ID: userID, Email: "ana@example.com"}}

	rec := httptest.NewRecorder()
	AuthMe(stub, nil).ServeHTTP(rec, withUser(newRequest(http.MethodGet, "/api/v1/auth/me", ""), userID, "a"))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, stub.meUser)

	var body struct {
		User users.UserDTO `json:"user"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Equal(t, "ana@example.com", body.User.Email)

	rec = httptest.NewRecorder()
	AuthMe(stub, nil).ServeHTTP(rec, newRequest(http.MethodGet, "/api/v1/auth/me", ""))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
