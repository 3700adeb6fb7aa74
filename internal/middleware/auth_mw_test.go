package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nandhinijey/ClientFlow/internal/auth"
	"github.com/nandhinijey/ClientFlow/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	user *model.AuthUser
	err  error
}

func (f *fakeVerifier) Verify(ctx context.Context, token string) (*model.AuthUser, error) {
	return f.user, f.err
}

type fakeAllowlist struct {
	allowed map[string]bool
	err     error
}

func (f *fakeAllowlist) IsAllowed(ctx context.Context, email string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.allowed[email], nil
}

func gateRequest(t *testing.T, verifier auth.TokenVerifier, allowlist *fakeAllowlist, authHeader string) (*httptest.ResponseRecorder, *model.AuthUser) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var seen *model.AuthUser
	router := gin.New()
	router.GET("/clients", AuthGate(verifier, allowlist), func(c *gin.Context) {
		seen = GetAuthUser(c)
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthGate_MissingHeader(t *testing.T) {
	rec, _ := gateRequest(t, &fakeVerifier{}, &fakeAllowlist{}, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthenticated")
}

func TestAuthGate_MalformedHeader(t *testing.T) {
	rec, _ := gateRequest(t, &fakeVerifier{}, &fakeAllowlist{}, "Token abc")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthGate_InvalidToken(t *testing.T) {
	verifier := &fakeVerifier{err: auth.ErrInvalidToken}
	rec, _ := gateRequest(t, verifier, &fakeAllowlist{}, "Bearer bad")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "unauthenticated")
}

func TestAuthGate_VerifierFailure(t *testing.T) {
	verifier := &fakeVerifier{err: errors.New("identity provider unreachable")}
	rec, _ := gateRequest(t, verifier, &fakeAllowlist{}, "Bearer any")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthGate_NotAllowlisted(t *testing.T) {
	verifier := &fakeVerifier{user: &model.AuthUser{ID: "u1", Email: "stranger@x.com"}}
	allowlist := &fakeAllowlist{allowed: map[string]bool{"jane@x.com": true}}
	rec, _ := gateRequest(t, verifier, allowlist, "Bearer good")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "forbidden")
}

func TestAuthGate_AllowlistFailure(t *testing.T) {
	verifier := &fakeVerifier{user: &model.AuthUser{ID: "u1", Email: "jane@x.com"}}
	allowlist := &fakeAllowlist{err: errors.New("db down")}
	rec, _ := gateRequest(t, verifier, allowlist, "Bearer good")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestAuthGate_Allowed(t *testing.T) {
	// The verified email is lowercased before the allow-list lookup
	verifier := &fakeVerifier{user: &model.AuthUser{ID: "u1", Email: "Jane@X.com"}}
	allowlist := &fakeAllowlist{allowed: map[string]bool{"jane@x.com": true}}
	rec, seen := gateRequest(t, verifier, allowlist, "Bearer good")

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "u1", seen.ID)
	assert.Equal(t, "jane@x.com", seen.Email)
}
