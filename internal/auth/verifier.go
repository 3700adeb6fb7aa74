package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nandhinijey/ClientFlow/internal/config"
	"github.com/nandhinijey/ClientFlow/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken marks a token the identity provider rejected (malformed,
// expired, or revoked). Any other verification error means the provider
// itself failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier verifies a bearer token and returns the identity it proves.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*model.AuthUser, error)
}

// SupabaseVerifier verifies tokens issued by a Supabase project. When a JWT
// secret is configured the signature is checked locally, avoiding a network
// round trip; otherwise the token is submitted to the provider's user endpoint.
type SupabaseVerifier struct {
	cfg    config.AuthConfig
	client *http.Client
}

// NewSupabaseVerifier creates a verifier for the configured project.
func NewSupabaseVerifier(cfg config.AuthConfig) *SupabaseVerifier {
	return &SupabaseVerifier{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Verify checks the token and returns the authenticated user.
func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*model.AuthUser, error) {
	if v.cfg.JWTSecret != "" {
		if user, err := v.verifyLocal(token); err == nil {
			return user, nil
		}
	}
	return v.verifyRemote(ctx, token)
}

// verifyLocal checks the token signature with the shared JWT secret.
func (v *SupabaseVerifier) verifyLocal(token string) (*model.AuthUser, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	user := &model.AuthUser{
		ID:    stringClaim(claims, "sub"),
		Email: stringClaim(claims, "email"),
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: token carries no email claim", ErrInvalidToken)
	}
	return user, nil
}

// verifyRemote submits the token to the provider's user endpoint.
func (v *SupabaseVerifier) verifyRemote(ctx context.Context, token string) (*model.AuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.cfg.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build verification request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.cfg.AnonKey)

	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach identity provider: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrInvalidToken, strings.TrimSpace(string(body)))
	default:
		return nil, fmt.Errorf("identity provider returned status %d", resp.StatusCode)
	}

	var user model.AuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode identity provider response: %w", err)
	}
	if user.Email == "" {
		return nil, fmt.Errorf("%w: verified user has no email", ErrInvalidToken)
	}
	return &user, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
