package clientsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the ClientFlow API and its identity provider.
type SDKClient struct {
	// BaseURL is the ClientFlow API server.
	BaseURL string
	// AuthURL is the identity provider (a Supabase project URL).
	AuthURL string
	// AnonKey is the provider's public API key, sent on token requests.
	AnonKey string

	HTTPClient *http.Client
}

// New creates a new ClientFlow SDK client.
func New(baseURL, authURL, anonKey string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		AuthURL: strings.TrimSuffix(authURL, "/"),
		AnonKey: anonKey,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SignIn authenticates with the identity provider using the password grant
// and returns a session that refreshes itself.
func (c *SDKClient) SignIn(ctx context.Context, email, password string) (*Session, error) {
	body, err := json.Marshal(map[string]string{"email": email, "password": password})
	if err != nil {
		return nil, fmt.Errorf("failed to encode credentials: %w", err)
	}

	tokenResp, err := c.tokenGrant(ctx, "password", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	return newSession(c, tokenResp), nil
}

// NewSessionFromTokens creates a session from tokens obtained elsewhere
// (e.g., persisted from a previous sign-in). The session still auto-refreshes
// when the access token expires.
func (c *SDKClient) NewSessionFromTokens(accessToken, refreshToken string, expiresIn int) *Session {
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second)
	expiresAt = expiresAt.Add(-30 * time.Second) // refresh before actual expiry

	return &Session{
		client:       c,
		accessToken:  accessToken,
		refreshToken: refreshToken,
		expiresAt:    expiresAt,
	}
}

// tokenGrant posts to the provider's token endpoint with the given grant type.
func (c *SDKClient) tokenGrant(ctx context.Context, grantType string, body *bytes.Reader) (*TokenResponse, error) {
	url := c.AuthURL + "/auth/v1/token?grant_type=" + grantType
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apikey", c.AnonKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send token request: %w", err)
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}
	return &tokenResp, nil
}
