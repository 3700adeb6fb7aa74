package middleware

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/nandhinijey/ClientFlow/internal/auth"
	"github.com/nandhinijey/ClientFlow/internal/model"
	"github.com/nandhinijey/ClientFlow/internal/repository"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"
)

// AuthGate creates the authentication middleware applied to all record
// endpoints: extract the bearer token, verify it with the identity provider,
// then check the verified email against the allow-list. Every request
// re-verifies and re-queries; verification results are not cached.
func AuthGate(verifier auth.TokenVerifier, allowlist repository.AllowlistRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			return
		}

		user, err := verifier.Verify(c.Request.Context(), parts[1])
		if err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
				return
			}
			log.Printf("Error verifying token: %v", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication check failed"})
			return
		}

		email := strings.ToLower(user.Email)
		allowed, err := allowlist.IsAllowed(c.Request.Context(), email)
		if err != nil {
			log.Printf("Error checking allow-list for %s: %v", email, err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "authentication check failed"})
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}

		c.Set(AuthUserKey, &model.AuthUser{ID: user.ID, Email: email})
		c.Next()
	}
}

// GetAuthUser returns the identity the gate attached, or nil outside the gate.
func GetAuthUser(c *gin.Context) *model.AuthUser {
	if v, exists := c.Get(AuthUserKey); exists {
		if user, ok := v.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}
