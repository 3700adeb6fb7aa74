package config

import (
	"fmt"
	"os"
	"strings"
)

// AuthConfig holds identity-provider settings. JWTSecret is optional: when
// set, tokens are verified locally before falling back to the provider's API.
type AuthConfig struct {
	URL       string
	AnonKey   string
	JWTSecret string
}

// LoadAuthConfig loads identity-provider configuration from environment variables
func LoadAuthConfig() (*AuthConfig, error) {
	cfg := &AuthConfig{
		URL:       os.Getenv("SUPABASE_URL"),
		AnonKey:   os.Getenv("SUPABASE_ANON_KEY"),
		JWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
	}
	if cfg.URL == "" {
		return nil, fmt.Errorf("SUPABASE_URL not set in environment")
	}
	return cfg, nil
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

// LoadServerConfig loads server configuration from environment variables.
// CORS_ORIGINS is a comma-separated list; empty means allow all.
func LoadServerConfig() *ServerConfig {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080" // Default port
	}

	var origins []string
	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}

	return &ServerConfig{Port: port, CORSOrigins: origins}
}
