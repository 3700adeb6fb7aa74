package model

// AuthUser is the verified identity the auth gate attaches to the request
// context. The ID is the identity provider's subject, not a row in this
// system's store.
type AuthUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
