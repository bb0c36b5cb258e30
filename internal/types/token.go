package types

// TokenClaims carries the caller identity extracted from a validated
// bearer token.
type TokenClaims struct {
	UserID uint `json:"user_id"`
}
