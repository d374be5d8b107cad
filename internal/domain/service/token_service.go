// Package service defines interfaces for infrastructure services consumed by
// the application layer.
package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenService validates access tokens issued by the external identity
// provider. Token issuance is not this system's responsibility; the search
// core only needs a resolved user ID before any gate check.
type TokenService interface {
	// ValidateAccessToken checks the validity of an access token string and
	// returns the parsed token on success.
	ValidateAccessToken(tokenString string) (*jwt.Token, error)
}
