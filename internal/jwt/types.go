package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Claims represents the session token claims. The account id travels in
// the registered Subject claim; no other custom claims are needed.
type Claims struct {
	jwt.RegisteredClaims
}

// Service provides session token generation and validation using a
// process-wide HMAC secret. Rotating the secret invalidates all
// outstanding tokens.
type Service struct {
	secret []byte
	issuer string
	expiry time.Duration
}
