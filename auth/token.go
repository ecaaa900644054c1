package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid. Tokens are
// stateless; there is no revocation list.
const TokenTTL = 2 * time.Hour

// Claims are the session token contents: the admin's id and username.
type Claims struct {
	AdminID  string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenSigner struct {
	secret []byte
	now    func() time.Time
}

func NewTokenSigner(secret []byte) *TokenSigner {
	return &TokenSigner{
		secret: secret,
		now:    time.Now,
	}
}

func (s *TokenSigner) Issue(adminID string, username string) (string, error) {
	now := s.now()
	claims := Claims{
		AdminID:  adminID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate checks the signature and expiry only; nothing is looked up.
func (s *TokenSigner) Validate(token string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{},
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return Claims{}, NewInvalidTokenError("Token is invalid or expired", err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return Claims{}, NewInvalidTokenError("Token carries unexpected claims", nil)
	}

	return *claims, nil
}
