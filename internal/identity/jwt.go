package identity

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var _ Provider = (*JWTProvider)(nil)

// JWTProvider resolves HS256 access tokens issued by the identity service.
// The token subject is the owner identifier.
type JWTProvider struct {
	secret []byte
}

// NewJWTProvider creates a JWTProvider. secret must match the signing key of
// the identity service.
func NewJWTProvider(secret string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret)}
}

func (p *JWTProvider) Resolve(_ context.Context, tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", ErrUnauthenticated
	}

	return claims.Subject, nil
}
