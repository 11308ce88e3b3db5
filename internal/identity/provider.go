// Package identity resolves an authenticated caller to an opaque owner
// identifier. The rest of the server treats that identifier as the sole
// tenancy boundary and never inspects its structure.
package identity

import (
	"context"
	"errors"
)

// ErrUnauthenticated is returned when a token is missing, malformed,
// expired, or otherwise not attributable to a principal.
var ErrUnauthenticated = errors.New("unauthenticated")

// Provider yields a stable owner identifier for a bearer token.
type Provider interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// Static maps fixed tokens to owner identifiers. Test use only.
type Static map[string]string

func (s Static) Resolve(_ context.Context, token string) (string, error) {
	ownerID, ok := s[token]
	if !ok {
		return "", ErrUnauthenticated
	}
	return ownerID, nil
}
