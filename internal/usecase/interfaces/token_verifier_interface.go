package interfaces

import "context"

// AuthenticatedUser is the identity resolved from a bearer token. The core
// only ever consumes this projection; token verification itself is an
// external collaborator.
type AuthenticatedUser struct {
	UserID string
	Email  string
}

// ITokenVerifier validates an incoming bearer token.

type ITokenVerifier interface {
	Verify(ctx context.Context, token string) (AuthenticatedUser, error)
}
