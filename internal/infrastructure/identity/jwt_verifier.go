package identity

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"distrito_racing/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMissingJWTSecret = errors.New("missing AUTH_JWT_SECRET")
var ErrInvalidToken = errors.New("invalid token")

// JWTVerifier validates HS256 bearer tokens issued by the auth provider and
// projects the claims the service cares about.
type JWTVerifier struct {
	secret []byte
}

var _ interfaces.ITokenVerifier = (*JWTVerifier)(nil)

func NewJWTVerifierFromEnv() (*JWTVerifier, error) {
	secret := os.Getenv("AUTH_JWT_SECRET")
	if secret == "" {
		log.Printf("[identity][jwt] missing AUTH_JWT_SECRET")
		return nil, ErrMissingJWTSecret
	}
	return &JWTVerifier{secret: []byte(secret)}, nil
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (interfaces.AuthenticatedUser, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return interfaces.AuthenticatedUser{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return interfaces.AuthenticatedUser{}, ErrInvalidToken
	}

	return interfaces.AuthenticatedUser{
		UserID: claims.Subject,
		Email:  claims.Email,
	}, nil
}
