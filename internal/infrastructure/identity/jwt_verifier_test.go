package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return token
}

func TestNewJWTVerifierFromEnv(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "")
		if _, err := NewJWTVerifierFromEnv(); !errors.Is(err, ErrMissingJWTSecret) {
			t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
		}
	})

	t.Run("secret configured", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "topsecret")
		v, err := NewJWTVerifierFromEnv()
		if err != nil || v == nil {
			t.Fatalf("unexpected result v=%v err=%v", v, err)
		}
	})
}

func TestJWTVerifier_Verify(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "topsecret")
	v, err := NewJWTVerifierFromEnv()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("valid token", func(t *testing.T) {
		token := signToken(t, "topsecret", jwt.MapClaims{
			"sub":   "user-1",
			"email": "x@test.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})

		user, err := v.Verify(context.Background(), token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.UserID != "user-1" || user.Email != "x@test.com" {
			t.Fatalf("unexpected user: %+v", user)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token := signToken(t, "othersecret", jwt.MapClaims{"sub": "user-1"})

		if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, "topsecret", jwt.MapClaims{
			"sub": "user-1",
			"exp": time.Now().Add(-time.Hour).Unix(),
		})

		if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		token := signToken(t, "topsecret", jwt.MapClaims{"email": "x@test.com"})

		if _, err := v.Verify(context.Background(), token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": "user-1"})
		signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
		if err != nil {
			t.Fatalf("sign failed: %v", err)
		}

		if _, err := v.Verify(context.Background(), signed); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := v.Verify(context.Background(), "not-a-jwt"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})
}
