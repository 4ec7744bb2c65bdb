package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"distrito_racing/internal/domain/entities"
	"distrito_racing/internal/usecase"
	"distrito_racing/internal/usecase/interfaces"
	mock_interfaces "distrito_racing/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func entitiesProfile(role string) entities.Profile {
	if role == "" {
		return entities.Profile{}
	}
	return entities.Profile{UserID: "user-1", Role: entities.Role(role), IsActive: true}
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(verifier interfaces.ITokenVerifier) *gin.Engine {
		r := gin.New()
		r.GET("/protected", RequireAuth(verifier), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"user_id": c.GetString(ContextUserID),
				"email":   c.GetString(ContextUserEmail),
			})
		})
		return r
	}

	t.Run("missing header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		r := newRouter(verifier)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		r := newRouter(verifier)

		for _, header := range []string{"token-without-scheme", "Basic abc", "Bearer "} {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			req.Header.Set("Authorization", header)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Fatalf("header %q: expected 401, got %d", header, w.Code)
			}
		}
	})

	t.Run("rejected token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		r := newRouter(verifier)

		verifier.EXPECT().Verify(gomock.Any(), "bad-token").Return(interfaces.AuthenticatedUser{}, errors.New("invalid token"))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("valid token populates context", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		verifier := mock_interfaces.NewMockITokenVerifier(ctrl)
		r := newRouter(verifier)

		verifier.EXPECT().Verify(gomock.Any(), "good-token").Return(interfaces.AuthenticatedUser{UserID: "user-1", Email: "x@test.com"}, nil)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "bearer good-token")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if body := w.Body.String(); body != `{"email":"x@test.com","user_id":"user-1"}` {
			t.Fatalf("unexpected body: %s", body)
		}
	})
}

func TestRequireCapability(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(profileRepo interfaces.IProfileRepository, userID string) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) { c.Set(ContextUserID, userID) })
		r.GET("/admin", RequireCapability(profileRepo, usecase.ActionManage, usecase.ResourceEvents), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("profile lookup failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profileRepo := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := newRouter(profileRepo, "user-1")

		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entitiesProfile(""), errors.New("db"))

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profileRepo := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := newRouter(profileRepo, "user-1")

		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entitiesProfile(""), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("non-admin denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profileRepo := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := newRouter(profileRepo, "user-1")

		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entitiesProfile("user"), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("admin allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		profileRepo := mock_interfaces.NewMockIProfileRepository(ctrl)
		r := newRouter(profileRepo, "user-1")

		profileRepo.EXPECT().GetByUserID(gomock.Any(), "user-1").Return(entitiesProfile("admin"), nil)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
