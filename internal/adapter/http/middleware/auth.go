package middleware

import (
	"log"
	"net/http"
	"strings"

	"distrito_racing/internal/usecase/interfaces"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID    = "userID"
	ContextUserEmail = "userEmail"
)

// RequireAuth validates the bearer token and stores the resolved identity on
// the request context. Requests without a valid token never reach handlers.
func RequireAuth(verifier interfaces.ITokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortUnauthorized(c)
			return
		}

		user, err := verifier.Verify(c.Request.Context(), token)
		if err != nil {
			log.Printf("[auth][middleware] token rejected path=%s err=%v", c.FullPath(), err)
			abortUnauthorized(c)
			return
		}

		c.Set(ContextUserID, user.UserID)
		c.Set(ContextUserEmail, user.Email)
		c.Next()
	}
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func abortUnauthorized(c *gin.Context) {
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
