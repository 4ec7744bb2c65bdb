package middleware

import (
	"log"
	"net/http"

	"distrito_racing/internal/usecase"
	"distrito_racing/internal/usecase/interfaces"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

// RequireCapability runs after RequireAuth and gates the route on the single
// policy-evaluation step. The caller's profile is the policy input; no profile
// means no capability.
func RequireCapability(profileRepo interfaces.IProfileRepository, action usecase.Action, resource usecase.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(ContextUserID)

		profile, err := profileRepo.GetByUserID(c.Request.Context(), userID)
		if err != nil {
			log.Printf("[auth][middleware] profile lookup failed user_id=%s err=%v", userID, err)
			appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		if profile.UserID == "" || !usecase.Authorize(profile, action, resource) {
			log.Printf("[auth][middleware] capability denied user_id=%s action=%s resource=%s", userID, action, resource)
			appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Insufficient permissions", http.StatusForbidden)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.Next()
	}
}
