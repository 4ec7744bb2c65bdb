package handlers

import (
	"errors"
	"log"
	"net/http"

	request "distrito_racing/internal/adapter/http/dto/request"
	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/adapter/http/middleware"
	"distrito_racing/internal/usecase"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
)

// ProfileHandler handles HTTP requests for user profiles.

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// CreateMyProfile creates the caller's profile from the authenticated
// identity.
func (h *ProfileHandler) CreateMyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	p := payload.ToEntity()
	p.UserID = userID
	created, err := h.usecase.Create(c.Request.Context(), p)
	if err != nil {
		log.Printf("[profile][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProfile(created))
}

// GetMyProfile returns the caller's profile.
func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	p, err := h.usecase.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(p))
}

// UpdateMyProfile updates the caller's profile.
func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.ProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), userID, payload.ToEntity())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(updated))
}

// ListProfiles returns every profile (organizer only).
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfiles(profiles))
}

// SetProfileActive toggles a profile's active flag (organizer only).
func (h *ProfileHandler) SetProfileActive(c *gin.Context) {
	targetUserID := c.Param("user_id")

	var payload request.SetActiveRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsActive == nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	updated, err := h.usecase.SetActive(c.Request.Context(), targetUserID, *payload.IsActive)
	if err != nil {
		log.Printf("[profile][handler] set-active failed user_id=%s err=%v", targetUserID, err)
		appErr := mapProfileError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(updated))
}

func mapProfileError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProfileInput):
		return pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProfileNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
