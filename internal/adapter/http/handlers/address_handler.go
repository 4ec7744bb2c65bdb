package handlers

import (
	"errors"
	"net/http"

	request "distrito_racing/internal/adapter/http/dto/request"
	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/adapter/http/middleware"
	"distrito_racing/internal/usecase"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidAddressPayload = pkg.NewDomainErrorSimple("INVALID_ADDRESS_INPUT", "Invalid address payload", http.StatusBadRequest)
)

// AddressHandler handles HTTP requests for the caller's mailing addresses.

type AddressHandler struct {
	usecase usecase.IAddressUseCase
}

func NewAddressHandler(uc usecase.IAddressUseCase) *AddressHandler {
	return &AddressHandler{usecase: uc}
}

func (h *AddressHandler) CreateAddress(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), userID, payload.ToEntity())
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAddress(created))
}

func (h *AddressHandler) ListMyAddresses(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	addresses, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddresses(addresses))
}

func (h *AddressHandler) UpdateAddress(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.AddressRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAddressPayload.HTTPStatus, errInvalidAddressPayload.ToHTTPError())
		return
	}

	addr := payload.ToEntity()
	addr.ID = c.Param("address_id")
	updated, err := h.usecase.Update(c.Request.Context(), userID, addr)
	if err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAddress(updated))
}

func (h *AddressHandler) DeleteAddress(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.usecase.Delete(c.Request.Context(), userID, c.Param("address_id")); err != nil {
		appErr := mapAddressError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapAddressError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidAddressInput):
		return pkg.NewDomainErrorSimple("INVALID_ADDRESS_INPUT", "Invalid address payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAddressNotFound):
		return pkg.NewDomainErrorSimple("ADDRESS_NOT_FOUND", "Address not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
