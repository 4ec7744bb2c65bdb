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
	errInvalidCarPayload = pkg.NewDomainErrorSimple("INVALID_CAR_INPUT", "Invalid car payload", http.StatusBadRequest)
)

// CarHandler handles HTTP requests for the caller's vehicles.

type CarHandler struct {
	usecase usecase.ICarUseCase
}

func NewCarHandler(uc usecase.ICarUseCase) *CarHandler {
	return &CarHandler{usecase: uc}
}

func (h *CarHandler) CreateCar(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.CarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCarPayload.HTTPStatus, errInvalidCarPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), userID, payload.ToEntity())
	if err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCar(created))
}

func (h *CarHandler) ListMyCars(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	cars, err := h.usecase.ListByUser(c.Request.Context(), userID)
	if err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCars(cars))
}

func (h *CarHandler) UpdateCar(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.CarRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCarPayload.HTTPStatus, errInvalidCarPayload.ToHTTPError())
		return
	}

	car := payload.ToEntity()
	car.ID = c.Param("car_id")
	updated, err := h.usecase.Update(c.Request.Context(), userID, car)
	if err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCar(updated))
}

func (h *CarHandler) DeleteCar(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	if err := h.usecase.Delete(c.Request.Context(), userID, c.Param("car_id")); err != nil {
		appErr := mapCarError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCarError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCarInput):
		return pkg.NewDomainErrorSimple("INVALID_CAR_INPUT", "Invalid car payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCarNotFound):
		return pkg.NewDomainErrorSimple("CAR_NOT_FOUND", "Car not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
