package handlers

import (
	"errors"
	"log"
	"net/http"

	request "distrito_racing/internal/adapter/http/dto/request"
	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/usecase"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEventPayload = pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)
)

// EventHandler handles HTTP requests for events.

type EventHandler struct {
	usecase usecase.IEventUseCase
}

func NewEventHandler(uc usecase.IEventUseCase) *EventHandler {
	return &EventHandler{usecase: uc}
}

func (h *EventHandler) CreateEvent(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[event][handler] create failed title=%q err=%v", payload.Title, err)
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromEvent(created))
}

func (h *EventHandler) GetEvent(c *gin.Context) {
	e, err := h.usecase.GetByID(c.Request.Context(), c.Param("event_id"))
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(e))
}

func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvents(events))
}

func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var payload request.EventRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEventPayload.HTTPStatus, errInvalidEventPayload.ToHTTPError())
		return
	}

	e := payload.ToEntity()
	e.ID = c.Param("event_id")
	updated, err := h.usecase.Update(c.Request.Context(), e)
	if err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEvent(updated))
}

func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("event_id")); err != nil {
		appErr := mapEventError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapEventError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidEventInput):
		return pkg.NewDomainErrorSimple("INVALID_EVENT_INPUT", "Invalid event payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEventNotFound):
		return pkg.NewDomainErrorSimple("EVENT_NOT_FOUND", "Event not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
