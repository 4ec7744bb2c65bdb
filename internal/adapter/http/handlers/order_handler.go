package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	request "distrito_racing/internal/adapter/http/dto/request"
	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/adapter/http/middleware"
	"distrito_racing/internal/usecase"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for event registrations (orders).

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder registers the caller for an event by purchasing the selected
// ticket tiers.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create start user_id=%s event_id=%s", userID, payload.EventID)

	order, err := h.usecase.CreateOrder(c.Request.Context(), userID, payload.ToCommand())
	if err != nil {
		log.Printf("[order][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success user_id=%s order_id=%s", userID, order.ID)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListMyOrders returns the caller's orders.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	orders, err := h.usecase.GetUserOrders(c.Request.Context(), userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// GetOrder returns one of the caller's orders by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	orderID := c.Param("order_id")

	order, err := h.usecase.GetOrderByID(c.Request.Context(), orderID, userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetOrderLines returns the purchased items of one of the caller's orders.
func (h *OrderHandler) GetOrderLines(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	orderID := c.Param("order_id")

	lines, err := h.usecase.GetOrderLines(c.Request.Context(), orderID, userID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderLines(lines))
}

// DeleteOrder cancels an unpaid order and restores the reserved stock.
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	orderID := c.Param("order_id")
	log.Printf("[order][handler] delete start user_id=%s order_id=%s", userID, orderID)

	if err := h.usecase.DeleteOrder(c.Request.Context(), orderID, userID); err != nil {
		log.Printf("[order][handler] delete failed user_id=%s order_id=%s err=%v", userID, orderID, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// ListEventRegistrations returns every order of an event (organizer only).
func (h *OrderHandler) ListEventRegistrations(c *gin.Context) {
	eventID := c.Param("event_id")

	orders, err := h.usecase.GetEventRegistrations(c.Request.Context(), eventID)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// CheckFirstDriver reports whether the holder of the given email already
// registered for the event, so a second driver can link a shared car.
func (h *OrderHandler) CheckFirstDriver(c *gin.Context) {
	eventID := c.Param("event_id")
	email := c.Query("email")
	if email == "" {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "email query parameter is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	registered, name, err := h.usecase.CheckFirstDriverRegistration(c.Request.Context(), eventID, email)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FirstDriverCheckResponse{Registered: registered, DriverName: name})
}

// CheckNumberAvailability reports whether a race number is free for the event.
func (h *OrderHandler) CheckNumberAvailability(c *gin.Context) {
	eventID := c.Param("event_id")
	number, err := strconv.Atoi(c.Query("number"))
	if err != nil || number <= 0 {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "number query parameter must be a positive integer", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	available, err := h.usecase.CheckCarNumberAvailability(c.Request.Context(), eventID, number)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.NumberAvailabilityResponse{Number: number, Available: available})
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderInput):
		return pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "One or more products not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInventoryExhausted):
		return pkg.NewDomainErrorSimple("PRODUCT_SOLD_OUT", "Product no longer available", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
