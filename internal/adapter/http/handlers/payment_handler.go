package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	request "distrito_racing/internal/adapter/http/dto/request"
	response "distrito_racing/internal/adapter/http/dto/response"
	"distrito_racing/internal/adapter/http/middleware"
	"distrito_racing/internal/usecase"
	"distrito_racing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// notificationTimeout bounds webhook processing after the ack is sent.
const notificationTimeout = 30 * time.Second

// PaymentHandler handles HTTP requests for payments and gateway notifications.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// ProcessPayment starts a charge for one of the caller's unpaid orders.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)

	var payload request.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process start user_id=%s order_id=%s method=%s", userID, payload.OrderID, payload.PaymentMethod)

	result, err := h.usecase.ProcessPayment(c.Request.Context(), userID, payload.ToCommand())
	if err != nil {
		log.Printf("[payment][handler] process failed user_id=%s order_id=%s err=%v", userID, payload.OrderID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] process success user_id=%s order_id=%s charge_id=%s status=%s", userID, result.OrderID, result.ChargeID, result.Status)

	c.JSON(http.StatusOK, response.FromPaymentStatus(result))
}

// GetPaymentStatus polls the gateway for the payment state of one of the
// caller's orders.
func (h *PaymentHandler) GetPaymentStatus(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	orderID := c.Param("order_id")

	result, err := h.usecase.GetPaymentStatus(c.Request.Context(), userID, orderID)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPaymentStatus(result))
}

// ListPaymentMethods returns the selectable payment methods.
func (h *PaymentHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, h.usecase.ListPaymentMethods())
}

// Webhook receives Mercado Pago notifications. Invalid signatures are
// rejected; everything else is acked immediately and reconciled in the
// background, since the gateway only cares about the ack and will retry
// undelivered notifications on its own schedule.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	var payload request.WebhookNotificationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][webhook] unreadable body err=%v", err)
	}
	dataID := payload.ResolveDataID(c.Query("data.id"))

	if !h.usecase.VerifyWebhookSignature(c.GetHeader("x-signature"), c.GetHeader("x-request-id"), dataID) {
		log.Printf("[payment][webhook] signature rejected data_id=%s", dataID)
		appErr := pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid webhook signature", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// Only payment notifications reference a charge; merchant-order and test
	// topics are acked without touching the gateway.
	if notifType := payload.ResolveType(c.Query("type")); notifType != "payment" {
		log.Printf("[payment][webhook] non-payment notification ignored type=%s data_id=%s", notifType, dataID)
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	if dataID == "" {
		log.Printf("[payment][webhook] notification without data id; acking")
		c.JSON(http.StatusOK, gin.H{"received": true})
		return
	}

	log.Printf("[payment][webhook] notification accepted data_id=%s type=%s action=%s", dataID, payload.Type, payload.Action)
	c.JSON(http.StatusOK, gin.H{"received": true})

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
		defer cancel()
		if err := h.usecase.HandleNotification(ctx, dataID); err != nil {
			log.Printf("[payment][webhook] reconcile failed data_id=%s err=%v", dataID, err)
		}
	}()
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInput),
		errors.Is(err, usecase.ErrInvalidOrderAmount),
		errors.Is(err, usecase.ErrMissingCardToken),
		errors.Is(err, usecase.ErrMissingPayerAddress),
		errors.Is(err, usecase.ErrUnsupportedMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotStarted):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_STARTED", "No payment started for this order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUpstream):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_ERROR", "Payment provider failure", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayConfigNil):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
