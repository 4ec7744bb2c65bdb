package routes

import (
	"distrito_racing/internal/adapter/http/handlers"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
)

// addPaymentRoutes wires the charge endpoints. The webhook is public: the
// gateway authenticates itself through the signed notification, not a bearer
// token.
func addPaymentRoutes(rg *gin.RouterGroup, verifier interfaces.ITokenVerifier, paymentHandler *handlers.PaymentHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.GET("/methods", paymentHandler.ListPaymentMethods)
		payments.POST("/webhook", paymentHandler.Webhook)
	}

	authed := rg.Group(PathPayments, requireAuth(verifier))
	{
		authed.POST("/process", paymentHandler.ProcessPayment)
		authed.GET("/status/:order_id", paymentHandler.GetPaymentStatus)
	}
}
