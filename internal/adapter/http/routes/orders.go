package routes

import (
	"distrito_racing/internal/adapter/http/handlers"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders = "/orders"
)

// addOrderRoutes wires the owner-scoped registration endpoints.
func addOrderRoutes(rg *gin.RouterGroup, verifier interfaces.ITokenVerifier, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders, requireAuth(verifier))
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("", orderHandler.ListMyOrders)
		orders.GET("/:order_id", orderHandler.GetOrder)
		orders.GET("/:order_id/lines", orderHandler.GetOrderLines)
		orders.DELETE("/:order_id", orderHandler.DeleteOrder)
	}
}
