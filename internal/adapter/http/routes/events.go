package routes

import (
	"distrito_racing/internal/adapter/http/handlers"
	"distrito_racing/internal/usecase"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathEvents = "/events"
)

// addEventRoutes wires the event catalog. Reads are public; mutations and the
// registrations listing require an organizer.
func addEventRoutes(
	rg *gin.RouterGroup,
	profileRepo interfaces.IProfileRepository,
	verifier interfaces.ITokenVerifier,
	eventHandler *handlers.EventHandler,
	productHandler *handlers.ProductHandler,
	orderHandler *handlers.OrderHandler,
) {
	events := rg.Group(PathEvents)
	{
		events.GET("", eventHandler.ListEvents)
		events.GET("/:event_id", eventHandler.GetEvent)
		events.GET("/:event_id/products", productHandler.ListEventProducts)
		events.GET("/:event_id/first-driver", orderHandler.CheckFirstDriver)
		events.GET("/:event_id/number-availability", orderHandler.CheckNumberAvailability)
	}

	manageEvents := rg.Group(PathEvents, requireAuth(verifier), requireManage(profileRepo, usecase.ResourceEvents))
	{
		manageEvents.POST("", eventHandler.CreateEvent)
		manageEvents.PUT("/:event_id", eventHandler.UpdateEvent)
		manageEvents.DELETE("/:event_id", eventHandler.DeleteEvent)
	}

	registrations := rg.Group(PathEvents, requireAuth(verifier), requireManage(profileRepo, usecase.ResourceRegistrations))
	{
		registrations.GET("/:event_id/registrations", orderHandler.ListEventRegistrations)
	}

	products := rg.Group("/products")
	{
		products.GET("/:product_id", productHandler.GetProduct)
	}

	manageProducts := rg.Group("/products", requireAuth(verifier), requireManage(profileRepo, usecase.ResourceProducts))
	{
		manageProducts.POST("", productHandler.CreateProduct)
		manageProducts.PUT("/:product_id", productHandler.UpdateProduct)
		manageProducts.DELETE("/:product_id", productHandler.DeleteProduct)
	}
}
