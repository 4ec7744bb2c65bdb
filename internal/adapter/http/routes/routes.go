package routes

import (
	"log"
	"os"
	"strconv"

	_ "distrito_racing/docs" // This will be auto-generated
	"distrito_racing/internal/adapter/http/handlers"
	"distrito_racing/internal/adapter/http/middleware"
	repository2 "distrito_racing/internal/adapter/persistence/repository"
	"distrito_racing/internal/infrastructure/database"
	"distrito_racing/internal/infrastructure/identity"
	"distrito_racing/internal/infrastructure/payments"
	"distrito_racing/internal/infrastructure/registry"
	"distrito_racing/internal/infrastructure/storage"
	"distrito_racing/internal/usecase"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	productRepo := repository2.NewProductDynamoRepository(ddb)
	eventRepo := repository2.NewEventDynamoRepository(ddb)
	profileRepo := repository2.NewProfileDynamoRepository(ddb)
	carRepo := repository2.NewCarDynamoRepository(ddb)
	addressRepo := repository2.NewAddressDynamoRepository(ddb)

	verifier, err := identity.NewJWTVerifierFromEnv()
	if err != nil {
		log.Fatalf("Failed to configure token verification: %v", err)
	}

	paymentGateway := buildPaymentGateway()

	var fileStorage interfaces.IFileStorage
	if s3Storage, err := storage.NewS3Storage(database.ConnectS3()); err != nil {
		log.Printf("File storage not configured: %v", err)
	} else {
		fileStorage = s3Storage
	}

	orderUseCase := usecase.NewOrderUseCase(orderRepo, productRepo, profileRepo)
	paymentUseCase := usecase.NewPaymentUseCase(orderRepo, paymentGateway)
	productUseCase := usecase.NewProductUseCase(productRepo)
	eventUseCase := usecase.NewEventUseCase(eventRepo)
	profileUseCase := usecase.NewProfileUseCase(profileRepo)
	carUseCase := usecase.NewCarUseCase(carRepo)
	addressUseCase := usecase.NewAddressUseCase(addressRepo)
	pilotUseCase := usecase.NewPilotUseCase(registry.NewCBAClient(os.Getenv("CBA_LOOKUP_URL")))

	orderHandler := handlers.NewOrderHandler(orderUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	productHandler := handlers.NewProductHandler(productUseCase)
	eventHandler := handlers.NewEventHandler(eventUseCase)
	profileHandler := handlers.NewProfileHandler(profileUseCase)
	carHandler := handlers.NewCarHandler(carUseCase)
	addressHandler := handlers.NewAddressHandler(addressUseCase)
	pilotHandler := handlers.NewPilotHandler(pilotUseCase)
	storageHandler := handlers.NewStorageHandler(fileStorage)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addEventRoutes(v1, profileRepo, verifier, eventHandler, productHandler, orderHandler)
	addOrderRoutes(v1, verifier, orderHandler)
	addPaymentRoutes(v1, verifier, paymentHandler)
	addUserRoutes(v1, profileRepo, verifier, profileHandler, carHandler, addressHandler, pilotHandler, storageHandler)
}

// buildPaymentGateway selects the charge flow at startup: PAYMENT_FLOW=redirect
// runs hosted checkout through the Mercado Pago SDK, anything else charges
// directly through the Orders API.
func buildPaymentGateway() interfaces.IPaymentGateway {
	accessToken := os.Getenv("MERCADOPAGO_ACCESS_TOKEN")
	sigVerifier := payments.NewSignatureVerifierFromEnv()

	var (
		gateway interfaces.IPaymentGateway
		err     error
	)
	if os.Getenv("PAYMENT_FLOW") == "redirect" {
		gateway, err = payments.NewMercadoPagoRedirectGateway(accessToken, os.Getenv("MERCADOPAGO_NOTIFICATION_URL"), sigVerifier)
	} else {
		gateway, err = payments.NewMercadoPagoOrdersGateway(accessToken, os.Getenv("MERCADOPAGO_BASE_URL"), sigVerifier)
	}
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
		return nil
	}
	return gateway
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func requireAuth(verifier interfaces.ITokenVerifier) gin.HandlerFunc {
	return middleware.RequireAuth(verifier)
}

func requireManage(profileRepo interfaces.IProfileRepository, resource usecase.Resource) gin.HandlerFunc {
	return middleware.RequireCapability(profileRepo, usecase.ActionManage, resource)
}
