package routes

import (
	"distrito_racing/internal/adapter/http/handlers"
	"distrito_racing/internal/usecase"
	"distrito_racing/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

const (
	PathProfiles  = "/profiles"
	PathCars      = "/cars"
	PathAddresses = "/addresses"
	PathPilots    = "/pilots"
	PathStorage   = "/storage"
)

// addUserRoutes wires the profile, garage, address, pilot-verification and
// asset-upload endpoints.
func addUserRoutes(
	rg *gin.RouterGroup,
	profileRepo interfaces.IProfileRepository,
	verifier interfaces.ITokenVerifier,
	profileHandler *handlers.ProfileHandler,
	carHandler *handlers.CarHandler,
	addressHandler *handlers.AddressHandler,
	pilotHandler *handlers.PilotHandler,
	storageHandler *handlers.StorageHandler,
) {
	profiles := rg.Group(PathProfiles, requireAuth(verifier))
	{
		profiles.POST("/me", profileHandler.CreateMyProfile)
		profiles.GET("/me", profileHandler.GetMyProfile)
		profiles.PUT("/me", profileHandler.UpdateMyProfile)
	}

	manageProfiles := rg.Group(PathProfiles, requireAuth(verifier), requireManage(profileRepo, usecase.ResourceProfiles))
	{
		manageProfiles.GET("", profileHandler.ListProfiles)
		manageProfiles.PATCH("/:user_id/active", profileHandler.SetProfileActive)
	}

	cars := rg.Group(PathCars, requireAuth(verifier))
	{
		cars.POST("", carHandler.CreateCar)
		cars.GET("", carHandler.ListMyCars)
		cars.PUT("/:car_id", carHandler.UpdateCar)
		cars.DELETE("/:car_id", carHandler.DeleteCar)
	}

	addresses := rg.Group(PathAddresses, requireAuth(verifier))
	{
		addresses.POST("", addressHandler.CreateAddress)
		addresses.GET("", addressHandler.ListMyAddresses)
		addresses.PUT("/:address_id", addressHandler.UpdateAddress)
		addresses.DELETE("/:address_id", addressHandler.DeleteAddress)
	}

	pilots := rg.Group(PathPilots, requireAuth(verifier))
	{
		pilots.GET("/:cpf", pilotHandler.VerifyPilot)
	}

	manageStorage := rg.Group(PathStorage, requireAuth(verifier), requireManage(profileRepo, usecase.ResourceStorage))
	{
		manageStorage.POST("", storageHandler.Upload)
		manageStorage.DELETE("/*key", storageHandler.Delete)
	}
}
