package routes

import (
	"github.com/gin-gonic/gin"

	checkinhandlers "gymcore/internal/interfaces/http/handlers/checkin"
)

type CheckInRouteConfig struct {
	CheckInHandler *checkinhandlers.CheckInHandler
}

func SetupCheckInRoutes(engine *gin.Engine, config *CheckInRouteConfig) {
	checkIns := engine.Group("/check-ins")
	{
		checkIns.POST("", config.CheckInHandler.CheckIn)
		checkIns.GET("", config.CheckInHandler.ListCheckIns)
	}
}
