package routes

import (
	"github.com/gin-gonic/gin"

	planhandlers "gymcore/internal/interfaces/http/handlers/plan"
)

type PlanRouteConfig struct {
	PlanHandler *planhandlers.PlanHandler
}

func SetupPlanRoutes(engine *gin.Engine, config *PlanRouteConfig) {
	plans := engine.Group("/plans")
	{
		plans.POST("", config.PlanHandler.CreatePlan)
		plans.GET("", config.PlanHandler.ListPlans)
		plans.GET("/:id", config.PlanHandler.GetPlan)
		plans.PATCH("/:id", config.PlanHandler.UpdatePlan)
		plans.DELETE("/:id", config.PlanHandler.DeletePlan)
	}
}
