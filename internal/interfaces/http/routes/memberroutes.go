package routes

import (
	"github.com/gin-gonic/gin"

	memberhandlers "gymcore/internal/interfaces/http/handlers/member"
)

type MemberRouteConfig struct {
	MemberHandler *memberhandlers.MemberHandler
}

func SetupMemberRoutes(engine *gin.Engine, config *MemberRouteConfig) {
	members := engine.Group("/members")
	{
		members.POST("", config.MemberHandler.CreateMember)
		members.GET("", config.MemberHandler.ListMembers)

		// Specific paths go before the parameterized ones so gin does not
		// treat them as member ids.
		members.POST("/renew", config.MemberHandler.RenewMembership)
		members.GET("/check-in-info/:dni", config.MemberHandler.CheckInInfo)

		members.GET("/:id", config.MemberHandler.GetMember)
		members.PATCH("/:id", config.MemberHandler.UpdateMember)
		members.DELETE("/:id", config.MemberHandler.DeleteMember)
	}
}
