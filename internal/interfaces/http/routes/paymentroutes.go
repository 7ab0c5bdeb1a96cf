package routes

import (
	"github.com/gin-gonic/gin"

	paymenthandlers "gymcore/internal/interfaces/http/handlers/payment"
)

type PaymentRouteConfig struct {
	PaymentHandler *paymenthandlers.PaymentHandler
}

func SetupPaymentRoutes(engine *gin.Engine, config *PaymentRouteConfig) {
	payments := engine.Group("/payments")
	{
		payments.POST("", config.PaymentHandler.CreatePayment)
		payments.GET("", config.PaymentHandler.ListPayments)
		payments.POST("/confirm", config.PaymentHandler.ConfirmPayment)
		payments.POST("/fail", config.PaymentHandler.FailPayment)
	}
}
