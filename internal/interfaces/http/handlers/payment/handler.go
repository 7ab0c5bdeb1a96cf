package payment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymcore/internal/application/payment/usecases"
	"gymcore/internal/shared/logger"
	"gymcore/internal/shared/utils"
)

type PaymentHandler struct {
	createPaymentUC  *usecases.CreatePaymentUseCase
	confirmPaymentUC *usecases.ConfirmPaymentUseCase
	failPaymentUC    *usecases.FailPaymentUseCase
	listPaymentsUC   *usecases.ListPaymentsUseCase
	logger           logger.Interface
}

func NewPaymentHandler(
	createPaymentUC *usecases.CreatePaymentUseCase,
	confirmPaymentUC *usecases.ConfirmPaymentUseCase,
	failPaymentUC *usecases.FailPaymentUseCase,
	listPaymentsUC *usecases.ListPaymentsUseCase,
) *PaymentHandler {
	return &PaymentHandler{
		createPaymentUC:  createPaymentUC,
		confirmPaymentUC: confirmPaymentUC,
		failPaymentUC:    failPaymentUC,
		listPaymentsUC:   listPaymentsUC,
		logger:           logger.NewLogger(),
	}
}

// CreatePayment handles POST /payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create payment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPaymentUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Payment initiated successfully")
}

// ConfirmPayment handles POST /payments/confirm
func (h *PaymentHandler) ConfirmPayment(c *gin.Context) {
	var req ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for confirm payment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.confirmPaymentUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment confirmed successfully", result)
}

// FailPayment handles POST /payments/fail
func (h *PaymentHandler) FailPayment(c *gin.Context) {
	var req FailPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for fail payment", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.failPaymentUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Payment marked as failed", result)
}

// ListPayments handles GET /payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var req ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listPaymentsUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
