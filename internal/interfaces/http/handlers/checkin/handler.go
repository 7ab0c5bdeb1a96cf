package checkin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymcore/internal/application/checkin/usecases"
	"gymcore/internal/shared/logger"
	"gymcore/internal/shared/utils"
)

type CheckInRequest struct {
	DNI string `json:"dni" binding:"required,min=6,max=20"`
}

type ListCheckInsRequest struct {
	MemberID *string `form:"member_id"`
}

type CheckInHandler struct {
	checkInMemberUC *usecases.CheckInMemberUseCase
	listCheckInsUC  *usecases.ListCheckInsUseCase
	logger          logger.Interface
}

func NewCheckInHandler(
	checkInMemberUC *usecases.CheckInMemberUseCase,
	listCheckInsUC *usecases.ListCheckInsUseCase,
) *CheckInHandler {
	return &CheckInHandler{
		checkInMemberUC: checkInMemberUC,
		listCheckInsUC:  listCheckInsUC,
		logger:          logger.NewLogger(),
	}
}

// CheckIn handles POST /check-ins
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for check-in", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.checkInMemberUC.Execute(c.Request.Context(), usecases.CheckInMemberCommand{DNI: req.DNI})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Check-in recorded")
}

// ListCheckIns handles GET /check-ins
func (h *CheckInHandler) ListCheckIns(c *gin.Context) {
	var req ListCheckInsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCheckInsUC.Execute(c.Request.Context(), usecases.ListCheckInsCommand{MemberSID: req.MemberID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
