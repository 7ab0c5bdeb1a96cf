package member

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymcore/internal/application/member/usecases"
	"gymcore/internal/shared/logger"
	"gymcore/internal/shared/utils"
)

type MemberHandler struct {
	createMemberUC    *usecases.CreateMemberUseCase
	getMemberUC       *usecases.GetMemberUseCase
	listMembersUC     *usecases.ListMembersUseCase
	updateMemberUC    *usecases.UpdateMemberUseCase
	deleteMemberUC    *usecases.DeleteMemberUseCase
	renewMembershipUC *usecases.RenewMembershipUseCase
	checkInInfoUC     *usecases.CheckInInfoUseCase
	logger            logger.Interface
}

func NewMemberHandler(
	createMemberUC *usecases.CreateMemberUseCase,
	getMemberUC *usecases.GetMemberUseCase,
	listMembersUC *usecases.ListMembersUseCase,
	updateMemberUC *usecases.UpdateMemberUseCase,
	deleteMemberUC *usecases.DeleteMemberUseCase,
	renewMembershipUC *usecases.RenewMembershipUseCase,
	checkInInfoUC *usecases.CheckInInfoUseCase,
) *MemberHandler {
	return &MemberHandler{
		createMemberUC:    createMemberUC,
		getMemberUC:       getMemberUC,
		listMembersUC:     listMembersUC,
		updateMemberUC:    updateMemberUC,
		deleteMemberUC:    deleteMemberUC,
		renewMembershipUC: renewMembershipUC,
		checkInInfoUC:     checkInInfoUC,
		logger:            logger.NewLogger(),
	}
}

// CreateMember handles POST /members
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create member", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Member created successfully")
}

// GetMember handles GET /members/:id
func (h *MemberHandler) GetMember(c *gin.Context) {
	cmd := usecases.GetMemberCommand{SID: c.Param("id")}

	result, err := h.getMemberUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListMembers handles GET /members
func (h *MemberHandler) ListMembers(c *gin.Context) {
	var req ListMembersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listMembersUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateMember handles PATCH /members/:id
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	var req UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update member", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateMemberUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member updated successfully", result)
}

// DeleteMember handles DELETE /members/:id
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	cmd := usecases.DeleteMemberCommand{SID: c.Param("id")}

	if err := h.deleteMemberUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Member deleted successfully", nil)
}

// RenewMembership handles POST /members/renew
func (h *MemberHandler) RenewMembership(c *gin.Context) {
	var req RenewMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for renew membership", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.renewMembershipUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Membership renewed successfully", result)
}

// CheckInInfo handles GET /members/check-in-info/:dni
func (h *MemberHandler) CheckInInfo(c *gin.Context) {
	cmd := usecases.CheckInInfoCommand{DNI: c.Param("dni")}

	result, err := h.checkInInfoUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
