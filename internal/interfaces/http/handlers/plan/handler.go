package plan

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gymcore/internal/application/plan/usecases"
	"gymcore/internal/shared/logger"
	"gymcore/internal/shared/utils"
)

type PlanHandler struct {
	createPlanUC *usecases.CreatePlanUseCase
	getPlanUC    *usecases.GetPlanUseCase
	listPlansUC  *usecases.ListPlansUseCase
	updatePlanUC *usecases.UpdatePlanUseCase
	deletePlanUC *usecases.DeletePlanUseCase
	logger       logger.Interface
}

func NewPlanHandler(
	createPlanUC *usecases.CreatePlanUseCase,
	getPlanUC *usecases.GetPlanUseCase,
	listPlansUC *usecases.ListPlansUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	deletePlanUC *usecases.DeletePlanUseCase,
) *PlanHandler {
	return &PlanHandler{
		createPlanUC: createPlanUC,
		getPlanUC:    getPlanUC,
		listPlansUC:  listPlansUC,
		updatePlanUC: updatePlanUC,
		deletePlanUC: deletePlanUC,
		logger:       logger.NewLogger(),
	}
}

// CreatePlan handles POST /plans
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createPlanUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

// GetPlan handles GET /plans/:id
func (h *PlanHandler) GetPlan(c *gin.Context) {
	cmd := usecases.GetPlanCommand{SID: c.Param("id")}

	result, err := h.getPlanUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListPlans handles GET /plans
func (h *PlanHandler) ListPlans(c *gin.Context) {
	result, err := h.listPlansUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdatePlan handles PATCH /plans/:id
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updatePlanUC.Execute(c.Request.Context(), req.ToCommand(c.Param("id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

// DeletePlan handles DELETE /plans/:id
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	cmd := usecases.DeletePlanCommand{SID: c.Param("id")}

	if err := h.deletePlanUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}
