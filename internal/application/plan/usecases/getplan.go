package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/plan/dto"
	"gymcore/internal/domain/plan"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type GetPlanCommand struct {
	SID string
}

type GetPlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo plan.Repository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, cmd GetPlanCommand) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to get plan", "plan_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return dto.ToPlanDTO(p), nil
}
