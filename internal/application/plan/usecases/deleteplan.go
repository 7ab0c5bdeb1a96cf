package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/domain/plan"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type DeletePlanCommand struct {
	SID string
}

type DeletePlanUseCase struct {
	planRepo plan.Repository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo plan.Repository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, cmd DeletePlanCommand) error {
	p, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to get plan", "plan_sid", cmd.SID, "error", err)
		return fmt.Errorf("failed to get plan: %w", err)
	}

	if err := uc.planRepo.Delete(ctx, p.ID()); err != nil {
		uc.logger.Errorw("failed to delete plan", "plan_sid", cmd.SID, "error", err)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "plan_sid", cmd.SID, "name", p.Name())
	return nil
}
