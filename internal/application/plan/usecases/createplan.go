package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/plan/dto"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name           string
	DurationMonths int
	PriceCents     int64
}

type CreatePlanUseCase struct {
	planRepo plan.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo plan.Repository, clock biztime.Clock, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	existing, err := uc.planRepo.GetByName(ctx, cmd.Name)
	if err != nil {
		uc.logger.Errorw("failed to check plan name uniqueness", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to check plan name uniqueness: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("plan named %q already exists", cmd.Name))
	}

	p, err := plan.NewPlan(cmd.Name, cmd.DurationMonths, cmd.PriceCents, uc.clock.Now())
	if err != nil {
		return nil, apperrors.NewValidationError("invalid plan data", err.Error())
	}

	if err := uc.planRepo.Create(ctx, p); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("plan named %q already exists", cmd.Name))
		}
		uc.logger.Errorw("failed to create plan", "name", cmd.Name, "error", err)
		return nil, fmt.Errorf("failed to create plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_sid", p.SID(), "name", p.Name())
	return dto.ToPlanDTO(p), nil
}
