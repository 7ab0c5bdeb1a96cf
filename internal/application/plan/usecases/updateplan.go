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

type UpdatePlanCommand struct {
	SID            string
	Name           *string
	DurationMonths *int
	PriceCents     *int64
}

type UpdatePlanUseCase struct {
	planRepo plan.Repository
	clock    biztime.Clock
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo plan.Repository, clock biztime.Clock, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		clock:    clock,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	p, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to get plan", "plan_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	now := uc.clock.Now()

	if cmd.Name != nil && *cmd.Name != p.Name() {
		other, err := uc.planRepo.GetByName(ctx, *cmd.Name)
		if err != nil {
			uc.logger.Errorw("failed to check plan name uniqueness", "name", *cmd.Name, "error", err)
			return nil, fmt.Errorf("failed to check plan name uniqueness: %w", err)
		}
		if other != nil && other.ID() != p.ID() {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("plan named %q already exists", *cmd.Name))
		}
		if err := p.Rename(*cmd.Name, now); err != nil {
			return nil, apperrors.NewValidationError("invalid plan name", err.Error())
		}
	}
	if cmd.DurationMonths != nil {
		if err := p.ChangeDuration(*cmd.DurationMonths, now); err != nil {
			return nil, apperrors.NewValidationError("invalid plan duration", err.Error())
		}
	}
	if cmd.PriceCents != nil {
		if err := p.ChangePrice(*cmd.PriceCents, now); err != nil {
			return nil, apperrors.NewValidationError("invalid plan price", err.Error())
		}
	}

	if err := uc.planRepo.Update(ctx, p); err != nil {
		if apperrors.IsDuplicateError(err) {
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("plan named %q already exists", p.Name()))
		}
		if apperrors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update plan", "plan_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_sid", p.SID(), "name", p.Name())
	return dto.ToPlanDTO(p), nil
}
