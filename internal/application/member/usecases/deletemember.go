package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/domain/member"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type DeleteMemberCommand struct {
	SID string
}

type DeleteMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewDeleteMemberUseCase(memberRepo member.Repository, logger logger.Interface) *DeleteMemberUseCase {
	return &DeleteMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *DeleteMemberUseCase) Execute(ctx context.Context, cmd DeleteMemberCommand) error {
	m, err := uc.memberRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return apperrors.NewNotFoundError("member not found")
		}
		uc.logger.Errorw("failed to get member", "member_sid", cmd.SID, "error", err)
		return fmt.Errorf("failed to get member: %w", err)
	}

	if err := uc.memberRepo.Delete(ctx, m.ID()); err != nil {
		uc.logger.Errorw("failed to delete member", "member_sid", cmd.SID, "error", err)
		return fmt.Errorf("failed to delete member: %w", err)
	}

	uc.logger.Infow("member deleted", "member_sid", cmd.SID, "dni", m.DNI())
	return nil
}
