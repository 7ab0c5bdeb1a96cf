package usecases

import (
	"context"
	"errors"
	"fmt"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/member/valueobjects"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type UpdateMemberCommand struct {
	SID       string
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
	Status    *string
}

type UpdateMemberUseCase struct {
	memberRepo member.Repository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewUpdateMemberUseCase(
	memberRepo member.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *UpdateMemberUseCase {
	return &UpdateMemberUseCase{
		memberRepo: memberRepo,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *UpdateMemberUseCase) Execute(ctx context.Context, cmd UpdateMemberCommand) (*dto.MemberDTO, error) {
	m, err := uc.memberRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		uc.logger.Errorw("failed to get member", "member_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	now := uc.clock.Now()

	if err := m.UpdateProfile(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Phone, now); err != nil {
		return nil, apperrors.NewValidationError("invalid member data", err.Error())
	}

	if cmd.Status != nil {
		switch valueobjects.MemberStatus(*cmd.Status) {
		case valueobjects.MemberStatusActive:
			m.ActivateAccount(now)
		case valueobjects.MemberStatusSuspended:
			if err := m.Suspend(now); err != nil {
				return nil, apperrors.NewValidationError("cannot suspend member", err.Error())
			}
		case valueobjects.MemberStatusInactive:
			if err := m.Deactivate(now); err != nil {
				return nil, apperrors.NewValidationError("cannot deactivate member", err.Error())
			}
		default:
			return nil, apperrors.NewValidationError("invalid member status", *cmd.Status)
		}
	}

	if err := uc.memberRepo.Update(ctx, m); err != nil {
		if errors.Is(err, member.ErrVersionConflict) {
			return nil, apperrors.NewConflictError("member was modified concurrently, retry the update")
		}
		uc.logger.Errorw("failed to update member", "member_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to update member: %w", err)
	}

	uc.logger.Infow("member updated", "member_sid", m.SID())

	return dto.ToMemberDTO(m), nil
}
