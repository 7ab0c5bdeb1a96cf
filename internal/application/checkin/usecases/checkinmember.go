package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/checkin/dto"
	"gymcore/internal/domain/checkin"
	"gymcore/internal/domain/member"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type CheckInMemberCommand struct {
	DNI string
}

// CheckInMemberUseCase records a gym entry. Access requires an Active account
// status; membership expiry alone does not block the door, it only shows up
// in the front-desk lookup so staff can ask the member to renew.
type CheckInMemberUseCase struct {
	checkInRepo checkin.Repository
	memberRepo  member.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewCheckInMemberUseCase(
	checkInRepo checkin.Repository,
	memberRepo member.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *CheckInMemberUseCase {
	return &CheckInMemberUseCase{
		checkInRepo: checkInRepo,
		memberRepo:  memberRepo,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *CheckInMemberUseCase) Execute(ctx context.Context, cmd CheckInMemberCommand) (*dto.CheckInDTO, error) {
	m, err := uc.memberRepo.GetByDNI(ctx, cmd.DNI)
	if err != nil {
		uc.logger.Errorw("failed to get member by dni", "dni", cmd.DNI, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if m == nil {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("member with DNI %s not found", cmd.DNI))
	}

	if !m.Status().CanCheckIn() {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("member account is %s and cannot check in", m.Status()))
	}

	now := uc.clock.Now()
	c, err := checkin.NewCheckIn(m.ID(), now)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid check-in", err.Error())
	}

	if err := uc.checkInRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to record check-in", "member_sid", m.SID(), "error", err)
		return nil, fmt.Errorf("failed to record check-in: %w", err)
	}

	uc.logger.Infow("member checked in", "member_sid", m.SID(), "dni", m.DNI())
	return dto.ToCheckInDTO(c), nil
}
