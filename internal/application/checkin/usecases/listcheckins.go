package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/checkin/dto"
	"gymcore/internal/domain/checkin"
	"gymcore/internal/domain/member"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type ListCheckInsCommand struct {
	MemberSID *string
}

type ListCheckInsUseCase struct {
	checkInRepo checkin.Repository
	memberRepo  member.Repository
	logger      logger.Interface
}

func NewListCheckInsUseCase(
	checkInRepo checkin.Repository,
	memberRepo member.Repository,
	logger logger.Interface,
) *ListCheckInsUseCase {
	return &ListCheckInsUseCase{
		checkInRepo: checkInRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

func (uc *ListCheckInsUseCase) Execute(ctx context.Context, cmd ListCheckInsCommand) ([]*dto.CheckInDTO, error) {
	var memberID *uint
	if cmd.MemberSID != nil {
		m, err := uc.memberRepo.GetBySID(ctx, *cmd.MemberSID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewNotFoundError("member not found")
			}
			uc.logger.Errorw("failed to get member", "member_sid", *cmd.MemberSID, "error", err)
			return nil, fmt.Errorf("failed to get member: %w", err)
		}
		id := m.ID()
		memberID = &id
	}

	checkIns, err := uc.checkInRepo.List(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to list check-ins", "error", err)
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return dto.ToCheckInDTOs(checkIns), nil
}
