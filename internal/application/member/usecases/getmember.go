package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type GetMemberCommand struct {
	SID string
}

type GetMemberUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewGetMemberUseCase(memberRepo member.Repository, logger logger.Interface) *GetMemberUseCase {
	return &GetMemberUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *GetMemberUseCase) Execute(ctx context.Context, cmd GetMemberCommand) (*dto.MemberDTO, error) {
	m, err := uc.memberRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		uc.logger.Errorw("failed to get member", "member_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return dto.ToMemberDTO(m), nil
}
