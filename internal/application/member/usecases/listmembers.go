package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/member/valueobjects"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type ListMembersCommand struct {
	MembershipStatus *string
	Status           *string
	Page             int
	PageSize         int
}

type ListMembersResult struct {
	Members  []*dto.MemberDTO
	Total    int64
	Page     int
	PageSize int
}

type ListMembersUseCase struct {
	memberRepo member.Repository
	logger     logger.Interface
}

func NewListMembersUseCase(memberRepo member.Repository, logger logger.Interface) *ListMembersUseCase {
	return &ListMembersUseCase{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

func (uc *ListMembersUseCase) Execute(ctx context.Context, cmd ListMembersCommand) (*ListMembersResult, error) {
	filter := member.Filter{
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > 100 {
		filter.PageSize = 20
	}

	if cmd.MembershipStatus != nil {
		ms := valueobjects.MembershipStatus(*cmd.MembershipStatus)
		if !ms.IsValid() {
			return nil, apperrors.NewValidationError("invalid membership status filter", *cmd.MembershipStatus)
		}
		filter.MembershipStatus = &ms
	}
	if cmd.Status != nil {
		st := valueobjects.MemberStatus(*cmd.Status)
		if !st.IsValid() {
			return nil, apperrors.NewValidationError("invalid member status filter", *cmd.Status)
		}
		filter.Status = &st
	}

	members, total, err := uc.memberRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list members", "error", err)
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	return &ListMembersResult{
		Members:  dto.ToMemberDTOs(members),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}
