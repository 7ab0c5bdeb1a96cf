package usecases

import (
	"context"
	"fmt"
	"time"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type CreateMemberCommand struct {
	FirstName   string
	LastName    string
	DNI         string
	Email       *string
	Phone       *string
	RenewalDate time.Time
	PlanSID     *string
}

type CreateMemberUseCase struct {
	memberRepo member.Repository
	planRepo   plan.Repository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewCreateMemberUseCase(
	memberRepo member.Repository,
	planRepo plan.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *CreateMemberUseCase {
	return &CreateMemberUseCase{
		memberRepo: memberRepo,
		planRepo:   planRepo,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *CreateMemberUseCase) Execute(ctx context.Context, cmd CreateMemberCommand) (*dto.MemberDTO, error) {
	exists, err := uc.memberRepo.ExistsByDNI(ctx, cmd.DNI)
	if err != nil {
		uc.logger.Errorw("failed to check dni uniqueness", "dni", cmd.DNI, "error", err)
		return nil, fmt.Errorf("failed to check dni uniqueness: %w", err)
	}
	if exists {
		return nil, apperrors.NewConflictError(
			fmt.Sprintf("member with DNI %s already exists", cmd.DNI))
	}

	var planID *uint
	if cmd.PlanSID != nil {
		p, err := uc.planRepo.GetBySID(ctx, *cmd.PlanSID)
		if err != nil {
			return nil, err
		}
		id := p.ID()
		planID = &id
	}

	now := uc.clock.Now()

	m, err := member.NewMember(cmd.FirstName, cmd.LastName, cmd.DNI, cmd.Email, cmd.Phone, cmd.RenewalDate, planID, now)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid member data", err.Error())
	}

	if err := uc.memberRepo.Create(ctx, m); err != nil {
		if apperrors.IsDuplicateError(err) {
			// The unique index is the real guard: two simultaneous creates
			// with the same dni race past the read check above.
			return nil, apperrors.NewConflictError(
				fmt.Sprintf("member with DNI %s already exists", cmd.DNI))
		}
		uc.logger.Errorw("failed to create member", "dni", cmd.DNI, "error", err)
		return nil, fmt.Errorf("failed to create member: %w", err)
	}

	uc.logger.Infow("member created", "member_sid", m.SID(), "dni", m.DNI(), "membership_status", m.MembershipStatus())

	return dto.ToMemberDTO(m), nil
}
