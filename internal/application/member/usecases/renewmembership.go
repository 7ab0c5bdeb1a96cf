package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

// RenewMembershipCommand renews a member identified by dni. When NewRenewalDate
// is nil the renewal stacks on top of the current renewal date, so renewing
// early never costs the member remaining time.
type RenewMembershipCommand struct {
	DNI            string
	NewRenewalDate *time.Time
	PlanSID        *string
}

type RenewMembershipUseCase struct {
	memberRepo    member.Repository
	planRepo      plan.Repository
	cache         CheckInInfoCache
	renewalMonths int
	clock         biztime.Clock
	logger        logger.Interface
}

func NewRenewMembershipUseCase(
	memberRepo member.Repository,
	planRepo plan.Repository,
	cache CheckInInfoCache,
	renewalMonths int,
	clock biztime.Clock,
	logger logger.Interface,
) *RenewMembershipUseCase {
	if renewalMonths < 1 {
		renewalMonths = 1
	}
	return &RenewMembershipUseCase{
		memberRepo:    memberRepo,
		planRepo:      planRepo,
		cache:         cache,
		renewalMonths: renewalMonths,
		clock:         clock,
		logger:        logger,
	}
}

func (uc *RenewMembershipUseCase) Execute(ctx context.Context, cmd RenewMembershipCommand) (*dto.MemberDTO, error) {
	m, err := uc.memberRepo.GetByDNI(ctx, cmd.DNI)
	if err != nil {
		uc.logger.Errorw("failed to get member by dni", "dni", cmd.DNI, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	if m == nil {
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("member with DNI %s not found", cmd.DNI))
	}

	now := uc.clock.Now()

	planID := m.PlanID()
	if cmd.PlanSID != nil {
		p, err := uc.planRepo.GetBySID(ctx, *cmd.PlanSID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewNotFoundError("plan not found")
			}
			uc.logger.Errorw("failed to get plan", "plan_sid", *cmd.PlanSID, "error", err)
			return nil, fmt.Errorf("failed to get plan: %w", err)
		}
		pid := p.ID()
		planID = &pid
	}

	newRenewalDate := m.NextRenewalDate(uc.renewalMonths)
	if cmd.NewRenewalDate != nil {
		newRenewalDate = *cmd.NewRenewalDate
	}

	if err := m.RenewTo(newRenewalDate, planID, now); err != nil {
		return nil, apperrors.NewValidationError("invalid renewal date", err.Error())
	}

	if err := uc.memberRepo.Update(ctx, m); err != nil {
		if errors.Is(err, member.ErrVersionConflict) {
			return nil, apperrors.NewConflictError("member was modified concurrently, retry the renewal")
		}
		uc.logger.Errorw("failed to persist renewal", "dni", cmd.DNI, "error", err)
		return nil, fmt.Errorf("failed to persist renewal: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, m.DNI()); err != nil {
			uc.logger.Warnw("check-in cache invalidation failed", "dni", m.DNI(), "error", err)
		}
	}

	uc.logger.Infow("membership renewed",
		"member_sid", m.SID(),
		"dni", m.DNI(),
		"renewal_date", m.RenewalDate(),
		"membership_status", m.MembershipStatus(),
	)

	return dto.ToMemberDTO(m), nil
}
