package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/member/dto"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

const checkInDateLayout = "02/01/2006"

// CheckInInfoCache is the front-desk lookup cache. Implementations may be
// absent entirely; the use cases treat a nil cache as a pass-through.
// Write paths that change the renewal date call Invalidate so the desk never
// serves a pre-renewal snapshot for the remainder of the TTL window.
type CheckInInfoCache interface {
	Get(ctx context.Context, dni string) (*dto.CheckInInfoDTO, error)
	Set(ctx context.Context, dni string, info *dto.CheckInInfoDTO) error
	Invalidate(ctx context.Context, dni string) error
}

type CheckInInfoCommand struct {
	DNI string
}

// CheckInInfoUseCase builds the front-desk lookup for a member: who they
// are, what plan they are on and whether their membership currently grants
// access. The status text is derived live so a stale stored snapshot never
// tells the desk a lapsed member is active.
type CheckInInfoUseCase struct {
	memberRepo member.Repository
	planRepo   plan.Repository
	cache      CheckInInfoCache
	clock      biztime.Clock
	logger     logger.Interface
}

func NewCheckInInfoUseCase(
	memberRepo member.Repository,
	planRepo plan.Repository,
	cache CheckInInfoCache,
	clock biztime.Clock,
	logger logger.Interface,
) *CheckInInfoUseCase {
	return &CheckInInfoUseCase{
		memberRepo: memberRepo,
		planRepo:   planRepo,
		cache:      cache,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *CheckInInfoUseCase) Execute(ctx context.Context, cmd CheckInInfoCommand) (*dto.CheckInInfoDTO, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, cmd.DNI); err != nil {
			uc.logger.Warnw("check-in cache read failed", "dni", cmd.DNI, "error", err)
		} else if cached != nil {
			return cached, nil
		}
	}

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

	var planName *string
	if m.PlanID() != nil {
		p, err := uc.planRepo.GetByID(ctx, *m.PlanID())
		if err != nil {
			if !apperrors.IsNotFoundError(err) {
				uc.logger.Errorw("failed to get plan", "plan_id", *m.PlanID(), "error", err)
				return nil, fmt.Errorf("failed to get plan: %w", err)
			}
		} else {
			name := p.Name()
			planName = &name
		}
	}

	renewal := m.RenewalDate().Format(checkInDateLayout)
	var statusText string
	if member.DeriveMembershipStatus(m.RenewalDate(), now).IsActive() {
		statusText = fmt.Sprintf("Membership active until %s", renewal)
	} else {
		statusText = fmt.Sprintf("Membership expired since %s", renewal)
	}

	info := &dto.CheckInInfoDTO{
		SID:                  m.SID(),
		FirstName:            m.FirstName(),
		LastName:             m.LastName(),
		StartDate:            m.StartDate().Format(checkInDateLayout),
		RenewalDate:          renewal,
		PlanName:             planName,
		MembershipStatusText: statusText,
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, cmd.DNI, info); err != nil {
			uc.logger.Warnw("check-in cache write failed", "dni", cmd.DNI, "error", err)
		}
	}

	return info, nil
}
