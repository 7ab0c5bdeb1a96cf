package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/domain/member"
	"gymcore/internal/shared/biztime"
	"gymcore/internal/shared/logger"
)

// ExpireMembershipsUseCase recomputes membership status for every lapsed
// member in one storage pass. Safe to run repeatedly; members already
// expired are left untouched.
type ExpireMembershipsUseCase struct {
	memberRepo member.Repository
	clock      biztime.Clock
	logger     logger.Interface
}

func NewExpireMembershipsUseCase(
	memberRepo member.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *ExpireMembershipsUseCase {
	return &ExpireMembershipsUseCase{
		memberRepo: memberRepo,
		clock:      clock,
		logger:     logger,
	}
}

func (uc *ExpireMembershipsUseCase) Execute(ctx context.Context) (int64, error) {
	now := uc.clock.Now()

	updated, err := uc.memberRepo.MarkLapsedExpired(ctx, now)
	if err != nil {
		uc.logger.Errorw("failed to expire lapsed memberships", "error", err)
		return 0, fmt.Errorf("failed to expire lapsed memberships: %w", err)
	}

	if updated > 0 {
		uc.logger.Infow("lapsed memberships expired", "count", updated)
	}
	return updated, nil
}
