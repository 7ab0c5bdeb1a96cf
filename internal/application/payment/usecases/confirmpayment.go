package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gymcore/internal/application/payment/dto"
	"gymcore/internal/domain/member"
	vo "gymcore/internal/domain/member/valueobjects"
	"gymcore/internal/domain/membership"
	"gymcore/internal/domain/payment"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

// TxManager runs a function inside one storage transaction. Repositories
// enlist through the context the function receives.
type TxManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CheckInCacheInvalidator drops a member's cached front-desk lookup. May be
// nil when no cache is deployed.
type CheckInCacheInvalidator interface {
	Invalidate(ctx context.Context, dni string) error
}

// ConfirmPaymentCommand identifies the payment either by its own id or by the
// provider's reference (the form callbacks arrive in).
type ConfirmPaymentCommand struct {
	PaymentSID        string
	ProviderReference string
}

// ConfirmPaymentUseCase settles a pending payment and grants the membership
// time it bought. The status transition and the extension commit or roll back
// together: a successful payment can never leave the membership unextended.
//
// The extension anchors on the current period's end date when that end date is
// still in the future, so paying early stacks time instead of discarding the
// remainder. A lapsed period anchors on the confirmation instant but is still
// the same row, extended in place; only a member with no period row at all
// gets a fresh one.
type ConfirmPaymentUseCase struct {
	paymentRepo      payment.Repository
	memberRepo       member.Repository
	planRepo         plan.Repository
	periodRepo       membership.PeriodRepository
	txManager        TxManager
	cacheInvalidator CheckInCacheInvalidator
	clock            biztime.Clock
	logger           logger.Interface
}

func NewConfirmPaymentUseCase(
	paymentRepo payment.Repository,
	memberRepo member.Repository,
	planRepo plan.Repository,
	periodRepo membership.PeriodRepository,
	txManager TxManager,
	cacheInvalidator CheckInCacheInvalidator,
	clock biztime.Clock,
	logger logger.Interface,
) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		paymentRepo:      paymentRepo,
		memberRepo:       memberRepo,
		planRepo:         planRepo,
		periodRepo:       periodRepo,
		txManager:        txManager,
		cacheInvalidator: cacheInvalidator,
		clock:            clock,
		logger:           logger,
	}
}

func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, cmd ConfirmPaymentCommand) (*dto.ConfirmPaymentResultDTO, error) {
	pay, err := uc.resolvePayment(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if pay.Status().IsSuccessful() {
		// Repeated provider callbacks are expected; report the state the
		// earlier confirmation produced instead of extending twice.
		return uc.currentState(ctx, pay)
	}
	if pay.Status().IsFinal() {
		return nil, apperrors.NewConflictError("payment already failed and cannot be confirmed")
	}

	now := uc.clock.Now()

	var result *dto.ConfirmPaymentResultDTO
	var memberDNI string
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		m, err := uc.memberRepo.GetByID(txCtx, pay.MemberID())
		if err != nil {
			return fmt.Errorf("failed to get member: %w", err)
		}
		p, err := uc.planRepo.GetByID(txCtx, pay.PlanID())
		if err != nil {
			return fmt.Errorf("failed to get plan: %w", err)
		}

		per, err := uc.applyPeriod(txCtx, m, p, now)
		if err != nil {
			return err
		}

		planID := p.ID()
		if err := m.RenewTo(per.EndDate(), &planID, now); err != nil {
			return fmt.Errorf("failed to renew membership: %w", err)
		}
		if err := uc.memberRepo.Update(txCtx, m); err != nil {
			if errors.Is(err, member.ErrVersionConflict) {
				return apperrors.NewConflictError("member was modified concurrently, retry the confirmation")
			}
			return fmt.Errorf("failed to update member: %w", err)
		}

		if err := pay.MarkAsSuccessful(now); err != nil {
			return apperrors.NewConflictError(err.Error())
		}
		if err := uc.paymentRepo.Update(txCtx, pay); err != nil {
			return fmt.Errorf("failed to update payment: %w", err)
		}

		memberDNI = m.DNI()
		result = &dto.ConfirmPaymentResultDTO{
			Payment:        dto.ToPaymentDTO(pay),
			Period:         dto.ToPeriodDTO(per),
			RenewalDate:    m.RenewalDate(),
			MembershipText: m.MembershipStatus().String(),
		}
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("payment confirmation failed", "payment_sid", pay.SID(), "error", err)
		return nil, fmt.Errorf("payment confirmation failed: %w", err)
	}

	if uc.cacheInvalidator != nil {
		if err := uc.cacheInvalidator.Invalidate(ctx, memberDNI); err != nil {
			uc.logger.Warnw("check-in cache invalidation failed", "dni", memberDNI, "error", err)
		}
	}

	uc.logger.Infow("payment confirmed",
		"payment_sid", pay.SID(),
		"member_id", pay.MemberID(),
		"renewal_date", result.RenewalDate,
	)
	return result, nil
}

// applyPeriod extends the member's period or opens their first one, and
// returns the period whose end date is the member's new renewal date. Any
// existing row is extended in place, even a lapsed one; its ExtensionAnchor
// decides whether the bought time stacks on the end date or starts from now.
func (uc *ConfirmPaymentUseCase) applyPeriod(ctx context.Context, m *member.Member, p *plan.Plan, now time.Time) (*membership.Period, error) {
	current, err := uc.periodRepo.GetCurrentByMemberID(ctx, m.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to get current period: %w", err)
	}

	if current != nil {
		newEnd := biztime.AddMonths(current.ExtensionAnchor(now), p.DurationMonths())
		if err := current.ExtendTo(newEnd, now); err != nil {
			return nil, fmt.Errorf("failed to extend period: %w", err)
		}
		if err := uc.periodRepo.Update(ctx, current); err != nil {
			if errors.Is(err, membership.ErrVersionConflict) {
				return nil, apperrors.NewConflictError("membership period was modified concurrently, retry the confirmation")
			}
			return nil, fmt.Errorf("failed to update period: %w", err)
		}
		return current, nil
	}

	end := biztime.AddMonths(now, p.DurationMonths())
	per, err := membership.NewPeriod(m.ID(), p.ID(), now, end, now)
	if err != nil {
		return nil, fmt.Errorf("failed to open period: %w", err)
	}
	if err := uc.periodRepo.Create(ctx, per); err != nil {
		return nil, fmt.Errorf("failed to create period: %w", err)
	}
	// Opening a first period wakes a dormant account; a staff suspension
	// stays in force either way.
	if m.Status() == vo.MemberStatusInactive {
		m.ActivateAccount(now)
	}
	return per, nil
}

func (uc *ConfirmPaymentUseCase) resolvePayment(ctx context.Context, cmd ConfirmPaymentCommand) (*payment.Payment, error) {
	if cmd.PaymentSID != "" {
		pay, err := uc.paymentRepo.GetBySID(ctx, cmd.PaymentSID)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return nil, apperrors.NewNotFoundError("payment not found")
			}
			uc.logger.Errorw("failed to get payment", "payment_sid", cmd.PaymentSID, "error", err)
			return nil, fmt.Errorf("failed to get payment: %w", err)
		}
		return pay, nil
	}
	if cmd.ProviderReference != "" {
		pay, err := uc.paymentRepo.GetByProviderReference(ctx, cmd.ProviderReference)
		if err != nil {
			uc.logger.Errorw("failed to get payment by reference", "provider_reference", cmd.ProviderReference, "error", err)
			return nil, fmt.Errorf("failed to get payment: %w", err)
		}
		if pay == nil {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		return pay, nil
	}
	return nil, apperrors.NewBadRequestError("payment id or provider reference is required")
}

func (uc *ConfirmPaymentUseCase) currentState(ctx context.Context, pay *payment.Payment) (*dto.ConfirmPaymentResultDTO, error) {
	m, err := uc.memberRepo.GetByID(ctx, pay.MemberID())
	if err != nil {
		return nil, fmt.Errorf("failed to get member: %w", err)
	}
	per, err := uc.periodRepo.GetCurrentByMemberID(ctx, pay.MemberID())
	if err != nil {
		return nil, fmt.Errorf("failed to get current period: %w", err)
	}
	return &dto.ConfirmPaymentResultDTO{
		Payment:        dto.ToPaymentDTO(pay),
		Period:         dto.ToPeriodDTO(per),
		RenewalDate:    m.RenewalDate(),
		MembershipText: m.MembershipStatus().String(),
	}, nil
}
