package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/payment/dto"
	"gymcore/internal/application/payment/gateway"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/payment"
	vo "gymcore/internal/domain/payment/valueobjects"
	"gymcore/internal/domain/plan"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

// CreatePaymentCommand registers a pending charge for a member against a
// plan. The amount is always the plan's current price; clients never send
// amounts over the wire.
type CreatePaymentCommand struct {
	MemberSID string
	PlanSID   string
}

type CreatePaymentUseCase struct {
	paymentRepo payment.Repository
	memberRepo  member.Repository
	planRepo    plan.Repository
	gateway     gateway.Gateway
	clock       biztime.Clock
	logger      logger.Interface
}

func NewCreatePaymentUseCase(
	paymentRepo payment.Repository,
	memberRepo member.Repository,
	planRepo plan.Repository,
	gw gateway.Gateway,
	clock biztime.Clock,
	logger logger.Interface,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		planRepo:    planRepo,
		gateway:     gw,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *CreatePaymentUseCase) Execute(ctx context.Context, cmd CreatePaymentCommand) (*dto.PaymentDTO, error) {
	m, err := uc.memberRepo.GetBySID(ctx, cmd.MemberSID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		uc.logger.Errorw("failed to get member", "member_sid", cmd.MemberSID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	p, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		if apperrors.IsNotFoundError(err) {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		uc.logger.Errorw("failed to get plan", "plan_sid", cmd.PlanSID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	now := uc.clock.Now()
	amount := vo.NewMoney(p.PriceCents(), "")

	pay, err := payment.NewPayment(m.ID(), p.ID(), amount, now)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid payment data", err.Error())
	}

	init, err := uc.gateway.Initiate(ctx, m.SID(), amount)
	if err != nil {
		uc.logger.Errorw("payment initiation failed",
			"member_sid", m.SID(), "plan_sid", p.SID(), "error", err)
		return nil, fmt.Errorf("payment initiation failed: %w", err)
	}
	pay.SetProviderReference(init.ProviderReference, now)

	if err := uc.paymentRepo.Create(ctx, pay); err != nil {
		uc.logger.Errorw("failed to create payment", "member_sid", m.SID(), "error", err)
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}

	uc.logger.Infow("payment created",
		"payment_sid", pay.SID(),
		"member_sid", m.SID(),
		"plan_sid", p.SID(),
		"amount", amount.String(),
		"provider_reference", init.ProviderReference,
	)

	return dto.ToPaymentDTO(pay), nil
}
