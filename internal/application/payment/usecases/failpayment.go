package usecases

import (
	"context"
	"errors"
	"fmt"

	"gymcore/internal/application/payment/dto"
	"gymcore/internal/domain/payment"
	"gymcore/internal/shared/biztime"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type FailPaymentCommand struct {
	PaymentSID        string
	ProviderReference string
	Reason            string
}

// FailPaymentUseCase marks a pending payment as failed. Membership state is
// untouched; a failed payment never bought anything.
type FailPaymentUseCase struct {
	paymentRepo payment.Repository
	clock       biztime.Clock
	logger      logger.Interface
}

func NewFailPaymentUseCase(
	paymentRepo payment.Repository,
	clock biztime.Clock,
	logger logger.Interface,
) *FailPaymentUseCase {
	return &FailPaymentUseCase{
		paymentRepo: paymentRepo,
		clock:       clock,
		logger:      logger,
	}
}

func (uc *FailPaymentUseCase) Execute(ctx context.Context, cmd FailPaymentCommand) (*dto.PaymentDTO, error) {
	pay, err := uc.resolvePayment(ctx, cmd)
	if err != nil {
		return nil, err
	}

	if err := pay.MarkAsFailed(cmd.Reason, uc.clock.Now()); err != nil {
		if errors.Is(err, payment.ErrAlreadyFinal) {
			return nil, apperrors.NewConflictError("payment is already settled")
		}
		return nil, apperrors.NewValidationError("cannot fail payment", err.Error())
	}

	if err := uc.paymentRepo.Update(ctx, pay); err != nil {
		uc.logger.Errorw("failed to update payment", "payment_sid", pay.SID(), "error", err)
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	uc.logger.Infow("payment failed",
		"payment_sid", pay.SID(),
		"member_id", pay.MemberID(),
		"reason", cmd.Reason,
	)
	return dto.ToPaymentDTO(pay), nil
}

func (uc *FailPaymentUseCase) resolvePayment(ctx context.Context, cmd FailPaymentCommand) (*payment.Payment, error) {
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
