package usecases

import (
	"context"
	"fmt"

	"gymcore/internal/application/payment/dto"
	"gymcore/internal/domain/member"
	"gymcore/internal/domain/payment"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type ListPaymentsCommand struct {
	MemberSID *string
}

type ListPaymentsUseCase struct {
	paymentRepo payment.Repository
	memberRepo  member.Repository
	logger      logger.Interface
}

func NewListPaymentsUseCase(
	paymentRepo payment.Repository,
	memberRepo member.Repository,
	logger logger.Interface,
) *ListPaymentsUseCase {
	return &ListPaymentsUseCase{
		paymentRepo: paymentRepo,
		memberRepo:  memberRepo,
		logger:      logger,
	}
}

func (uc *ListPaymentsUseCase) Execute(ctx context.Context, cmd ListPaymentsCommand) ([]*dto.PaymentDTO, error) {
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

	payments, err := uc.paymentRepo.List(ctx, memberID)
	if err != nil {
		uc.logger.Errorw("failed to list payments", "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return dto.ToPaymentDTOs(payments), nil
}
