package payment

import (
	"gymcore/internal/application/payment/usecases"
)

type CreatePaymentRequest struct {
	MemberID string `json:"member_id" binding:"required"`
	PlanID   string `json:"plan_id" binding:"required"`
}

func (r *CreatePaymentRequest) ToCommand() usecases.CreatePaymentCommand {
	return usecases.CreatePaymentCommand{
		MemberSID: r.MemberID,
		PlanSID:   r.PlanID,
	}
}

// ConfirmPaymentRequest settles a pending payment. Front-desk confirmations
// send the payment id; gateway callbacks only know their own reference.
type ConfirmPaymentRequest struct {
	PaymentID         string `json:"payment_id,omitempty"`
	ProviderReference string `json:"provider_reference,omitempty"`
}

func (r *ConfirmPaymentRequest) ToCommand() usecases.ConfirmPaymentCommand {
	return usecases.ConfirmPaymentCommand{
		PaymentSID:        r.PaymentID,
		ProviderReference: r.ProviderReference,
	}
}

type FailPaymentRequest struct {
	PaymentID         string `json:"payment_id,omitempty"`
	ProviderReference string `json:"provider_reference,omitempty"`
	Reason            string `json:"reason" binding:"required,max=500"`
}

func (r *FailPaymentRequest) ToCommand() usecases.FailPaymentCommand {
	return usecases.FailPaymentCommand{
		PaymentSID:        r.PaymentID,
		ProviderReference: r.ProviderReference,
		Reason:            r.Reason,
	}
}

type ListPaymentsRequest struct {
	MemberID *string `form:"member_id"`
}

func (r *ListPaymentsRequest) ToCommand() usecases.ListPaymentsCommand {
	return usecases.ListPaymentsCommand{
		MemberSID: r.MemberID,
	}
}
