package dto

import (
	"time"

	"gymcore/internal/domain/membership"
	"gymcore/internal/domain/payment"
)

// PaymentDTO is the API-facing projection of a ledger entry.
type PaymentDTO struct {
	SID               string     `json:"id"`
	MemberID          uint       `json:"member_id"`
	PlanID            uint       `json:"plan_id"`
	AmountCents       int64      `json:"amount_cents"`
	Currency          string     `json:"currency"`
	Status            string     `json:"status"`
	Date              time.Time  `json:"date"`
	ProviderReference *string    `json:"provider_reference,omitempty"`
	FailureReason     *string    `json:"failure_reason,omitempty"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// PeriodDTO projects the membership period a confirmed payment bought.
type PeriodDTO struct {
	SID       string    `json:"id"`
	MemberID  uint      `json:"member_id"`
	PlanID    uint      `json:"plan_id"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	Status    string    `json:"status"`
}

// ConfirmPaymentResultDTO bundles the confirmed payment with the membership
// state it produced, so callers see the new renewal date in one response.
type ConfirmPaymentResultDTO struct {
	Payment        *PaymentDTO `json:"payment"`
	Period         *PeriodDTO  `json:"period"`
	RenewalDate    time.Time   `json:"renewal_date"`
	MembershipText string      `json:"membership_status"`
}

func ToPaymentDTO(p *payment.Payment) *PaymentDTO {
	if p == nil {
		return nil
	}
	return &PaymentDTO{
		SID:               p.SID(),
		MemberID:          p.MemberID(),
		PlanID:            p.PlanID(),
		AmountCents:       p.Amount().AmountInCents(),
		Currency:          p.Amount().Currency(),
		Status:            p.Status().String(),
		Date:              p.Date(),
		ProviderReference: p.ProviderReference(),
		FailureReason:     p.FailureReason(),
		PaidAt:            p.PaidAt(),
		CreatedAt:         p.CreatedAt(),
	}
}

func ToPaymentDTOs(payments []*payment.Payment) []*PaymentDTO {
	dtos := make([]*PaymentDTO, 0, len(payments))
	for _, p := range payments {
		dtos = append(dtos, ToPaymentDTO(p))
	}
	return dtos
}

func ToPeriodDTO(p *membership.Period) *PeriodDTO {
	if p == nil {
		return nil
	}
	return &PeriodDTO{
		SID:       p.SID(),
		MemberID:  p.MemberID(),
		PlanID:    p.PlanID(),
		StartDate: p.StartDate(),
		EndDate:   p.EndDate(),
		Status:    string(p.Status()),
	}
}
