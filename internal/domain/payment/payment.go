package payment

import (
	"fmt"
	"time"

	vo "gymcore/internal/domain/payment/valueobjects"
	"gymcore/internal/shared/id"
)

// Payment is one payment attempt in the ledger. Once Successful the record
// is immutable; a retry is a new record.
type Payment struct {
	id                uint
	sid               string
	memberID          uint
	planID            uint
	amount            vo.Money
	status            vo.PaymentStatus
	date              time.Time
	providerReference *string
	failureReason     *string
	paidAt            *time.Time
	version           int
	createdAt         time.Time
	updatedAt         time.Time
}

// NewPayment opens a pending payment attempt dated now.
func NewPayment(memberID, planID uint, amount vo.Money, now time.Time) (*Payment, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("payment amount must be greater than zero")
	}

	return &Payment{
		sid:       id.MustGenerateWithPrefix(id.PrefixPayment, id.DefaultLength),
		memberID:  memberID,
		planID:    planID,
		amount:    amount,
		status:    vo.PaymentStatusPending,
		date:      now,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// PaymentReconstructParams carries persisted state back into the aggregate.
type PaymentReconstructParams struct {
	ID                uint
	SID               string
	MemberID          uint
	PlanID            uint
	Amount            vo.Money
	Status            vo.PaymentStatus
	Date              time.Time
	ProviderReference *string
	FailureReason     *string
	PaidAt            *time.Time
	Version           int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// ReconstructPayment rebuilds a payment from persistence.
func ReconstructPayment(p PaymentReconstructParams) (*Payment, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("payment ID cannot be zero")
	}
	if p.MemberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", p.Status)
	}

	return &Payment{
		id:                p.ID,
		sid:               p.SID,
		memberID:          p.MemberID,
		planID:            p.PlanID,
		amount:            p.Amount,
		status:            p.Status,
		date:              p.Date,
		providerReference: p.ProviderReference,
		failureReason:     p.FailureReason,
		paidAt:            p.PaidAt,
		version:           p.Version,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (p *Payment) ID() uint                   { return p.id }
func (p *Payment) SID() string                { return p.sid }
func (p *Payment) MemberID() uint             { return p.memberID }
func (p *Payment) PlanID() uint               { return p.planID }
func (p *Payment) Amount() vo.Money           { return p.amount }
func (p *Payment) Status() vo.PaymentStatus   { return p.status }
func (p *Payment) Date() time.Time            { return p.date }
func (p *Payment) ProviderReference() *string { return p.providerReference }
func (p *Payment) FailureReason() *string     { return p.failureReason }
func (p *Payment) PaidAt() *time.Time         { return p.paidAt }
func (p *Payment) Version() int               { return p.version }
func (p *Payment) CreatedAt() time.Time       { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time       { return p.updatedAt }

// SetID sets the payment ID (only for persistence layer use)
func (p *Payment) SetID(paymentID uint) error {
	if p.id != 0 {
		return fmt.Errorf("payment ID is already set")
	}
	if paymentID == 0 {
		return fmt.Errorf("payment ID cannot be zero")
	}
	p.id = paymentID
	return nil
}

// SetProviderReference records the external provider's reference.
func (p *Payment) SetProviderReference(ref string, now time.Time) {
	p.providerReference = &ref
	p.updatedAt = now
}

// MarkAsSuccessful moves a pending payment to its terminal Successful state.
// Transitions at most once; confirming an already-successful payment is a
// no-op so provider callbacks can be retried safely.
func (p *Payment) MarkAsSuccessful(now time.Time) error {
	if p.status == vo.PaymentStatusSuccessful {
		return nil
	}

	if p.status != vo.PaymentStatusPending {
		return fmt.Errorf("cannot mark payment as successful with status %s", p.status)
	}

	p.status = vo.PaymentStatusSuccessful
	p.paidAt = &now
	p.updatedAt = now
	p.version++

	return nil
}

// MarkAsFailed moves a pending payment to its terminal Failed state.
// A failed payment never triggers a membership extension.
func (p *Payment) MarkAsFailed(reason string, now time.Time) error {
	if p.status.IsFinal() {
		return fmt.Errorf("%w: status is %s", ErrAlreadyFinal, p.status)
	}

	p.status = vo.PaymentStatusFailed
	if reason != "" {
		p.failureReason = &reason
	}
	p.updatedAt = now
	p.version++

	return nil
}
