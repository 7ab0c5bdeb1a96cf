package payment

import "context"

// Repository is a pure storage adapter for the payment ledger.
type Repository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, paymentID uint) (*Payment, error)
	GetBySID(ctx context.Context, sid string) (*Payment, error)
	// GetByProviderReference returns (nil, nil) when no payment carries the reference.
	GetByProviderReference(ctx context.Context, ref string) (*Payment, error)
	// List returns the payment history, newest first, optionally filtered by member.
	List(ctx context.Context, memberID *uint) ([]*Payment, error)
	Update(ctx context.Context, p *Payment) error
}
