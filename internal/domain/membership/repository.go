package membership

import "context"

// PeriodRepository is a pure storage adapter for membership periods.
type PeriodRepository interface {
	Create(ctx context.Context, p *Period) error
	GetByID(ctx context.Context, periodID uint) (*Period, error)
	// GetCurrentByMemberID returns the member's latest period by end date,
	// or (nil, nil) when the member has never had one.
	GetCurrentByMemberID(ctx context.Context, memberID uint) (*Period, error)
	ListByMemberID(ctx context.Context, memberID uint) ([]*Period, error)
	// Update persists the aggregate conditioned on its previous version.
	Update(ctx context.Context, p *Period) error
}
