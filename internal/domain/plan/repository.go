package plan

import "context"

// Repository is a pure storage adapter for the plan catalog.
type Repository interface {
	Create(ctx context.Context, p *Plan) error
	GetByID(ctx context.Context, planID uint) (*Plan, error)
	GetBySID(ctx context.Context, sid string) (*Plan, error)
	// GetByName returns (nil, nil) when no plan carries the name.
	GetByName(ctx context.Context, name string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
	Update(ctx context.Context, p *Plan) error
	Delete(ctx context.Context, planID uint) error
}
