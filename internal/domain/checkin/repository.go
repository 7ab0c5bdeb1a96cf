package checkin

import "context"

// Repository is a pure storage adapter for check-ins.
type Repository interface {
	Create(ctx context.Context, c *CheckIn) error
	// List returns the check-in history, newest first, optionally filtered by member.
	List(ctx context.Context, memberID *uint) ([]*CheckIn, error)
}
