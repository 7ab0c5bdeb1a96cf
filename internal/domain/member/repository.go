package member

import (
	"context"
	"time"

	vo "gymcore/internal/domain/member/valueobjects"
)

// Repository is a pure storage adapter for members; it carries no business
// rules beyond mapping storage errors into the shared taxonomy.
type Repository interface {
	Create(ctx context.Context, m *Member) error
	GetByID(ctx context.Context, memberID uint) (*Member, error)
	GetBySID(ctx context.Context, sid string) (*Member, error)
	// GetByDNI returns (nil, nil) when no member carries the dni.
	GetByDNI(ctx context.Context, dni string) (*Member, error)
	ExistsByDNI(ctx context.Context, dni string) (bool, error)
	List(ctx context.Context, filter Filter) ([]*Member, int64, error)
	// Update persists the aggregate conditioned on its previous version and
	// fails with a conflict when a concurrent writer got there first.
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, memberID uint) error

	// MarkLapsedExpired flips membership_status to expired for every member
	// whose renewal date is before now and who is not already expired, in a
	// single idempotent pass. Returns the number of members updated.
	MarkLapsedExpired(ctx context.Context, now time.Time) (int64, error)
}

// Filter narrows member listings.
type Filter struct {
	MembershipStatus *vo.MembershipStatus
	Status           *vo.MemberStatus
	Page             int
	PageSize         int
}
