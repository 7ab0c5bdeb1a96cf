package member

import (
	"fmt"
	"strings"
	"time"

	vo "gymcore/internal/domain/member/valueobjects"
	"gymcore/internal/shared/biztime"
	"gymcore/internal/shared/id"
)

// Member is the member aggregate root. The renewalDate/membershipStatus pair
// is the canonical membership snapshot; only the lifecycle engine's write
// paths (manual renewal and payment extension) mutate it.
type Member struct {
	id               uint
	sid              string
	firstName        string
	lastName         string
	dni              string
	email            *string
	phone            *string
	status           vo.MemberStatus
	startDate        time.Time
	renewalDate      time.Time
	membershipStatus vo.MembershipStatus
	planID           *uint
	version          int
	createdAt        time.Time
	updatedAt        time.Time
}

// DeriveMembershipStatus computes the membership status for a renewal date
// against a single "now" snapshot. Active iff the renewal date is strictly
// in the future; an exactly-equal instant counts as expired.
func DeriveMembershipStatus(renewalDate, now time.Time) vo.MembershipStatus {
	if renewalDate.After(now) {
		return vo.MembershipActive
	}
	return vo.MembershipExpired
}

// NewMember creates a member joining at now. The membership snapshot is
// derived from the supplied renewal date against the same now snapshot.
func NewMember(firstName, lastName, dni string, email, phone *string, renewalDate time.Time, planID *uint, now time.Time) (*Member, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	dni = strings.TrimSpace(dni)

	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if lastName == "" {
		return nil, fmt.Errorf("last name is required")
	}
	if dni == "" {
		return nil, fmt.Errorf("dni is required")
	}
	if renewalDate.IsZero() {
		return nil, fmt.Errorf("renewal date is required")
	}

	return &Member{
		sid:              id.MustGenerateWithPrefix(id.PrefixMember, id.DefaultLength),
		firstName:        firstName,
		lastName:         lastName,
		dni:              dni,
		email:            email,
		phone:            phone,
		status:           vo.MemberStatusActive,
		startDate:        now,
		renewalDate:      renewalDate,
		membershipStatus: DeriveMembershipStatus(renewalDate, now),
		planID:           planID,
		version:          1,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// MemberReconstructParams carries persisted state back into the aggregate.
type MemberReconstructParams struct {
	ID               uint
	SID              string
	FirstName        string
	LastName         string
	DNI              string
	Email            *string
	Phone            *string
	Status           vo.MemberStatus
	StartDate        time.Time
	RenewalDate      time.Time
	MembershipStatus vo.MembershipStatus
	PlanID           *uint
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructMember rebuilds a member from persistence.
func ReconstructMember(p MemberReconstructParams) (*Member, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("member ID cannot be zero")
	}
	if p.DNI == "" {
		return nil, fmt.Errorf("dni is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid member status: %s", p.Status)
	}
	if !p.MembershipStatus.IsValid() {
		return nil, fmt.Errorf("invalid membership status: %s", p.MembershipStatus)
	}

	return &Member{
		id:               p.ID,
		sid:              p.SID,
		firstName:        p.FirstName,
		lastName:         p.LastName,
		dni:              p.DNI,
		email:            p.Email,
		phone:            p.Phone,
		status:           p.Status,
		startDate:        p.StartDate,
		renewalDate:      p.RenewalDate,
		membershipStatus: p.MembershipStatus,
		planID:           p.PlanID,
		version:          p.Version,
		createdAt:        p.CreatedAt,
		updatedAt:        p.UpdatedAt,
	}, nil
}

func (m *Member) ID() uint                              { return m.id }
func (m *Member) SID() string                           { return m.sid }
func (m *Member) FirstName() string                     { return m.firstName }
func (m *Member) LastName() string                      { return m.lastName }
func (m *Member) DNI() string                           { return m.dni }
func (m *Member) Email() *string                        { return m.email }
func (m *Member) Phone() *string                        { return m.phone }
func (m *Member) Status() vo.MemberStatus               { return m.status }
func (m *Member) StartDate() time.Time                  { return m.startDate }
func (m *Member) RenewalDate() time.Time                { return m.renewalDate }
func (m *Member) MembershipStatus() vo.MembershipStatus { return m.membershipStatus }
func (m *Member) PlanID() *uint                         { return m.planID }
func (m *Member) Version() int                          { return m.version }
func (m *Member) CreatedAt() time.Time                  { return m.createdAt }
func (m *Member) UpdatedAt() time.Time                  { return m.updatedAt }

// FullName returns the display name used by the front desk.
func (m *Member) FullName() string {
	return m.firstName + " " + m.lastName
}

// SetID sets the member ID (only for persistence layer use)
func (m *Member) SetID(memberID uint) error {
	if m.id != 0 {
		return fmt.Errorf("member ID is already set")
	}
	if memberID == 0 {
		return fmt.Errorf("member ID cannot be zero")
	}
	m.id = memberID
	return nil
}

// NextRenewalDate computes the stacked renewal date: the current renewal
// date advanced by the given number of months. A member renewing early does
// not lose remaining paid time because the anchor is never "now".
func (m *Member) NextRenewalDate(months int) time.Time {
	return biztime.AddMonths(m.renewalDate, months)
}

// RenewTo moves the renewal date and force-resets the membership status to
// active. A renewal always (re)activates, regardless of how far in the past
// the old renewal date was. The plan reference changes only when planID is
// supplied.
func (m *Member) RenewTo(newRenewalDate time.Time, planID *uint, now time.Time) error {
	if newRenewalDate.IsZero() {
		return fmt.Errorf("renewal date is required")
	}

	m.renewalDate = newRenewalDate
	m.membershipStatus = vo.MembershipActive
	if planID != nil {
		m.planID = planID
	}
	m.updatedAt = now
	m.version++

	return nil
}

// RefreshMembershipStatus re-derives the membership snapshot against now.
// Used by the bulk recomputation pass; a no-op when nothing changed.
// Reports whether the status actually flipped.
func (m *Member) RefreshMembershipStatus(now time.Time) bool {
	derived := DeriveMembershipStatus(m.renewalDate, now)
	if derived == m.membershipStatus {
		return false
	}
	m.membershipStatus = derived
	m.updatedAt = now
	m.version++
	return true
}

// ActivateAccount flips an administratively dormant account back to Active.
// A successful payment reactivates a dormant member's account independently
// of membership expiry tracking.
func (m *Member) ActivateAccount(now time.Time) {
	if m.status == vo.MemberStatusActive {
		return
	}
	m.status = vo.MemberStatusActive
	m.updatedAt = now
	m.version++
}

// Suspend sets the administrative status to Suspended.
func (m *Member) Suspend(now time.Time) error {
	if m.status == vo.MemberStatusSuspended {
		return nil
	}
	m.status = vo.MemberStatusSuspended
	m.updatedAt = now
	m.version++
	return nil
}

// Deactivate sets the administrative status to Inactive.
func (m *Member) Deactivate(now time.Time) error {
	if m.status == vo.MemberStatusInactive {
		return nil
	}
	m.status = vo.MemberStatusInactive
	m.updatedAt = now
	m.version++
	return nil
}

// UpdateProfile changes contact and name fields. Identity (dni) is immutable.
func (m *Member) UpdateProfile(firstName, lastName *string, email, phone *string, now time.Time) error {
	if firstName != nil {
		name := strings.TrimSpace(*firstName)
		if name == "" {
			return fmt.Errorf("first name cannot be empty")
		}
		m.firstName = name
	}
	if lastName != nil {
		name := strings.TrimSpace(*lastName)
		if name == "" {
			return fmt.Errorf("last name cannot be empty")
		}
		m.lastName = name
	}
	if email != nil {
		m.email = email
	}
	if phone != nil {
		m.phone = phone
	}
	m.updatedAt = now
	m.version++
	return nil
}

// Validate performs domain-level validation
func (m *Member) Validate() error {
	if m.firstName == "" {
		return fmt.Errorf("first name is required")
	}
	if m.lastName == "" {
		return fmt.Errorf("last name is required")
	}
	if m.dni == "" {
		return fmt.Errorf("dni is required")
	}
	if !m.status.IsValid() {
		return fmt.Errorf("invalid member status: %s", m.status)
	}
	if !m.membershipStatus.IsValid() {
		return fmt.Errorf("invalid membership status: %s", m.membershipStatus)
	}
	return nil
}
