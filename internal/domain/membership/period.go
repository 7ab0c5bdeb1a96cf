// Package membership models the discrete paid-access periods managed by the
// payment path. The member aggregate's renewalDate/membershipStatus snapshot
// stays canonical; periods are the payment ledger's detail records.
package membership

import (
	"fmt"
	"time"

	"gymcore/internal/shared/id"
)

// PeriodStatus tracks whether a period row is the member's current interval.
type PeriodStatus string

const (
	PeriodStatusActive PeriodStatus = "Active"
	PeriodStatusClosed PeriodStatus = "Closed"
)

func (s PeriodStatus) IsValid() bool {
	return s == PeriodStatusActive || s == PeriodStatusClosed
}

// Period is one start/end interval of paid access. At most one period per
// member is current at any time: extension updates the end date in place,
// never appends a concurrent second period.
type Period struct {
	id        uint
	sid       string
	memberID  uint
	planID    uint
	startDate time.Time
	endDate   time.Time
	status    PeriodStatus
	version   int
	createdAt time.Time
	updatedAt time.Time
}

// NewPeriod opens a fresh period starting now.
func NewPeriod(memberID, planID uint, startDate, endDate time.Time, now time.Time) (*Period, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if planID == 0 {
		return nil, fmt.Errorf("plan ID is required")
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("end date must be after start date")
	}

	return &Period{
		sid:       id.MustGenerateWithPrefix(id.PrefixPeriod, id.DefaultLength),
		memberID:  memberID,
		planID:    planID,
		startDate: startDate,
		endDate:   endDate,
		status:    PeriodStatusActive,
		version:   1,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// PeriodReconstructParams carries persisted state back into the aggregate.
type PeriodReconstructParams struct {
	ID        uint
	SID       string
	MemberID  uint
	PlanID    uint
	StartDate time.Time
	EndDate   time.Time
	Status    PeriodStatus
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReconstructPeriod rebuilds a period from persistence.
func ReconstructPeriod(p PeriodReconstructParams) (*Period, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("period ID cannot be zero")
	}
	if p.MemberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}
	if !p.Status.IsValid() {
		return nil, fmt.Errorf("invalid period status: %s", p.Status)
	}

	return &Period{
		id:        p.ID,
		sid:       p.SID,
		memberID:  p.MemberID,
		planID:    p.PlanID,
		startDate: p.StartDate,
		endDate:   p.EndDate,
		status:    p.Status,
		version:   p.Version,
		createdAt: p.CreatedAt,
		updatedAt: p.UpdatedAt,
	}, nil
}

func (p *Period) ID() uint             { return p.id }
func (p *Period) SID() string          { return p.sid }
func (p *Period) MemberID() uint       { return p.memberID }
func (p *Period) PlanID() uint         { return p.planID }
func (p *Period) StartDate() time.Time { return p.startDate }
func (p *Period) EndDate() time.Time   { return p.endDate }
func (p *Period) Status() PeriodStatus { return p.status }
func (p *Period) Version() int         { return p.version }
func (p *Period) CreatedAt() time.Time { return p.createdAt }
func (p *Period) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the period ID (only for persistence layer use)
func (p *Period) SetID(periodID uint) error {
	if p.id != 0 {
		return fmt.Errorf("period ID is already set")
	}
	if periodID == 0 {
		return fmt.Errorf("period ID cannot be zero")
	}
	p.id = periodID
	return nil
}

// IsCurrent reports whether the period still covers now.
func (p *Period) IsCurrent(now time.Time) bool {
	return p.endDate.After(now)
}

// ExtensionAnchor returns the instant a new extension stacks onto: the end
// date while it is still in the future, otherwise now. A member who lapsed
// months ago starts fresh from today instead of accruing a retroactive stack.
func (p *Period) ExtensionAnchor(now time.Time) time.Time {
	if p.IsCurrent(now) {
		return p.endDate
	}
	return now
}

// ExtendTo moves the end date forward in place.
func (p *Period) ExtendTo(newEndDate time.Time, now time.Time) error {
	if !newEndDate.After(p.endDate) {
		return fmt.Errorf("new end date must be after current end date")
	}

	p.endDate = newEndDate
	p.status = PeriodStatusActive
	p.updatedAt = now
	p.version++

	return nil
}
