package plan

import (
	"fmt"
	"strings"
	"time"

	"gymcore/internal/shared/id"
)

// Plan is a membership plan: a named duration in months with a price.
// Plans referenced by an active membership keep their identity; updates
// re-validate the same invariants creation does.
type Plan struct {
	id             uint
	sid            string
	name           string
	durationMonths int
	priceCents     int64
	version        int
	createdAt      time.Time
	updatedAt      time.Time
}

// NewPlan creates a plan. Duration is a positive number of whole months and
// price is a positive amount in cents.
func NewPlan(name string, durationMonths int, priceCents int64, now time.Time) (*Plan, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if durationMonths <= 0 {
		return nil, fmt.Errorf("plan duration must be greater than zero")
	}
	if priceCents <= 0 {
		return nil, fmt.Errorf("plan price must be greater than zero")
	}

	return &Plan{
		sid:            id.MustGenerateWithPrefix(id.PrefixPlan, id.DefaultLength),
		name:           name,
		durationMonths: durationMonths,
		priceCents:     priceCents,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}, nil
}

// PlanReconstructParams carries persisted state back into the aggregate.
type PlanReconstructParams struct {
	ID             uint
	SID            string
	Name           string
	DurationMonths int
	PriceCents     int64
	Version        int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReconstructPlan rebuilds a plan from persistence.
func ReconstructPlan(p PlanReconstructParams) (*Plan, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("plan ID cannot be zero")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("plan name is required")
	}
	if p.DurationMonths <= 0 {
		return nil, fmt.Errorf("plan duration must be greater than zero")
	}

	return &Plan{
		id:             p.ID,
		sid:            p.SID,
		name:           p.Name,
		durationMonths: p.DurationMonths,
		priceCents:     p.PriceCents,
		version:        p.Version,
		createdAt:      p.CreatedAt,
		updatedAt:      p.UpdatedAt,
	}, nil
}

func (p *Plan) ID() uint             { return p.id }
func (p *Plan) SID() string          { return p.sid }
func (p *Plan) Name() string         { return p.name }
func (p *Plan) DurationMonths() int  { return p.durationMonths }
func (p *Plan) PriceCents() int64    { return p.priceCents }
func (p *Plan) Version() int         { return p.version }
func (p *Plan) CreatedAt() time.Time { return p.createdAt }
func (p *Plan) UpdatedAt() time.Time { return p.updatedAt }

// SetID sets the plan ID (only for persistence layer use)
func (p *Plan) SetID(planID uint) error {
	if p.id != 0 {
		return fmt.Errorf("plan ID is already set")
	}
	if planID == 0 {
		return fmt.Errorf("plan ID cannot be zero")
	}
	p.id = planID
	return nil
}

// Rename changes the plan name. Uniqueness against the catalog is the
// caller's concern; the aggregate only enforces non-emptiness.
func (p *Plan) Rename(name string, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("plan name is required")
	}
	p.name = name
	p.updatedAt = now
	p.version++
	return nil
}

// ChangeDuration sets a new duration in months.
func (p *Plan) ChangeDuration(durationMonths int, now time.Time) error {
	if durationMonths <= 0 {
		return fmt.Errorf("plan duration must be greater than zero")
	}
	p.durationMonths = durationMonths
	p.updatedAt = now
	p.version++
	return nil
}

// ChangePrice sets a new price in cents.
func (p *Plan) ChangePrice(priceCents int64, now time.Time) error {
	if priceCents <= 0 {
		return fmt.Errorf("plan price must be greater than zero")
	}
	p.priceCents = priceCents
	p.updatedAt = now
	p.version++
	return nil
}
