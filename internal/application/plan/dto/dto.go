package dto

import (
	"time"

	"gymcore/internal/domain/plan"
)

// PlanDTO is the API-facing projection of a membership plan. Price is carried
// in cents to keep the wire format integer-exact.
type PlanDTO struct {
	SID            string    `json:"id"`
	Name           string    `json:"name"`
	DurationMonths int       `json:"duration_months"`
	PriceCents     int64     `json:"price_cents"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToPlanDTO(p *plan.Plan) *PlanDTO {
	if p == nil {
		return nil
	}
	return &PlanDTO{
		SID:            p.SID(),
		Name:           p.Name(),
		DurationMonths: p.DurationMonths(),
		PriceCents:     p.PriceCents(),
		CreatedAt:      p.CreatedAt(),
		UpdatedAt:      p.UpdatedAt(),
	}
}

func ToPlanDTOs(plans []*plan.Plan) []*PlanDTO {
	dtos := make([]*PlanDTO, 0, len(plans))
	for _, p := range plans {
		dtos = append(dtos, ToPlanDTO(p))
	}
	return dtos
}
