package plan

import (
	"gymcore/internal/application/plan/usecases"
)

type CreatePlanRequest struct {
	Name           string `json:"name" binding:"required,max=100"`
	DurationMonths int    `json:"duration_months" binding:"required,min=1,max=36"`
	PriceCents     int64  `json:"price_cents" binding:"required,min=1"`
}

func (r *CreatePlanRequest) ToCommand() usecases.CreatePlanCommand {
	return usecases.CreatePlanCommand{
		Name:           r.Name,
		DurationMonths: r.DurationMonths,
		PriceCents:     r.PriceCents,
	}
}

type UpdatePlanRequest struct {
	Name           *string `json:"name,omitempty" binding:"omitempty,max=100"`
	DurationMonths *int    `json:"duration_months,omitempty" binding:"omitempty,min=1,max=36"`
	PriceCents     *int64  `json:"price_cents,omitempty" binding:"omitempty,min=1"`
}

func (r *UpdatePlanRequest) ToCommand(sid string) usecases.UpdatePlanCommand {
	return usecases.UpdatePlanCommand{
		SID:            sid,
		Name:           r.Name,
		DurationMonths: r.DurationMonths,
		PriceCents:     r.PriceCents,
	}
}
