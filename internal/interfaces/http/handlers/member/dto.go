package member

import (
	"time"

	"gymcore/internal/application/member/usecases"
	apperrors "gymcore/internal/shared/errors"
)

// renewalDateLayout is the wire format for membership dates. Times of day
// carry no meaning for a renewal, so the API only accepts plain dates.
const renewalDateLayout = "2006-01-02"

type CreateMemberRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	DNI         string  `json:"dni" binding:"required,min=6,max=20"`
	Email       *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	RenewalDate string  `json:"renewal_date" binding:"required"`
	PlanID      *string `json:"plan_id,omitempty"`
}

func (r *CreateMemberRequest) ToCommand() (usecases.CreateMemberCommand, error) {
	renewalDate, err := time.Parse(renewalDateLayout, r.RenewalDate)
	if err != nil {
		return usecases.CreateMemberCommand{}, apperrors.NewValidationError(
			"invalid renewal_date", "expected format YYYY-MM-DD")
	}

	return usecases.CreateMemberCommand{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DNI:         r.DNI,
		Email:       r.Email,
		Phone:       r.Phone,
		RenewalDate: renewalDate,
		PlanSID:     r.PlanID,
	}, nil
}

type UpdateMemberRequest struct {
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,max=100"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone     *string `json:"phone,omitempty" binding:"omitempty,max=30"`
	Status    *string `json:"status,omitempty" binding:"omitempty,oneof=Active Inactive Suspended"`
}

func (r *UpdateMemberRequest) ToCommand(sid string) usecases.UpdateMemberCommand {
	return usecases.UpdateMemberCommand{
		SID:       sid,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Status:    r.Status,
	}
}

type RenewMembershipRequest struct {
	DNI            string  `json:"dni" binding:"required,min=6,max=20"`
	NewRenewalDate *string `json:"new_renewal_date,omitempty"`
	PlanID         *string `json:"plan_id,omitempty"`
}

func (r *RenewMembershipRequest) ToCommand() (usecases.RenewMembershipCommand, error) {
	cmd := usecases.RenewMembershipCommand{
		DNI:     r.DNI,
		PlanSID: r.PlanID,
	}

	if r.NewRenewalDate != nil {
		parsed, err := time.Parse(renewalDateLayout, *r.NewRenewalDate)
		if err != nil {
			return usecases.RenewMembershipCommand{}, apperrors.NewValidationError(
				"invalid new_renewal_date", "expected format YYYY-MM-DD")
		}
		cmd.NewRenewalDate = &parsed
	}

	return cmd, nil
}

type ListMembersRequest struct {
	MembershipStatus *string `form:"membership_status" binding:"omitempty,oneof=active expired"`
	Status           *string `form:"status" binding:"omitempty,oneof=Active Inactive Suspended"`
	Page             int     `form:"page"`
	PageSize         int     `form:"page_size"`
}

func (r *ListMembersRequest) ToCommand() usecases.ListMembersCommand {
	return usecases.ListMembersCommand{
		MembershipStatus: r.MembershipStatus,
		Status:           r.Status,
		Page:             r.Page,
		PageSize:         r.PageSize,
	}
}
