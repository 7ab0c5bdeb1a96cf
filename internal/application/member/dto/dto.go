package dto

import (
	"time"

	"gymcore/internal/domain/member"
)

// MemberDTO is the API-facing projection of the member aggregate.
type MemberDTO struct {
	SID              string     `json:"id"`
	FirstName        string     `json:"first_name"`
	LastName         string     `json:"last_name"`
	DNI              string     `json:"dni"`
	Email            *string    `json:"email,omitempty"`
	Phone            *string    `json:"phone,omitempty"`
	Status           string     `json:"status"`
	StartDate        time.Time  `json:"start_date"`
	RenewalDate      time.Time  `json:"renewal_date"`
	MembershipStatus string     `json:"membership_status"`
	PlanID           *uint      `json:"plan_id,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CheckInInfoDTO is the front-desk lookup projection: formatted dates and a
// plain-language access text rather than raw lifecycle fields.
type CheckInInfoDTO struct {
	SID                  string  `json:"id"`
	FirstName            string  `json:"first_name"`
	LastName             string  `json:"last_name"`
	StartDate            string  `json:"start_date"`
	RenewalDate          string  `json:"renewal_date"`
	PlanName             *string `json:"plan_name"`
	MembershipStatusText string  `json:"membership_status_text"`
}

// ToMemberDTO converts the aggregate to its API projection.
func ToMemberDTO(m *member.Member) *MemberDTO {
	if m == nil {
		return nil
	}
	return &MemberDTO{
		SID:              m.SID(),
		FirstName:        m.FirstName(),
		LastName:         m.LastName(),
		DNI:              m.DNI(),
		Email:            m.Email(),
		Phone:            m.Phone(),
		Status:           m.Status().String(),
		StartDate:        m.StartDate(),
		RenewalDate:      m.RenewalDate(),
		MembershipStatus: m.MembershipStatus().String(),
		PlanID:           m.PlanID(),
		CreatedAt:        m.CreatedAt(),
		UpdatedAt:        m.UpdatedAt(),
	}
}

// ToMemberDTOs converts a list of aggregates.
func ToMemberDTOs(members []*member.Member) []*MemberDTO {
	dtos := make([]*MemberDTO, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, ToMemberDTO(m))
	}
	return dtos
}
