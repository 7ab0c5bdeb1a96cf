package dto

import (
	"time"

	"gymcore/internal/domain/checkin"
)

// CheckInDTO is the API-facing projection of a recorded gym entry.
type CheckInDTO struct {
	SID      string    `json:"id"`
	MemberID uint      `json:"member_id"`
	DateTime time.Time `json:"date_time"`
}

func ToCheckInDTO(c *checkin.CheckIn) *CheckInDTO {
	if c == nil {
		return nil
	}
	return &CheckInDTO{
		SID:      c.SID(),
		MemberID: c.MemberID(),
		DateTime: c.DateTime(),
	}
}

func ToCheckInDTOs(checkIns []*checkin.CheckIn) []*CheckInDTO {
	dtos := make([]*CheckInDTO, 0, len(checkIns))
	for _, c := range checkIns {
		dtos = append(dtos, ToCheckInDTO(c))
	}
	return dtos
}
