// Package checkin records front-desk visits.
package checkin

import (
	"fmt"
	"time"

	"gymcore/internal/shared/id"
)

// CheckIn is a single visit record for a member.
type CheckIn struct {
	id        uint
	sid       string
	memberID  uint
	dateTime  time.Time
	createdAt time.Time
}

// NewCheckIn records a visit at now.
func NewCheckIn(memberID uint, now time.Time) (*CheckIn, error) {
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}

	return &CheckIn{
		sid:       id.MustGenerateWithPrefix(id.PrefixCheckIn, id.DefaultLength),
		memberID:  memberID,
		dateTime:  now,
		createdAt: now,
	}, nil
}

// ReconstructCheckIn rebuilds a check-in from persistence.
func ReconstructCheckIn(checkInID uint, sid string, memberID uint, dateTime, createdAt time.Time) (*CheckIn, error) {
	if checkInID == 0 {
		return nil, fmt.Errorf("check-in ID cannot be zero")
	}
	if memberID == 0 {
		return nil, fmt.Errorf("member ID is required")
	}

	return &CheckIn{
		id:        checkInID,
		sid:       sid,
		memberID:  memberID,
		dateTime:  dateTime,
		createdAt: createdAt,
	}, nil
}

func (c *CheckIn) ID() uint             { return c.id }
func (c *CheckIn) SID() string          { return c.sid }
func (c *CheckIn) MemberID() uint       { return c.memberID }
func (c *CheckIn) DateTime() time.Time  { return c.dateTime }
func (c *CheckIn) CreatedAt() time.Time { return c.createdAt }

// SetID sets the check-in ID (only for persistence layer use)
func (c *CheckIn) SetID(checkInID uint) error {
	if c.id != 0 {
		return fmt.Errorf("check-in ID is already set")
	}
	if checkInID == 0 {
		return fmt.Errorf("check-in ID cannot be zero")
	}
	c.id = checkInID
	return nil
}
