package models

import (
	"time"

	"gymcore/internal/shared/constants"
)

// CheckInModel represents the database persistence model for gym entries.
type CheckInModel struct {
	ID        uint      `gorm:"primarykey"`
	SID       string    `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: chk_xxx"`
	MemberID  uint      `gorm:"not null;index:idx_checkin_member"`
	DateTime  time.Time `gorm:"not null;index:idx_checkin_datetime"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (CheckInModel) TableName() string {
	return constants.TableCheckIns
}
