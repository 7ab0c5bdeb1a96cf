package models

import (
	"time"

	"gorm.io/gorm"

	"gymcore/internal/shared/constants"
)

// MembershipPeriodModel represents the database persistence model for the
// paid-access periods opened and extended by confirmed payments.
type MembershipPeriodModel struct {
	ID        uint   `gorm:"primarykey"`
	SID       string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: per_xxx"`
	MemberID  uint   `gorm:"not null;index:idx_period_member"`
	PlanID    uint   `gorm:"not null;index:idx_period_plan"`
	StartDate time.Time `gorm:"not null"`
	EndDate   time.Time `gorm:"not null;index:idx_period_end"`
	Status    string    `gorm:"not null;size:20"`
	Version   int       `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (MembershipPeriodModel) TableName() string {
	return constants.TableMembershipPeriods
}

// BeforeCreate hook for GORM
func (p *MembershipPeriodModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
