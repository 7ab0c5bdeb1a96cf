package models

import (
	"time"

	"gorm.io/gorm"

	"gymcore/internal/shared/constants"
)

// MemberModel represents the database persistence model for members.
// This is the anti-corruption layer between domain and database.
type MemberModel struct {
	ID               uint    `gorm:"primarykey"`
	SID              string  `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: mem_xxx"`
	FirstName        string  `gorm:"not null;size:100"`
	LastName         string  `gorm:"not null;size:100"`
	DNI              string  `gorm:"uniqueIndex;not null;size:20"`
	Email            *string `gorm:"size:255"`
	Phone            *string `gorm:"size:50"`
	Status           string  `gorm:"not null;size:20;index:idx_member_status"`
	StartDate        time.Time
	RenewalDate      time.Time `gorm:"not null;index:idx_member_renewal"`
	MembershipStatus string    `gorm:"not null;size:20;index:idx_membership_status"`
	PlanID           *uint     `gorm:"index:idx_member_plan"`
	Version          int       `gorm:"not null;default:1"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (MemberModel) TableName() string {
	return constants.TableMembers
}

// BeforeCreate hook for GORM
func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.Version == 0 {
		m.Version = 1
	}
	return nil
}
