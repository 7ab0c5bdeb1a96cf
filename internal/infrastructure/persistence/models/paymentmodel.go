package models

import (
	"time"

	"gorm.io/gorm"

	"gymcore/internal/shared/constants"
)

// PaymentModel represents the database persistence model for ledger entries.
// A payment row is never deleted; failed attempts stay as history.
type PaymentModel struct {
	ID                uint    `gorm:"primarykey"`
	SID               string  `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: pay_xxx"`
	MemberID          uint    `gorm:"not null;index:idx_payment_member"`
	PlanID            uint    `gorm:"not null;index:idx_payment_plan"`
	AmountCents       int64   `gorm:"not null"`
	Currency          string  `gorm:"not null;size:3;default:ARS"`
	Status            string  `gorm:"not null;size:20;index:idx_payment_status"`
	Date              time.Time `gorm:"not null"`
	ProviderReference *string   `gorm:"uniqueIndex;size:100"`
	FailureReason     *string   `gorm:"size:500"`
	PaidAt            *time.Time
	Version           int `gorm:"not null;default:1"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName specifies the table name for GORM
func (PaymentModel) TableName() string {
	return constants.TablePayments
}

// BeforeCreate hook for GORM
func (p *PaymentModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
