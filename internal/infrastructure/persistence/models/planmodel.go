package models

import (
	"time"

	"gorm.io/gorm"

	"gymcore/internal/shared/constants"
)

// PlanModel represents the database persistence model for membership plans.
type PlanModel struct {
	ID             uint   `gorm:"primarykey"`
	SID            string `gorm:"uniqueIndex;not null;size:50;comment:Stripe-style ID: plan_xxx"`
	Name           string `gorm:"uniqueIndex;not null;size:100"`
	DurationMonths int    `gorm:"not null"`
	PriceCents     int64  `gorm:"not null;comment:price in cents, ARS"`
	Version        int    `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}

// BeforeCreate hook for GORM
func (p *PlanModel) BeforeCreate(tx *gorm.DB) error {
	if p.Version == 0 {
		p.Version = 1
	}
	return nil
}
