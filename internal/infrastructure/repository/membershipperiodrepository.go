package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymcore/internal/domain/membership"
	"gymcore/internal/infrastructure/persistence/mappers"
	"gymcore/internal/infrastructure/persistence/models"
	"gymcore/internal/shared/db"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type MembershipPeriodRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MembershipPeriodMapper
	logger logger.Interface
}

func NewMembershipPeriodRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) membership.PeriodRepository {
	return &MembershipPeriodRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewMembershipPeriodMapper(),
		logger: logger,
	}
}

func (r *MembershipPeriodRepositoryImpl) Create(ctx context.Context, periodEntity *membership.Period) error {
	model, err := r.mapper.ToModel(periodEntity)
	if err != nil {
		r.logger.Errorw("failed to map period entity to model", "error", err)
		return fmt.Errorf("failed to map period entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create period in database", "member_id", model.MemberID, "error", err)
		return fmt.Errorf("failed to create period: %w", err)
	}

	if err := periodEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set period ID: %w", err)
	}
	return nil
}

func (r *MembershipPeriodRepositoryImpl) GetByID(ctx context.Context, periodID uint) (*membership.Period, error) {
	var model models.MembershipPeriodModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, periodID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("membership period not found")
		}
		r.logger.Errorw("failed to get period by ID", "id", periodID, "error", err)
		return nil, fmt.Errorf("failed to get period: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MembershipPeriodRepositoryImpl) GetCurrentByMemberID(ctx context.Context, memberID uint) (*membership.Period, error) {
	var model models.MembershipPeriodModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("member_id = ?", memberID).
		Order("end_date DESC").
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get current period", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to get current period: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MembershipPeriodRepositoryImpl) ListByMemberID(ctx context.Context, memberID uint) ([]*membership.Period, error) {
	var periodModels []*models.MembershipPeriodModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("member_id = ?", memberID).
		Order("end_date DESC").
		Find(&periodModels).Error; err != nil {
		r.logger.Errorw("failed to list periods", "member_id", memberID, "error", err)
		return nil, fmt.Errorf("failed to list periods: %w", err)
	}

	return r.mapper.ToEntities(periodModels)
}

func (r *MembershipPeriodRepositoryImpl) Update(ctx context.Context, periodEntity *membership.Period) error {
	model, err := r.mapper.ToModel(periodEntity)
	if err != nil {
		r.logger.Errorw("failed to map period entity to model", "id", periodEntity.ID(), "error", err)
		return fmt.Errorf("failed to map period entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.MembershipPeriodModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"start_date": model.StartDate,
			"end_date":   model.EndDate,
			"status":     model.Status,
			"version":    model.Version,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update period", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update period: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membership.ErrVersionConflict
	}
	return nil
}
