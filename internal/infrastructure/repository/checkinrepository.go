package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymcore/internal/domain/checkin"
	"gymcore/internal/infrastructure/persistence/mappers"
	"gymcore/internal/infrastructure/persistence/models"
	"gymcore/internal/shared/db"
	"gymcore/internal/shared/logger"
)

type CheckInRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.CheckInMapper
	logger logger.Interface
}

func NewCheckInRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) checkin.Repository {
	return &CheckInRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewCheckInMapper(),
		logger: logger,
	}
}

func (r *CheckInRepositoryImpl) Create(ctx context.Context, checkInEntity *checkin.CheckIn) error {
	model, err := r.mapper.ToModel(checkInEntity)
	if err != nil {
		r.logger.Errorw("failed to map check-in entity to model", "error", err)
		return fmt.Errorf("failed to map check-in entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create check-in in database", "member_id", model.MemberID, "error", err)
		return fmt.Errorf("failed to create check-in: %w", err)
	}

	if err := checkInEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set check-in ID: %w", err)
	}
	return nil
}

func (r *CheckInRepositoryImpl) List(ctx context.Context, memberID *uint) ([]*checkin.CheckIn, error) {
	var checkInModels []*models.CheckInModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.CheckInModel{})
	if memberID != nil {
		query = query.Where("member_id = ?", *memberID)
	}

	if err := query.Order("date_time DESC, id DESC").Find(&checkInModels).Error; err != nil {
		r.logger.Errorw("failed to list check-ins", "error", err)
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}

	return r.mapper.ToEntities(checkInModels)
}
