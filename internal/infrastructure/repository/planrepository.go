package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymcore/internal/domain/plan"
	"gymcore/internal/infrastructure/persistence/mappers"
	"gymcore/internal/infrastructure/persistence/models"
	"gymcore/internal/shared/db"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) plan.Repository {
	return &PlanRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, planEntity *plan.Plan) error {
	model, err := r.mapper.ToModel(planEntity)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "name", model.Name, "error", err)
		if apperrors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := planEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, planID uint) (*plan.Plan, error) {
	var model models.PlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, planID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		r.logger.Errorw("failed to get plan by ID", "id", planID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetBySID(ctx context.Context, sid string) (*plan.Plan, error) {
	var model models.PlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("plan not found")
		}
		r.logger.Errorw("failed to get plan by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetByName(ctx context.Context, name string) (*plan.Plan, error) {
	var model models.PlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context) ([]*plan.Plan, error) {
	var planModels []*models.PlanModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("price_cents ASC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	return r.mapper.ToEntities(planModels)
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, planEntity *plan.Plan) error {
	model, err := r.mapper.ToModel(planEntity)
	if err != nil {
		r.logger.Errorw("failed to map plan entity to model", "id", planEntity.ID(), "error", err)
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PlanModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"name":            model.Name,
			"duration_months": model.DurationMonths,
			"price_cents":     model.PriceCents,
			"version":         model.Version,
			"updated_at":      model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return result.Error
		}
		r.logger.Errorw("failed to update plan", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("plan was modified concurrently")
	}
	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, planID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.PlanModel{}, planID).Error; err != nil {
		r.logger.Errorw("failed to delete plan", "id", planID, "error", err)
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}
