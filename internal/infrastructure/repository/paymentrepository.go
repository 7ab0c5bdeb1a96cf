package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"gymcore/internal/domain/payment"
	"gymcore/internal/infrastructure/persistence/mappers"
	"gymcore/internal/infrastructure/persistence/models"
	"gymcore/internal/shared/db"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type PaymentRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PaymentMapper
	logger logger.Interface
}

func NewPaymentRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) payment.Repository {
	return &PaymentRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewPaymentMapper(),
		logger: logger,
	}
}

func (r *PaymentRepositoryImpl) Create(ctx context.Context, paymentEntity *payment.Payment) error {
	model, err := r.mapper.ToModel(paymentEntity)
	if err != nil {
		r.logger.Errorw("failed to map payment entity to model", "error", err)
		return fmt.Errorf("failed to map payment entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create payment in database", "member_id", model.MemberID, "error", err)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	if err := paymentEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set payment ID: %w", err)
	}
	return nil
}

func (r *PaymentRepositoryImpl) GetByID(ctx context.Context, paymentID uint) (*payment.Payment, error) {
	var model models.PaymentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, paymentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		r.logger.Errorw("failed to get payment by ID", "id", paymentID, "error", err)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepositoryImpl) GetBySID(ctx context.Context, sid string) (*payment.Payment, error) {
	var model models.PaymentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("payment not found")
		}
		r.logger.Errorw("failed to get payment by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepositoryImpl) GetByProviderReference(ctx context.Context, ref string) (*payment.Payment, error) {
	var model models.PaymentModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("provider_reference = ?", ref).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get payment by provider reference", "provider_reference", ref, "error", err)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PaymentRepositoryImpl) List(ctx context.Context, memberID *uint) ([]*payment.Payment, error) {
	var paymentModels []*models.PaymentModel

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.PaymentModel{})
	if memberID != nil {
		query = query.Where("member_id = ?", *memberID)
	}

	if err := query.Order("date DESC, id DESC").Find(&paymentModels).Error; err != nil {
		r.logger.Errorw("failed to list payments", "error", err)
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	return r.mapper.ToEntities(paymentModels)
}

func (r *PaymentRepositoryImpl) Update(ctx context.Context, paymentEntity *payment.Payment) error {
	model, err := r.mapper.ToModel(paymentEntity)
	if err != nil {
		r.logger.Errorw("failed to map payment entity to model", "id", paymentEntity.ID(), "error", err)
		return fmt.Errorf("failed to map payment entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.PaymentModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"status":             model.Status,
			"provider_reference": model.ProviderReference,
			"failure_reason":     model.FailureReason,
			"paid_at":            model.PaidAt,
			"version":            model.Version,
			"updated_at":         model.UpdatedAt,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to update payment", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update payment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewConflictError("payment was modified concurrently")
	}
	return nil
}
