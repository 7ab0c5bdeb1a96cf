package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gymcore/internal/domain/member"
	vo "gymcore/internal/domain/member/valueobjects"
	"gymcore/internal/infrastructure/persistence/mappers"
	"gymcore/internal/infrastructure/persistence/models"
	"gymcore/internal/shared/db"
	apperrors "gymcore/internal/shared/errors"
	"gymcore/internal/shared/logger"
)

type MemberRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MemberMapper
	logger logger.Interface
}

func NewMemberRepository(
	gormDB *gorm.DB,
	logger logger.Interface,
) member.Repository {
	return &MemberRepositoryImpl{
		db:     gormDB,
		mapper: mappers.NewMemberMapper(),
		logger: logger,
	}
}

func (r *MemberRepositoryImpl) Create(ctx context.Context, memberEntity *member.Member) error {
	model, err := r.mapper.ToModel(memberEntity)
	if err != nil {
		r.logger.Errorw("failed to map member entity to model", "error", err)
		return fmt.Errorf("failed to map member entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create member in database", "dni", model.DNI, "error", err)
		if apperrors.IsDuplicateError(err) {
			return err
		}
		return fmt.Errorf("failed to create member: %w", err)
	}

	if err := memberEntity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set member ID: %w", err)
	}
	return nil
}

func (r *MemberRepositoryImpl) GetByID(ctx context.Context, memberID uint) (*member.Member, error) {
	var model models.MemberModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, memberID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		r.logger.Errorw("failed to get member by ID", "id", memberID, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MemberRepositoryImpl) GetBySID(ctx context.Context, sid string) (*member.Member, error) {
	var model models.MemberModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.NewNotFoundError("member not found")
		}
		r.logger.Errorw("failed to get member by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MemberRepositoryImpl) GetByDNI(ctx context.Context, dni string) (*member.Member, error) {
	var model models.MemberModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("dni = ?", dni).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get member by DNI", "dni", dni, "error", err)
		return nil, fmt.Errorf("failed to get member: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *MemberRepositoryImpl) ExistsByDNI(ctx context.Context, dni string) (bool, error) {
	var count int64

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.MemberModel{}).Where("dni = ?", dni).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count members by DNI", "dni", dni, "error", err)
		return false, fmt.Errorf("failed to check dni existence: %w", err)
	}
	return count > 0, nil
}

func (r *MemberRepositoryImpl) List(ctx context.Context, filter member.Filter) ([]*member.Member, int64, error) {
	var memberModels []*models.MemberModel
	var total int64

	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.MemberModel{})

	if filter.MembershipStatus != nil {
		query = query.Where("membership_status = ?", filter.MembershipStatus.String())
	}
	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count members", "error", err)
		return nil, 0, fmt.Errorf("failed to count members: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	if err := query.
		Order("last_name ASC, first_name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&memberModels).Error; err != nil {
		r.logger.Errorw("failed to list members", "error", err)
		return nil, 0, fmt.Errorf("failed to list members: %w", err)
	}

	entities, err := r.mapper.ToEntities(memberModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map members: %w", err)
	}
	return entities, total, nil
}

func (r *MemberRepositoryImpl) Update(ctx context.Context, memberEntity *member.Member) error {
	model, err := r.mapper.ToModel(memberEntity)
	if err != nil {
		r.logger.Errorw("failed to map member entity to model", "id", memberEntity.ID(), "error", err)
		return fmt.Errorf("failed to map member entity: %w", err)
	}

	// The domain bumped the version already; the row must still hold the
	// previous one or a concurrent writer won.
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.MemberModel{}).
		Where("id = ? AND version = ?", model.ID, model.Version-1).
		Updates(map[string]interface{}{
			"first_name":        model.FirstName,
			"last_name":         model.LastName,
			"email":             model.Email,
			"phone":             model.Phone,
			"status":            model.Status,
			"start_date":        model.StartDate,
			"renewal_date":      model.RenewalDate,
			"membership_status": model.MembershipStatus,
			"plan_id":           model.PlanID,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return result.Error
		}
		r.logger.Errorw("failed to update member", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return member.ErrVersionConflict
	}
	return nil
}

func (r *MemberRepositoryImpl) Delete(ctx context.Context, memberID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Delete(&models.MemberModel{}, memberID).Error; err != nil {
		r.logger.Errorw("failed to delete member", "id", memberID, "error", err)
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

func (r *MemberRepositoryImpl) MarkLapsedExpired(ctx context.Context, now time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.MemberModel{}).
		Where("renewal_date < ? AND membership_status != ?", now, vo.MembershipExpired.String()).
		Updates(map[string]interface{}{
			"membership_status": vo.MembershipExpired.String(),
			"version":           gorm.Expr("version + 1"),
			"updated_at":        now,
		})

	if result.Error != nil {
		r.logger.Errorw("failed to expire lapsed members", "error", result.Error)
		return 0, fmt.Errorf("failed to expire lapsed members: %w", result.Error)
	}
	return result.RowsAffected, nil
}
