package mappers

import (
	"fmt"

	"gymcore/internal/domain/membership"
	"gymcore/internal/infrastructure/persistence/models"
)

type MembershipPeriodMapper interface {
	ToEntity(model *models.MembershipPeriodModel) (*membership.Period, error)
	ToModel(entity *membership.Period) (*models.MembershipPeriodModel, error)
	ToEntities(models []*models.MembershipPeriodModel) ([]*membership.Period, error)
}

type MembershipPeriodMapperImpl struct{}

func NewMembershipPeriodMapper() MembershipPeriodMapper {
	return &MembershipPeriodMapperImpl{}
}

func (m *MembershipPeriodMapperImpl) ToEntity(model *models.MembershipPeriodModel) (*membership.Period, error) {
	if model == nil {
		return nil, nil
	}

	status := membership.PeriodStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid period status: %s", model.Status)
	}

	entity, err := membership.ReconstructPeriod(membership.PeriodReconstructParams{
		ID:        model.ID,
		SID:       model.SID,
		MemberID:  model.MemberID,
		PlanID:    model.PlanID,
		StartDate: model.StartDate,
		EndDate:   model.EndDate,
		Status:    status,
		Version:   model.Version,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct period: %w", err)
	}
	return entity, nil
}

func (m *MembershipPeriodMapperImpl) ToModel(entity *membership.Period) (*models.MembershipPeriodModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MembershipPeriodModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		MemberID:  entity.MemberID(),
		PlanID:    entity.PlanID(),
		StartDate: entity.StartDate(),
		EndDate:   entity.EndDate(),
		Status:    string(entity.Status()),
		Version:   entity.Version(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *MembershipPeriodMapperImpl) ToEntities(periodModels []*models.MembershipPeriodModel) ([]*membership.Period, error) {
	entities := make([]*membership.Period, 0, len(periodModels))
	for _, model := range periodModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
