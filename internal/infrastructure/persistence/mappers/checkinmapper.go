package mappers

import (
	"fmt"

	"gymcore/internal/domain/checkin"
	"gymcore/internal/infrastructure/persistence/models"
)

type CheckInMapper interface {
	ToEntity(model *models.CheckInModel) (*checkin.CheckIn, error)
	ToModel(entity *checkin.CheckIn) (*models.CheckInModel, error)
	ToEntities(models []*models.CheckInModel) ([]*checkin.CheckIn, error)
}

type CheckInMapperImpl struct{}

func NewCheckInMapper() CheckInMapper {
	return &CheckInMapperImpl{}
}

func (m *CheckInMapperImpl) ToEntity(model *models.CheckInModel) (*checkin.CheckIn, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := checkin.ReconstructCheckIn(model.ID, model.SID, model.MemberID, model.DateTime, model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct check-in: %w", err)
	}
	return entity, nil
}

func (m *CheckInMapperImpl) ToModel(entity *checkin.CheckIn) (*models.CheckInModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.CheckInModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		MemberID:  entity.MemberID(),
		DateTime:  entity.DateTime(),
		CreatedAt: entity.CreatedAt(),
	}, nil
}

func (m *CheckInMapperImpl) ToEntities(checkInModels []*models.CheckInModel) ([]*checkin.CheckIn, error) {
	entities := make([]*checkin.CheckIn, 0, len(checkInModels))
	for _, model := range checkInModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
