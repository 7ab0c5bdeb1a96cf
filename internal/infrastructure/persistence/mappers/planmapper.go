package mappers

import (
	"fmt"

	"gymcore/internal/domain/plan"
	"gymcore/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*plan.Plan, error)
	ToModel(entity *plan.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*plan.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*plan.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := plan.ReconstructPlan(plan.PlanReconstructParams{
		ID:             model.ID,
		SID:            model.SID,
		Name:           model.Name,
		DurationMonths: model.DurationMonths,
		PriceCents:     model.PriceCents,
		Version:        model.Version,
		CreatedAt:      model.CreatedAt,
		UpdatedAt:      model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan: %w", err)
	}
	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *plan.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Name:           entity.Name(),
		DurationMonths: entity.DurationMonths(),
		PriceCents:     entity.PriceCents(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(planModels []*models.PlanModel) ([]*plan.Plan, error) {
	entities := make([]*plan.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
