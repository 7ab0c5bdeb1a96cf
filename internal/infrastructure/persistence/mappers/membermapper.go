package mappers

import (
	"fmt"

	"gymcore/internal/domain/member"
	vo "gymcore/internal/domain/member/valueobjects"
	"gymcore/internal/infrastructure/persistence/models"
)

type MemberMapper interface {
	ToEntity(model *models.MemberModel) (*member.Member, error)
	ToModel(entity *member.Member) (*models.MemberModel, error)
	ToEntities(models []*models.MemberModel) ([]*member.Member, error)
}

type MemberMapperImpl struct{}

func NewMemberMapper() MemberMapper {
	return &MemberMapperImpl{}
}

func (m *MemberMapperImpl) ToEntity(model *models.MemberModel) (*member.Member, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.MemberStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid member status: %s", model.Status)
	}
	membershipStatus := vo.MembershipStatus(model.MembershipStatus)
	if !membershipStatus.IsValid() {
		return nil, fmt.Errorf("invalid membership status: %s", model.MembershipStatus)
	}

	entity, err := member.ReconstructMember(member.MemberReconstructParams{
		ID:               model.ID,
		SID:              model.SID,
		FirstName:        model.FirstName,
		LastName:         model.LastName,
		DNI:              model.DNI,
		Email:            model.Email,
		Phone:            model.Phone,
		Status:           status,
		StartDate:        model.StartDate,
		RenewalDate:      model.RenewalDate,
		MembershipStatus: membershipStatus,
		PlanID:           model.PlanID,
		Version:          model.Version,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct member: %w", err)
	}
	return entity, nil
}

func (m *MemberMapperImpl) ToModel(entity *member.Member) (*models.MemberModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.MemberModel{
		ID:               entity.ID(),
		SID:              entity.SID(),
		FirstName:        entity.FirstName(),
		LastName:         entity.LastName(),
		DNI:              entity.DNI(),
		Email:            entity.Email(),
		Phone:            entity.Phone(),
		Status:           entity.Status().String(),
		StartDate:        entity.StartDate(),
		RenewalDate:      entity.RenewalDate(),
		MembershipStatus: entity.MembershipStatus().String(),
		PlanID:           entity.PlanID(),
		Version:          entity.Version(),
		CreatedAt:        entity.CreatedAt(),
		UpdatedAt:        entity.UpdatedAt(),
	}, nil
}

func (m *MemberMapperImpl) ToEntities(memberModels []*models.MemberModel) ([]*member.Member, error) {
	entities := make([]*member.Member, 0, len(memberModels))
	for _, model := range memberModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
