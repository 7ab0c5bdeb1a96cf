package mappers

import (
	"fmt"

	"gymcore/internal/domain/payment"
	vo "gymcore/internal/domain/payment/valueobjects"
	"gymcore/internal/infrastructure/persistence/models"
)

type PaymentMapper interface {
	ToEntity(model *models.PaymentModel) (*payment.Payment, error)
	ToModel(entity *payment.Payment) (*models.PaymentModel, error)
	ToEntities(models []*models.PaymentModel) ([]*payment.Payment, error)
}

type PaymentMapperImpl struct{}

func NewPaymentMapper() PaymentMapper {
	return &PaymentMapperImpl{}
}

func (m *PaymentMapperImpl) ToEntity(model *models.PaymentModel) (*payment.Payment, error) {
	if model == nil {
		return nil, nil
	}

	status := vo.PaymentStatus(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", model.Status)
	}

	entity, err := payment.ReconstructPayment(payment.PaymentReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		MemberID:          model.MemberID,
		PlanID:            model.PlanID,
		Amount:            vo.NewMoney(model.AmountCents, model.Currency),
		Status:            status,
		Date:              model.Date,
		ProviderReference: model.ProviderReference,
		FailureReason:     model.FailureReason,
		PaidAt:            model.PaidAt,
		Version:           model.Version,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct payment: %w", err)
	}
	return entity, nil
}

func (m *PaymentMapperImpl) ToModel(entity *payment.Payment) (*models.PaymentModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PaymentModel{
		ID:                entity.ID(),
		SID:               entity.SID(),
		MemberID:          entity.MemberID(),
		PlanID:            entity.PlanID(),
		AmountCents:       entity.Amount().AmountInCents(),
		Currency:          entity.Amount().Currency(),
		Status:            entity.Status().String(),
		Date:              entity.Date(),
		ProviderReference: entity.ProviderReference(),
		FailureReason:     entity.FailureReason(),
		PaidAt:            entity.PaidAt(),
		Version:           entity.Version(),
		CreatedAt:         entity.CreatedAt(),
		UpdatedAt:         entity.UpdatedAt(),
	}, nil
}

func (m *PaymentMapperImpl) ToEntities(paymentModels []*models.PaymentModel) ([]*payment.Payment, error) {
	entities := make([]*payment.Payment, 0, len(paymentModels))
	for _, model := range paymentModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
