// Package payment holds provider adapters for the charge gateway. The manual
// gateway is the front-desk flow: staff register the charge, collect cash or a
// card terminal payment, then confirm or fail it by reference.
package payment

import (
	"context"

	"github.com/google/uuid"

	"gymcore/internal/application/payment/gateway"
	vo "gymcore/internal/domain/payment/valueobjects"
	"gymcore/internal/shared/logger"
)

type ManualGateway struct {
	logger logger.Interface
}

func NewManualGateway(logger logger.Interface) *ManualGateway {
	return &ManualGateway{logger: logger}
}

// Initiate registers the charge locally. The reference is generated here
// because no external provider is involved; it is still what confirmation
// callbacks key on, so the flow matches a hosted provider's.
func (g *ManualGateway) Initiate(ctx context.Context, memberSID string, amount vo.Money) (*gateway.Initiation, error) {
	ref := uuid.New().String()
	g.logger.Debugw("manual charge registered",
		"member_sid", memberSID,
		"amount", amount.String(),
		"provider_reference", ref,
	)
	return &gateway.Initiation{ProviderReference: ref}, nil
}
