package gateway

import (
	"context"

	vo "gymcore/internal/domain/payment/valueobjects"
)

// Initiation is what the provider hands back when a charge is registered.
type Initiation struct {
	ProviderReference string
}

// Gateway registers a charge with the payment provider. Confirmation arrives
// later through the confirm/fail operations, keyed by the provider reference.
type Gateway interface {
	Initiate(ctx context.Context, memberSID string, amount vo.Money) (*Initiation, error)
}
