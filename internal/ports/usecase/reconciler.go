package usecase

import (
	"context"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/google/uuid"
)

// IReconcilerUseCase applies gateway payment notifications to stored orders.
type IReconcilerUseCase interface {
	// ProcessEvent handles one webhook delivery. Only a failed status write
	// returns an error; every downstream effect is best-effort.
	ProcessEvent(ctx context.Context, event *domain.WebhookEvent) error

	// FinalizeOrder is the card-payment variant: confirm the order by internal
	// id, then run the same provisioning and fan-out sequence synchronously.
	FinalizeOrder(ctx context.Context, orderID uuid.UUID) error
}

// IFulfillmentUseCase provisions access for a confirmed order. It never fails
// the caller; all internal errors are logged and swallowed.
type IFulfillmentUseCase interface {
	Provision(ctx context.Context, order *domain.Order)
}

// INotifierUseCase fans out the post-confirmation side effects. order may be
// nil when the webhook raced order creation.
type INotifierUseCase interface {
	NotifyConfirmed(ctx context.Context, order *domain.Order, paymentID string, value float64)
}
