package repository

import (
	"context"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
)

// IWebhookLogRepo appends webhook audit entries.
type IWebhookLogRepo interface {
	Create(ctx context.Context, entry *domain.WebhookLog) error
}
