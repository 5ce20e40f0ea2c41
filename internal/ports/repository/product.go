package repository

import (
	"context"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
)

// IProductRepo reads the product catalog. Read-only from this service's
// perspective.
type IProductRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
