package repository

import (
	"context"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/google/uuid"
)

// IOrderRepo persists checkout orders.
type IOrderRepo interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error
	UpdateStatusByPaymentID(ctx context.Context, paymentID string, status domain.PaymentStatus) error
}
