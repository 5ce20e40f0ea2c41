package usecase

import (
	"context"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
)

// ICheckoutUseCase creates pending orders from the checkout form.
type ICheckoutUseCase interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*domain.Order, error)
}

// CreateOrderRequest carries the customer snapshot and campaign attribution
// captured by the checkout. The product snapshot is resolved server-side from
// ProductID. AsaasPaymentID is set when the gateway charge was already created.
type CreateOrderRequest struct {
	CustomerName    string
	CustomerEmail   string
	CustomerCpfCnpj string
	CustomerPhone   string
	ProductID       string
	PaymentMethod   domain.PaymentMethod
	AsaasPaymentID  *string
	UTMSource       *string
	UTMMedium       *string
	UTMCampaign     *string
	UTMTerm         *string
	UTMContent      *string
}
