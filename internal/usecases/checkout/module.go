package checkout

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/repository"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/google/uuid"
)

// Service creates pending orders from the checkout form. The product snapshot
// is resolved server-side so the stored price cannot be tampered with.
type Service struct {
	OrderRepo   repository.IOrderRepo
	ProductRepo repository.IProductRepo
	Log         *slog.Logger
}

func New(
	orderRepo repository.IOrderRepo,
	productRepo repository.IProductRepo,
	log *slog.Logger,
) usecase.ICheckoutUseCase {
	return &Service{
		OrderRepo:   orderRepo,
		ProductRepo: productRepo,
		Log:         log,
	}
}

func (s *Service) CreateOrder(ctx context.Context, req usecase.CreateOrderRequest) (*domain.Order, error) {
	product, err := s.ProductRepo.GetByID(ctx, req.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to load product: %w", err)
	}

	now := time.Now()
	order := &domain.Order{
		ID:              uuid.New(),
		CustomerID:      fmt.Sprintf("customer_%d", now.UnixMilli()),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerCpfCnpj: req.CustomerCpfCnpj,
		CustomerPhone:   req.CustomerPhone,
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductPrice:    product.Price,
		Status:          domain.PaymentStatusPending,
		PaymentMethod:   req.PaymentMethod,
		AsaasPaymentID:  req.AsaasPaymentID,
		UTMSource:       req.UTMSource,
		UTMMedium:       req.UTMMedium,
		UTMCampaign:     req.UTMCampaign,
		UTMTerm:         req.UTMTerm,
		UTMContent:      req.UTMContent,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.OrderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.Log.Info("order created",
		"order_id", order.ID,
		"product_id", order.ProductID,
		"payment_method", order.PaymentMethod,
	)

	return order, nil
}
