package checkout

import (
	"context"
	"errors"
	"io"
	"testing"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/google/uuid"
)

type fakeOrderRepo struct {
	created []*domain.Order
	err     error
}

func (f *fakeOrderRepo) Create(_ context.Context, order *domain.Order) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, order)
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, _ uuid.UUID) (*domain.Order, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeOrderRepo) GetByPaymentID(_ context.Context, _ string) (*domain.Order, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeOrderRepo) UpdateStatus(_ context.Context, _ uuid.UUID, _ domain.PaymentStatus) error {
	return errors.New("not implemented")
}

func (f *fakeOrderRepo) UpdateStatusByPaymentID(_ context.Context, _ string, _ domain.PaymentStatus) error {
	return errors.New("not implemented")
}

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (f *fakeProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, errors.New("sql: no rows in result set")
	}
	return product, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func TestCreateOrderSnapshotsProduct(t *testing.T) {
	orderRepo := &fakeOrderRepo{}
	productRepo := &fakeProductRepo{products: map[string]*domain.Product{
		"prod_1": {ID: "prod_1", Name: "Curso de Go", Price: 149.9},
	}}
	svc := &Service{OrderRepo: orderRepo, ProductRepo: productRepo, Log: testLogger()}

	order, err := svc.CreateOrder(context.Background(), usecase.CreateOrderRequest{
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		ProductID:     "prod_1",
		PaymentMethod: domain.PaymentMethodPix,
		UTMSource:     strPtr("instagram"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if order.ID == uuid.Nil {
		t.Errorf("expected a generated order id")
	}
	if order.Status != domain.PaymentStatusPending {
		t.Errorf("new orders start PENDING, got %s", order.Status)
	}
	if order.ProductName != "Curso de Go" || order.ProductPrice != 149.9 {
		t.Errorf("product snapshot must come from the catalog, got %q %v", order.ProductName, order.ProductPrice)
	}
	if order.CustomerID == "" {
		t.Errorf("expected a generated customer id")
	}
	if order.UTMSource == nil || *order.UTMSource != "instagram" {
		t.Errorf("attribution must be carried onto the order")
	}

	if len(orderRepo.created) != 1 || orderRepo.created[0] != order {
		t.Errorf("order must be persisted")
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	svc := &Service{
		OrderRepo:   &fakeOrderRepo{},
		ProductRepo: &fakeProductRepo{products: map[string]*domain.Product{}},
		Log:         testLogger(),
	}

	_, err := svc.CreateOrder(context.Background(), usecase.CreateOrderRequest{
		ProductID: "missing",
	})
	if err == nil {
		t.Fatal("expected error for unknown product")
	}
}

func TestCreateOrderPersistFailure(t *testing.T) {
	svc := &Service{
		OrderRepo: &fakeOrderRepo{err: errors.New("connection refused")},
		ProductRepo: &fakeProductRepo{products: map[string]*domain.Product{
			"prod_1": {ID: "prod_1", Name: "Curso", Price: 10},
		}},
		Log: testLogger(),
	}

	_, err := svc.CreateOrder(context.Background(), usecase.CreateOrderRequest{ProductID: "prod_1"})
	if err == nil {
		t.Fatal("expected error when persistence fails")
	}
}
