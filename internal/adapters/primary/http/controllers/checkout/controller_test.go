package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"log/slog"

	server "github.com/admin/ecommerce/checkout-api/internal/adapters/primary/http"
	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type fakeCheckout struct {
	requests []usecase.CreateOrderRequest
	order    *domain.Order
	err      error
}

func (f *fakeCheckout) CreateOrder(_ context.Context, req usecase.CreateOrderRequest) (*domain.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.requests = append(f.requests, req)
	return f.order, nil
}

func testRouter(checkout *fakeCheckout) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return server.NewRouter(&server.Config{}, log, New(checkout, log))
}

func post(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrderSuccess(t *testing.T) {
	order := &domain.Order{
		ID:     uuid.New(),
		Status: domain.PaymentStatusPending,
	}
	checkout := &fakeCheckout{order: order}
	router := testRouter(checkout)

	rec := post(router, `{
		"customer_name": "Ana",
		"customer_email": "ana@example.com",
		"product_id": "prod_1",
		"payment_method": "pix",
		"utm_source": "instagram"
	}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("response is not an order: %v", err)
	}
	if got.ID != order.ID {
		t.Errorf("expected created order in response")
	}

	if len(checkout.requests) != 1 {
		t.Fatalf("expected 1 usecase call, got %d", len(checkout.requests))
	}
	req := checkout.requests[0]
	if req.CustomerName != "Ana" || req.ProductID != "prod_1" {
		t.Errorf("request not mapped: %+v", req)
	}
	if req.PaymentMethod != domain.PaymentMethodPix {
		t.Errorf("payment method not mapped: %q", req.PaymentMethod)
	}
	if req.UTMSource == nil || *req.UTMSource != "instagram" {
		t.Errorf("attribution not mapped")
	}
}

func TestCreateOrderValidation(t *testing.T) {
	checkout := &fakeCheckout{}
	router := testRouter(checkout)

	cases := map[string]string{
		"empty body":      ``,
		"missing name":    `{"customer_email": "a@b.com", "product_id": "p", "payment_method": "pix"}`,
		"invalid email":   `{"customer_name": "Ana", "customer_email": "nope", "product_id": "p", "payment_method": "pix"}`,
		"missing product": `{"customer_name": "Ana", "customer_email": "a@b.com", "payment_method": "pix"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			rec := post(router, body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), domain.MsgInvalidRequest) {
				t.Errorf("unexpected body: %s", rec.Body.String())
			}
		})
	}

	if len(checkout.requests) != 0 {
		t.Errorf("invalid requests must not reach the usecase")
	}
}

func TestCreateOrderFailure(t *testing.T) {
	checkout := &fakeCheckout{err: errors.New("db down")}
	router := testRouter(checkout)

	rec := post(router, `{
		"customer_name": "Ana",
		"customer_email": "ana@example.com",
		"product_id": "prod_1",
		"payment_method": "pix"
	}`)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), domain.MsgOrderCreateFailed) {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
}
