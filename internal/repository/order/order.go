package orderRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/persistence"
	ports "github.com/admin/ecommerce/checkout-api/internal/ports/repository"
	"github.com/google/uuid"
)

type orderColumns struct {
	TableName       string
	ID              string
	CustomerID      string
	CustomerName    string
	CustomerEmail   string
	CustomerCpfCnpj string
	CustomerPhone   string
	ProductID       string
	ProductName     string
	ProductPrice    string
	Status          string
	PaymentMethod   string
	AsaasPaymentID  string
	UTMSource       string
	UTMMedium       string
	UTMCampaign     string
	UTMTerm         string
	UTMContent      string
	CreatedAt       string
	UpdatedAt       string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns orderColumns
}

func New(db persistence.Persistence, log *slog.Logger) ports.IOrderRepo {
	cols := orderColumns{
		TableName:       "orders",
		ID:              "id",
		CustomerID:      "customer_id",
		CustomerName:    "customer_name",
		CustomerEmail:   "customer_email",
		CustomerCpfCnpj: "customer_cpf_cnpj",
		CustomerPhone:   "customer_phone",
		ProductID:       "product_id",
		ProductName:     "product_name",
		ProductPrice:    "product_price",
		Status:          "status",
		PaymentMethod:   "payment_method",
		AsaasPaymentID:  "asaas_payment_id",
		UTMSource:       "utm_source",
		UTMMedium:       "utm_medium",
		UTMCampaign:     "utm_campaign",
		UTMTerm:         "utm_term",
		UTMContent:      "utm_content",
		CreatedAt:       "created_at",
		UpdatedAt:       "updated_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns returns all columns (19 fields).
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.CustomerID,
		r.columns.CustomerName,
		r.columns.CustomerEmail,
		r.columns.CustomerCpfCnpj,
		r.columns.CustomerPhone,
		r.columns.ProductID,
		r.columns.ProductName,
		r.columns.ProductPrice,
		r.columns.Status,
		r.columns.PaymentMethod,
		r.columns.AsaasPaymentID,
		r.columns.UTMSource,
		r.columns.UTMMedium,
		r.columns.UTMCampaign,
		r.columns.UTMTerm,
		r.columns.UTMContent,
		r.columns.CreatedAt,
		r.columns.UpdatedAt,
	)
}

// Create inserts a new order.
func (r *Repository) Create(ctx context.Context, order *domain.Order) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`,
		r.columns.TableName,
		r.allColumns(),
	)

	err := r.db.Exec(ctx, query,
		order.ID,
		order.CustomerID,
		order.CustomerName,
		order.CustomerEmail,
		order.CustomerCpfCnpj,
		order.CustomerPhone,
		order.ProductID,
		order.ProductName,
		order.ProductPrice,
		string(order.Status),
		string(order.PaymentMethod),
		order.AsaasPaymentID,
		order.UTMSource,
		order.UTMMedium,
		order.UTMCampaign,
		order.UTMTerm,
		order.UTMContent,
		order.CreatedAt,
		order.UpdatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create order",
			"error", err,
			"order_id", order.ID,
			"product_id", order.ProductID,
		)
		return fmt.Errorf("failed to create order: %w", err)
	}

	r.Log.Debug("order created successfully",
		"order_id", order.ID,
		"product_id", order.ProductID,
	)
	return nil
}

// GetByID retrieves an order by internal id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var order domain.Order

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("order not found", "order_id", id)
			return nil, fmt.Errorf("order not found: %w", err)
		}
		r.Log.Error("failed to get order",
			"error", err,
			"order_id", id,
		)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// GetByPaymentID retrieves the order correlated with a gateway payment id.
func (r *Repository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Order, error) {
	var order domain.Order

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.AsaasPaymentID,
	)

	err := r.db.Get(ctx, &order, query, paymentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("order not found by payment_id", "payment_id", paymentID)
			return nil, fmt.Errorf("order not found: %w", err)
		}
		r.Log.Error("failed to get order by payment_id",
			"error", err,
			"payment_id", paymentID,
		)
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// UpdateStatus overwrites the status of an order by internal id and refreshes
// updated_at.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.UpdatedAt,
		r.columns.ID,
	)

	err := r.db.Exec(ctx, query, string(status), time.Now(), id)
	if err != nil {
		r.Log.Error("failed to update order status",
			"error", err,
			"order_id", id,
			"status", status,
		)
		return fmt.Errorf("failed to update order status: %w", err)
	}

	r.Log.Debug("order status updated successfully",
		"order_id", id,
		"status", status,
	)
	return nil
}

// UpdateStatusByPaymentID overwrites the status of the order matching a
// gateway payment id. Matching zero rows is not an error: the webhook may
// arrive before the order row exists, and the gateway redelivers.
func (r *Repository) UpdateStatusByPaymentID(ctx context.Context, paymentID string, status domain.PaymentStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1, %s = $2 WHERE %s = $3`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.UpdatedAt,
		r.columns.AsaasPaymentID,
	)

	affected, err := r.db.ExecWithResult(ctx, query, string(status), time.Now(), paymentID)
	if err != nil {
		r.Log.Error("failed to update order status by payment_id",
			"error", err,
			"payment_id", paymentID,
			"status", status,
		)
		return fmt.Errorf("failed to update order status: %w", err)
	}

	if affected == 0 {
		r.Log.Warn("status update matched no order",
			"payment_id", paymentID,
			"status", status,
		)
	}

	return nil
}
