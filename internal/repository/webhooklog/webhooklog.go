package webhooklogRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/persistence"
	ports "github.com/admin/ecommerce/checkout-api/internal/ports/repository"
)

type logColumns struct {
	TableName string
	ID        string
	EventType string
	PaymentID string
	Status    string
	Payload   string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns logColumns
}

func New(db persistence.Persistence, log *slog.Logger) ports.IWebhookLogRepo {
	cols := logColumns{
		TableName: "asaas_webhook_logs",
		ID:        "id",
		EventType: "event_type",
		PaymentID: "payment_id",
		Status:    "status",
		Payload:   "payload",
		CreatedAt: "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.EventType,
		r.columns.PaymentID,
		r.columns.Status,
		r.columns.Payload,
		r.columns.CreatedAt,
	)
}

// Create appends one audit entry.
func (r *Repository) Create(ctx context.Context, entry *domain.WebhookLog) error {
	payloadValue, err := entry.Payload.Value()
	if err != nil {
		r.Log.Error("failed to marshal webhook log payload",
			"error", err,
			"payment_id", entry.PaymentID,
		)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		r.columns.TableName,
		r.allColumns(),
	)

	err = r.db.Exec(ctx, query,
		entry.ID,
		entry.EventType,
		entry.PaymentID,
		string(entry.Status),
		payloadValue,
		entry.CreatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create webhook log",
			"error", err,
			"payment_id", entry.PaymentID,
			"event_type", entry.EventType,
		)
		return fmt.Errorf("failed to create webhook log: %w", err)
	}

	return nil
}
