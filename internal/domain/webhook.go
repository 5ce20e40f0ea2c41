package domain

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WebhookEvent is the parsed body of an Asaas payment notification.
type WebhookEvent struct {
	Event   string       `json:"event"`
	Payment *PaymentData `json:"payment"`
}

// HasPayment reports whether the event carries anything to process. Gateway
// health checks ping the endpoint with empty bodies and must be acknowledged
// without touching the store.
func (e *WebhookEvent) HasPayment() bool {
	return e != nil && e.Event != "" && e.Payment != nil
}

// RawPayload re-serializes the event for the append-only audit table.
func (e *WebhookEvent) RawPayload() LogPayload {
	b, err := json.Marshal(e)
	if err != nil {
		return LogPayload{}
	}
	var m LogPayload
	if err := json.Unmarshal(b, &m); err != nil {
		return LogPayload{}
	}
	return m
}

// PaymentData is the payment sub-object of a webhook event.
type PaymentData struct {
	ID                string        `json:"id"`
	Status            PaymentStatus `json:"status"`
	Value             float64       `json:"value"`
	DateCreated       string        `json:"dateCreated"`
	InvoiceURL        *string       `json:"invoiceUrl,omitempty"`
	BillingType       string        `json:"billingType"`
	ExternalReference *string       `json:"externalReference,omitempty"`
}

// LogPayload is the raw webhook body stored as JSONB.
type LogPayload map[string]interface{}

// Scan implements sql.Scanner for reading JSONB.
func (p *LogPayload) Scan(value interface{}) error {
	if value == nil {
		*p = make(LogPayload)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		*p = make(LogPayload)
		return nil
	}

	if len(bytes) == 0 {
		*p = make(LogPayload)
		return nil
	}

	return json.Unmarshal(bytes, p)
}

// Value implements driver.Valuer for writing JSONB.
func (p LogPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	return json.Marshal(p)
}

// WebhookLog is one immutable audit entry per received webhook. Rows are only
// ever appended; nothing in the flow reads them back.
type WebhookLog struct {
	ID        uuid.UUID     `json:"id" db:"id"`
	EventType string        `json:"event_type" db:"event_type"`
	PaymentID string        `json:"payment_id" db:"payment_id"`
	Status    PaymentStatus `json:"status" db:"status"`
	Payload   LogPayload    `json:"payload" db:"payload"`
	CreatedAt time.Time     `json:"created_at" db:"created_at"`
}
