package notify

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
	"github.com/google/uuid"
)

type fakeAlerter struct {
	messages []string
	err      error
}

func (f *fakeAlerter) SendAlert(_ context.Context, message string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, message)
	return nil
}

type sentEmail struct {
	to      string
	subject string
	html    string
}

type fakeMailer struct {
	sent []sentEmail
	err  error
}

func (f *fakeMailer) Send(_ context.Context, to, subject, html string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, html: html})
	return nil
}

type fakeTracker struct {
	conversions []service.Conversion
	err         error
}

func (f *fakeTracker) TrackConversion(_ context.Context, conv service.Conversion) error {
	if f.err != nil {
		return f.err
	}
	f.conversions = append(f.conversions, conv)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func testOrder() *domain.Order {
	return &domain.Order{
		ID:            uuid.New(),
		CustomerName:  "Ana",
		CustomerEmail: "ana@example.com",
		ProductName:   "Curso de Go",
		ProductPrice:  99.9,
		PaymentMethod: domain.PaymentMethodPix,
		UTMSource:     strPtr("instagram"),
		UTMCampaign:   strPtr("lancamento"),
	}
}

func TestNotifyConfirmedDispatchesAllChannels(t *testing.T) {
	alerter := &fakeAlerter{}
	mailer := &fakeMailer{}
	tracker := &fakeTracker{}
	svc := &Service{
		Alerter:    alerter,
		Mailer:     mailer,
		Tracker:    tracker,
		AdminEmail: "admin@example.com",
		Log:        testLogger(),
	}

	order := testOrder()
	svc.NotifyConfirmed(context.Background(), order, "pay_1", 99.9)

	if len(alerter.messages) != 1 {
		t.Fatalf("expected 1 chat alert, got %d", len(alerter.messages))
	}
	alert := alerter.messages[0]
	if !strings.Contains(alert, "✅ <b>Pagamento Confirmado!</b>") {
		t.Errorf("alert missing header: %s", alert)
	}
	if !strings.Contains(alert, order.ID.String()) {
		t.Errorf("alert must reference the order id")
	}
	if !strings.Contains(alert, "Ana") || !strings.Contains(alert, "Curso de Go") {
		t.Errorf("alert missing snapshot fields: %s", alert)
	}
	if !strings.Contains(alert, "R$ 99,90") {
		t.Errorf("alert missing localized value: %s", alert)
	}

	if len(mailer.sent) != 1 {
		t.Fatalf("expected 1 admin email, got %d", len(mailer.sent))
	}
	email := mailer.sent[0]
	if email.to != "admin@example.com" {
		t.Errorf("admin email sent to %q", email.to)
	}
	if email.subject != "🎉 Pagamento Confirmado: R$ 99,90" {
		t.Errorf("unexpected subject: %q", email.subject)
	}
	if !strings.Contains(email.html, "pix") {
		t.Errorf("admin email missing payment method: %s", email.html)
	}

	if len(tracker.conversions) != 1 {
		t.Fatalf("expected 1 conversion, got %d", len(tracker.conversions))
	}
	conv := tracker.conversions[0]
	if conv.OrderID != order.ID.String() || conv.Value != 99.9 || conv.Currency != "BRL" {
		t.Errorf("conversion mismatch: %+v", conv)
	}
	if conv.UTMSource == nil || *conv.UTMSource != "instagram" {
		t.Errorf("conversion missing attribution")
	}
}

func TestNotifyConfirmedChannelsAreIsolated(t *testing.T) {
	alerter := &fakeAlerter{err: errors.New("telegram down")}
	mailer := &fakeMailer{}
	tracker := &fakeTracker{}
	svc := &Service{
		Alerter:    alerter,
		Mailer:     mailer,
		Tracker:    tracker,
		AdminEmail: "admin@example.com",
		Log:        testLogger(),
	}

	svc.NotifyConfirmed(context.Background(), testOrder(), "pay_1", 10)

	if len(mailer.sent) != 1 {
		t.Errorf("a failing alert channel must not block the admin email")
	}
	if len(tracker.conversions) != 1 {
		t.Errorf("a failing alert channel must not block conversion tracking")
	}
}

func TestNotifyConfirmedWithoutAdminEmail(t *testing.T) {
	mailer := &fakeMailer{}
	svc := &Service{
		Alerter:    &fakeAlerter{},
		Mailer:     mailer,
		Tracker:    &fakeTracker{},
		AdminEmail: "",
		Log:        testLogger(),
	}

	svc.NotifyConfirmed(context.Background(), testOrder(), "pay_1", 10)

	if len(mailer.sent) != 0 {
		t.Errorf("no admin address configured, expected no email")
	}
}

func TestNotifyConfirmedWithoutOptionalServices(t *testing.T) {
	// All channels unconfigured: the call must be a quiet no-op.
	svc := &Service{
		Log: testLogger(),
	}

	svc.NotifyConfirmed(context.Background(), testOrder(), "pay_1", 10)
}

func TestNotifyConfirmedNilOrderUsesFallbacks(t *testing.T) {
	alerter := &fakeAlerter{}
	tracker := &fakeTracker{}
	svc := &Service{
		Alerter: alerter,
		Tracker: tracker,
		Log:     testLogger(),
	}

	svc.NotifyConfirmed(context.Background(), nil, "pay_77", 35.5)

	if len(alerter.messages) != 1 {
		t.Fatalf("alert must still go out without an order snapshot")
	}
	alert := alerter.messages[0]
	if !strings.Contains(alert, "pay_77") {
		t.Errorf("alert should fall back to the payment id as reference: %s", alert)
	}
	if !strings.Contains(alert, domain.FallbackCustomerName) || !strings.Contains(alert, domain.FallbackProductName) {
		t.Errorf("alert should use display fallbacks: %s", alert)
	}

	if len(tracker.conversions) != 0 {
		t.Errorf("no order snapshot means no conversion to attribute")
	}
}
