package reconcile

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/pkg/besteffort"
	"github.com/admin/ecommerce/checkout-api/internal/ports/repository"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/google/uuid"
)

// Config selects the webhook variant behavior.
type Config struct {
	// ProvisionOnConfirm controls whether a confirmed webhook creates the user
	// credential and sends the access email. The card-payment finalize always
	// provisions, regardless of this flag.
	ProvisionOnConfirm bool `envconfig:"PROVISION_ON_CONFIRM" default:"true"`

	// DedupeConfirmations skips provisioning and fan-out when the order was
	// already CONFIRMED before this event. Off by default: a re-delivered
	// confirmation re-runs the whole sequence, which is the historical
	// behavior callers may rely on.
	DedupeConfirmations bool `envconfig:"DEDUPE_CONFIRMATIONS" default:"false"`
}

// Service reconciles gateway payment notifications against stored orders and
// triggers the confirmation sequence. It holds no state between invocations.
type Service struct {
	OrderRepo   repository.IOrderRepo
	LogRepo     repository.IWebhookLogRepo
	Fulfillment usecase.IFulfillmentUseCase
	Notifier    usecase.INotifierUseCase
	Cfg         Config
	Log         *slog.Logger
}

func New(
	orderRepo repository.IOrderRepo,
	logRepo repository.IWebhookLogRepo,
	fulfillment usecase.IFulfillmentUseCase,
	notifier usecase.INotifierUseCase,
	cfg Config,
	log *slog.Logger,
) usecase.IReconcilerUseCase {
	return &Service{
		OrderRepo:   orderRepo,
		LogRepo:     logRepo,
		Fulfillment: fulfillment,
		Notifier:    notifier,
		Cfg:         cfg,
		Log:         log,
	}
}

// ProcessEvent handles one webhook delivery. Only the mandatory status write
// may return an error; the gateway retries on a failing response. Everything
// after it is best-effort and cannot change the outcome.
func (s *Service) ProcessEvent(ctx context.Context, event *domain.WebhookEvent) error {
	if !event.HasPayment() {
		// Gateway health checks and empty pings are acknowledged untouched.
		s.Log.Info("webhook without event or payment, acknowledging")
		return nil
	}

	payment := event.Payment

	s.Log.Info("webhook received",
		"event", event.Event,
		"payment_id", payment.ID,
		"status", payment.Status,
	)

	// Pre-update snapshot for display values. A miss is tolerated: the webhook
	// can race order creation, and the next delivery self-heals.
	order, err := s.OrderRepo.GetByPaymentID(ctx, payment.ID)
	if err != nil {
		s.Log.Warn("order lookup failed for webhook",
			"error", err,
			"payment_id", payment.ID,
		)
		order = nil
	}

	if err := s.OrderRepo.UpdateStatusByPaymentID(ctx, payment.ID, payment.Status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	besteffort.Run(ctx, s.Log, "webhook_audit_log", func(ctx context.Context) error {
		return s.LogRepo.Create(ctx, &domain.WebhookLog{
			ID:        uuid.New(),
			EventType: event.Event,
			PaymentID: payment.ID,
			Status:    payment.Status,
			Payload:   event.RawPayload(),
			CreatedAt: time.Now(),
		})
	})

	if payment.Status == domain.PaymentStatusConfirmed {
		if s.Cfg.DedupeConfirmations && order != nil && order.Status == domain.PaymentStatusConfirmed {
			s.Log.Info("duplicate confirmation, skipping provisioning and fan-out",
				"payment_id", payment.ID,
				"order_id", order.ID,
			)
			return nil
		}
		s.runConfirmationSequence(ctx, order, payment.ID, payment.Value, s.Cfg.ProvisionOnConfirm)
	}

	return nil
}

// FinalizeOrder is the card-payment variant: the checkout calls it directly
// instead of waiting for a gateway webhook.
func (s *Service) FinalizeOrder(ctx context.Context, orderID uuid.UUID) error {
	order, err := s.OrderRepo.GetByID(ctx, orderID)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrOrderNotFound, orderID)
	}

	if err := s.OrderRepo.UpdateStatus(ctx, orderID, domain.PaymentStatusConfirmed); err != nil {
		return fmt.Errorf("failed to confirm order: %w", err)
	}

	paymentID := ""
	if order.AsaasPaymentID != nil {
		paymentID = *order.AsaasPaymentID
	}

	s.runConfirmationSequence(ctx, order, paymentID, order.ProductPrice, true)

	s.Log.Info("order finalized",
		"order_id", orderID,
	)
	return nil
}

// runConfirmationSequence provisions (optionally) and fans out notifications.
// Both calls are internally fault-isolated; this never fails the caller.
func (s *Service) runConfirmationSequence(ctx context.Context, order *domain.Order, paymentID string, value float64, provision bool) {
	if provision {
		s.Fulfillment.Provision(ctx, order)
	}
	s.Notifier.NotifyConfirmed(ctx, order, paymentID, value)
}
