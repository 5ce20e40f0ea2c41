package notify

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/pkg/besteffort"
	"github.com/admin/ecommerce/checkout-api/internal/pkg/money"
	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"golang.org/x/sync/errgroup"
)

// Service fans out the side effects of a confirmed payment: internal chat
// alert, admin email, analytics conversion. The three channels are
// independent; they run concurrently and a failure in one never blocks the
// others or the webhook response.
type Service struct {
	Alerter    service.IAlerterService
	Mailer     service.IMailerService
	Tracker    service.ITrackerService
	AdminEmail string
	Log        *slog.Logger
}

func New(
	alerter service.IAlerterService,
	mailer service.IMailerService,
	tracker service.ITrackerService,
	adminEmail string,
	log *slog.Logger,
) usecase.INotifierUseCase {
	return &Service{
		Alerter:    alerter,
		Mailer:     mailer,
		Tracker:    tracker,
		AdminEmail: adminEmail,
		Log:        log,
	}
}

// NotifyConfirmed dispatches all channels for one confirmation. order may be
// nil when the webhook raced order creation; display fields then fall back to
// generic placeholders and the conversion is skipped (no attribution to send).
func (s *Service) NotifyConfirmed(ctx context.Context, order *domain.Order, paymentID string, value float64) {
	formattedValue := money.FormatBRL(value)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		besteffort.Run(gCtx, s.Log, "telegram_alert", func(ctx context.Context) error {
			return s.sendChatAlert(ctx, order, paymentID, formattedValue)
		})
		return nil
	})

	g.Go(func() error {
		besteffort.Run(gCtx, s.Log, "admin_email", func(ctx context.Context) error {
			return s.sendAdminEmail(ctx, order, paymentID, formattedValue)
		})
		return nil
	})

	g.Go(func() error {
		besteffort.Run(gCtx, s.Log, "conversion_tracking", func(ctx context.Context) error {
			return s.trackConversion(ctx, order)
		})
		return nil
	})

	_ = g.Wait()
}

func (s *Service) sendChatAlert(ctx context.Context, order *domain.Order, paymentID, formattedValue string) error {
	if s.Alerter == nil {
		s.Log.Warn("alerter not configured, skipping chat alert",
			"payment_id", paymentID,
		)
		return nil
	}

	orderRef := paymentID
	if order != nil {
		orderRef = order.ID.String()
	}

	message := fmt.Sprintf(`✅ <b>Pagamento Confirmado!</b>

📋 <b>Pedido:</b> %s
👤 <b>Cliente:</b> %s
💰 <b>Valor:</b> %s
🛒 <b>Produto:</b> %s`,
		orderRef,
		order.DisplayCustomerName(),
		formattedValue,
		order.DisplayProductName(),
	)

	return s.Alerter.SendAlert(ctx, message)
}

func (s *Service) sendAdminEmail(ctx context.Context, order *domain.Order, paymentID, formattedValue string) error {
	if s.AdminEmail == "" {
		s.Log.Warn("admin email not configured, skipping payment notification",
			"payment_id", paymentID,
		)
		return nil
	}
	if s.Mailer == nil {
		s.Log.Warn("email provider not configured, skipping admin notification",
			"payment_id", paymentID,
		)
		return nil
	}

	subject := fmt.Sprintf("🎉 Pagamento Confirmado: %s", formattedValue)
	html := fmt.Sprintf(`<h2>Novo pagamento confirmado!</h2>
<p><strong>Cliente:</strong> %s</p>
<p><strong>Produto:</strong> %s</p>
<p><strong>Valor:</strong> %s</p>
<p><strong>Método:</strong> %s</p>
<p><strong>ID Asaas:</strong> %s</p>
<p><strong>Data:</strong> %s</p>`,
		order.DisplayCustomerName(),
		order.DisplayProductName(),
		formattedValue,
		order.DisplayPaymentMethod(),
		paymentID,
		time.Now().Format("02/01/2006 15:04:05"),
	)

	if err := s.Mailer.Send(ctx, s.AdminEmail, subject, html); err != nil {
		return err
	}

	s.Log.Info("admin notification sent",
		"payment_id", paymentID,
		"to", s.AdminEmail,
	)
	return nil
}

func (s *Service) trackConversion(ctx context.Context, order *domain.Order) error {
	if s.Tracker == nil {
		s.Log.Warn("conversion tracking not configured, skipping")
		return nil
	}
	if order == nil {
		// Nothing to attribute without the order snapshot.
		s.Log.Warn("no order snapshot, skipping conversion tracking")
		return nil
	}

	conv := service.Conversion{
		OrderID:     order.ID.String(),
		Value:       order.ProductPrice,
		Currency:    "BRL",
		UTMSource:   order.UTMSource,
		UTMMedium:   order.UTMMedium,
		UTMCampaign: order.UTMCampaign,
		UTMTerm:     order.UTMTerm,
		UTMContent:  order.UTMContent,
	}

	if err := s.Tracker.TrackConversion(ctx, conv); err != nil {
		return err
	}

	s.Log.Info("conversion sent",
		"order_id", conv.OrderID,
	)
	return nil
}
