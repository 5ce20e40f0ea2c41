package fulfillment

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/pkg/besteffort"
	"github.com/admin/ecommerce/checkout-api/internal/ports/cache"
	"github.com/admin/ecommerce/checkout-api/internal/ports/repository"
	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
	"github.com/admin/ecommerce/checkout-api/internal/ports/usecase"
	"github.com/google/uuid"
)

const deliveryURLCacheTTL = 5 * time.Minute

// Service provisions access for confirmed orders: one-time credential, user
// record, product delivery link, access email. Every step is best-effort by
// contract; nothing here may fail the webhook response.
type Service struct {
	UserRepo    repository.IUserRepo
	ProductRepo repository.IProductRepo
	Mailer      service.IMailerService
	Credentials service.ICredentialGenerator
	Cache       cache.Cache
	Log         *slog.Logger
}

func New(
	userRepo repository.IUserRepo,
	productRepo repository.IProductRepo,
	mailer service.IMailerService,
	credentials service.ICredentialGenerator,
	cacheClient cache.Cache,
	log *slog.Logger,
) usecase.IFulfillmentUseCase {
	return &Service{
		UserRepo:    userRepo,
		ProductRepo: productRepo,
		Mailer:      mailer,
		Credentials: credentials,
		Cache:       cacheClient,
		Log:         log,
	}
}

// Provision runs the post-confirmation fulfillment for one order snapshot.
func (s *Service) Provision(ctx context.Context, order *domain.Order) {
	if order == nil {
		s.Log.Warn("skipping fulfillment: no order snapshot")
		return
	}

	password, err := s.Credentials.NewPassword()
	if err != nil {
		s.Log.Error("failed to generate access password",
			"error", err,
			"order_id", order.ID,
		)
		return
	}

	user := &domain.User{
		ID:        uuid.New(),
		Email:     order.CustomerEmail,
		Name:      order.CustomerName,
		Password:  password,
		CreatedAt: time.Now(),
	}

	besteffort.Run(ctx, s.Log, "user_insert", func(ctx context.Context) error {
		return s.UserRepo.Create(ctx, user)
	})

	deliveryURL := s.resolveDeliveryURL(ctx, order.ProductID)
	if deliveryURL == "" {
		// Fulfillment degrades gracefully: the credential exists, the access
		// email just cannot be sent.
		s.Log.Info("product has no delivery url, skipping access email",
			"order_id", order.ID,
			"product_id", order.ProductID,
		)
		return
	}

	deliveryLink := appendEmailParam(deliveryURL, order.CustomerEmail)

	if s.Mailer == nil {
		s.Log.Warn("email provider not configured, skipping access email",
			"order_id", order.ID,
		)
		return
	}

	html := accessEmailHTML(order.DisplayCustomerName(), order.CustomerEmail, password, deliveryLink)

	besteffort.Run(ctx, s.Log, "access_email", func(ctx context.Context) error {
		if err := s.Mailer.Send(ctx, order.CustomerEmail, accessEmailSubject, html); err != nil {
			return err
		}
		s.Log.Info("access email sent",
			"order_id", order.ID,
			"to", order.CustomerEmail,
		)
		return nil
	})
}

// resolveDeliveryURL reads the product's delivery endpoint, through the cache
// when one is wired. An empty result means the product has no delivery URL or
// the lookup failed; either way fulfillment continues without an email.
func (s *Service) resolveDeliveryURL(ctx context.Context, productID string) string {
	cacheKey := "product:delivery_url:" + productID

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey); err == nil && cached != "" {
			return cached
		}
	}

	product, err := s.ProductRepo.GetByID(ctx, productID)
	if err != nil {
		s.Log.Warn("failed to load product for delivery",
			"error", err,
			"product_id", productID,
		)
		return ""
	}

	if product.DeliveryURL == nil || *product.DeliveryURL == "" {
		return ""
	}

	if s.Cache != nil {
		besteffort.Run(ctx, s.Log, "delivery_url_cache", func(ctx context.Context) error {
			return s.Cache.Set(ctx, cacheKey, *product.DeliveryURL, deliveryURLCacheTTL)
		})
	}

	return *product.DeliveryURL
}

// appendEmailParam attaches the customer email as a URL-encoded query
// parameter to the delivery endpoint.
func appendEmailParam(deliveryURL, email string) string {
	sep := "?"
	if strings.Contains(deliveryURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%semail=%s", deliveryURL, sep, url.QueryEscape(email))
}
