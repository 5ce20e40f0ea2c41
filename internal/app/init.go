package app

import (
	"fmt"

	server "github.com/admin/ecommerce/checkout-api/internal/adapters/primary/http"
	checkoutController "github.com/admin/ecommerce/checkout-api/internal/adapters/primary/http/controllers/checkout"
	healthcheckController "github.com/admin/ecommerce/checkout-api/internal/adapters/primary/http/controllers/healthcheck"
	paymentController "github.com/admin/ecommerce/checkout-api/internal/adapters/primary/http/controllers/payment"
	webhookController "github.com/admin/ecommerce/checkout-api/internal/adapters/primary/http/controllers/webhook"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/alerter"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/mailer"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/storage/pg"
	redisStorage "github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/tracker"
	"github.com/admin/ecommerce/checkout-api/internal/ports/cache"
	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
	orderRepository "github.com/admin/ecommerce/checkout-api/internal/repository/order"
	productRepository "github.com/admin/ecommerce/checkout-api/internal/repository/product"
	userRepository "github.com/admin/ecommerce/checkout-api/internal/repository/user"
	webhookLogRepository "github.com/admin/ecommerce/checkout-api/internal/repository/webhooklog"
	alerterService "github.com/admin/ecommerce/checkout-api/internal/services/alerter"
	checkoutUseCase "github.com/admin/ecommerce/checkout-api/internal/usecases/checkout"
	"github.com/admin/ecommerce/checkout-api/internal/usecases/fulfillment"
	"github.com/admin/ecommerce/checkout-api/internal/usecases/notify"
	"github.com/admin/ecommerce/checkout-api/internal/usecases/reconcile"
)

func (a *App) initDependencies() error {
	sqlDB, err := a.cfg.Postgres.NewConnection()
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pg.RunMigrations(sqlDB, a.log); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	a.db = pg.NewDB(sqlDB)

	var cacheClient cache.Cache
	if a.cfg.CacheEnabled {
		redisClient, err := a.cfg.Redis.NewConnection()
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		cacheClient = redisStorage.NewClient(redisClient)
		a.cache = cacheClient
	}

	orderRepo := orderRepository.New(a.db, a.log)
	productRepo := productRepository.New(a.db, a.log)
	userRepo := userRepository.New(a.db, a.log)
	webhookLogRepo := webhookLogRepository.New(a.db, a.log)

	// Optional channels: an unconfigured adapter constructor returns a nil
	// concrete pointer, which must not be stored in the interface or nil
	// checks downstream stop working.
	var alerterSvc service.IAlerterService
	if client := alerter.NewClient(&a.cfg.Alerter, a.log); client != nil {
		alerterSvc = alerterService.New(client)
	} else {
		a.log.Warn("telegram alerts disabled: bot token or chat id not configured")
	}

	var mailerSvc service.IMailerService
	if client := mailer.NewClient(&a.cfg.Mailer, a.log); client != nil {
		mailerSvc = client
	} else {
		a.log.Warn("email dispatch disabled: resend api key not configured")
	}

	var trackerSvc service.ITrackerService
	if client := tracker.NewClient(&a.cfg.Tracker, a.log); client != nil {
		trackerSvc = client
	} else {
		a.log.Warn("conversion tracking disabled: utmify api key not configured")
	}

	fulfillmentUC := fulfillment.New(
		userRepo,
		productRepo,
		mailerSvc,
		fulfillment.NewNumericGenerator(),
		cacheClient,
		a.log,
	)

	notifierUC := notify.New(
		alerterSvc,
		mailerSvc,
		trackerSvc,
		a.cfg.AdminEmail,
		a.log,
	)

	reconcilerUC := reconcile.New(
		orderRepo,
		webhookLogRepo,
		fulfillmentUC,
		notifierUC,
		a.cfg.Webhook,
		a.log,
	)

	checkoutUC := checkoutUseCase.New(orderRepo, productRepo, a.log)

	a.server = server.NewHTTPServer(
		&a.cfg.Server,
		a.log,
		webhookController.New(reconcilerUC, a.log),
		paymentController.New(reconcilerUC, a.log),
		checkoutController.New(checkoutUC, a.log),
		healthcheckController.New(sqlDB, a.log),
	)

	return nil
}
