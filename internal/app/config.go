package app

import (
	"fmt"

	server "github.com/admin/ecommerce/checkout-api/internal/adapters/primary/http"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/alerter"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/mailer"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/storage/pg"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/storage/redis"
	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/tracker"
	"github.com/admin/ecommerce/checkout-api/internal/pkg/logger"
	"github.com/admin/ecommerce/checkout-api/internal/usecases/reconcile"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Postgres pg.Config        `envconfig:"POSTGRES"`
	Redis    redis.Config     `envconfig:"REDIS"`
	Log      logger.Config    `envconfig:"LOG"`
	Server   server.Config    `envconfig:"SERVER"`
	Alerter  alerter.Config   `envconfig:"TELEGRAM"`
	Mailer   mailer.Config    `envconfig:"RESEND"`
	Tracker  tracker.Config   `envconfig:"UTMIFY"`
	Webhook  reconcile.Config `envconfig:"WEBHOOK"`

	AdminEmail   string `envconfig:"ADMIN_EMAIL"`
	CacheEnabled bool   `envconfig:"CACHE_ENABLED" default:"false"`
}

// NewEnvConfig loads configuration from the environment, with an optional
// local .env for development.
func NewEnvConfig(appName string) (*Config, error) {
	// Missing .env is fine; production injects the environment directly.
	_ = godotenv.Load("deployments/local/.env")

	var cfg Config
	if err := envconfig.Process(appName, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	return &cfg, nil
}
