package app

import (
	"net/http"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/storage/pg"
	"github.com/admin/ecommerce/checkout-api/internal/ports/cache"
	"github.com/admin/ecommerce/checkout-api/internal/pkg/logger"
)

type App struct {
	name   string
	cfg    *Config
	log    *slog.Logger
	db     *pg.DB
	cache  cache.Cache
	server *http.Server
}

func New(name string, cfg *Config) *App {
	log := logger.New(name, &cfg.Log)

	return &App{
		name: name,
		cfg:  cfg,
		log:  log,
	}
}
