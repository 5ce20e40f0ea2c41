package productRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/persistence"
	ports "github.com/admin/ecommerce/checkout-api/internal/ports/repository"
)

type productColumns struct {
	TableName   string
	ID          string
	Name        string
	Price       string
	DeliveryURL string
	CreatedAt   string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns productColumns
}

func New(db persistence.Persistence, log *slog.Logger) ports.IProductRepo {
	cols := productColumns{
		TableName:   "products",
		ID:          "id",
		Name:        "name",
		Price:       "price",
		DeliveryURL: "delivery_url",
		CreatedAt:   "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.Name,
		r.columns.Price,
		r.columns.DeliveryURL,
		r.columns.CreatedAt,
	)
}

// GetByID retrieves a product by id.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.Log.Warn("product not found", "product_id", id)
			return nil, fmt.Errorf("product not found: %w", err)
		}
		r.Log.Error("failed to get product",
			"error", err,
			"product_id", id,
		)
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}
