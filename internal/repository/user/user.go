package userRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
	"github.com/admin/ecommerce/checkout-api/internal/ports/persistence"
	ports "github.com/admin/ecommerce/checkout-api/internal/ports/repository"
)

type userColumns struct {
	TableName string
	ID        string
	Email     string
	Name      string
	Password  string
	CreatedAt string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns userColumns
}

func New(db persistence.Persistence, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName: "users",
		ID:        "id",
		Email:     "email",
		Name:      "name",
		Password:  "password",
		CreatedAt: "created_at",
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
		r.columns.Email,
		r.columns.Name,
		r.columns.Password,
		r.columns.CreatedAt,
	)
}

// Create inserts a new user record. Deliberately not an upsert: a duplicate
// confirmation inserts a second row for the same email.
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5)`,
		r.columns.TableName,
		r.allColumns(),
	)

	err := r.db.Exec(ctx, query,
		user.ID,
		user.Email,
		user.Name,
		user.Password,
		user.CreatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create user",
			"error", err,
			"user_id", user.ID,
			"email", user.Email,
		)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.Log.Debug("user created successfully",
		"user_id", user.ID,
		"email", user.Email,
	)
	return nil
}
