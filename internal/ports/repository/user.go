package repository

import (
	"context"

	"github.com/admin/ecommerce/checkout-api/internal/domain"
)

// IUserRepo writes access-credential records. Create is a plain insert, not an
// upsert.
type IUserRepo interface {
	Create(ctx context.Context, user *domain.User) error
}
