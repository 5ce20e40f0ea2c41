package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is the access credential created when a payment confirms. Password is
// the generated 8-digit secret sent in the access email. Inserts are not
// deduplicated: a re-confirmed payment creates a second row for the same email.
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Name      string    `json:"name" db:"name"`
	Password  string    `json:"password" db:"password"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
