package service

import (
	"context"
)

// IAlerterService sends internal chat alerts.
type IAlerterService interface {
	SendAlert(ctx context.Context, message string) error
}
