package alerter

import (
	"context"
	"fmt"

	"github.com/admin/ecommerce/checkout-api/internal/adapters/secondary/alerter"
	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
)

// Service implements IAlerterService on top of the Telegram alerter adapter.
type Service struct {
	client *alerter.Client
}

func New(client *alerter.Client) service.IAlerterService {
	return &Service{
		client: client,
	}
}

func (s *Service) SendAlert(ctx context.Context, message string) error {
	if s.client == nil {
		return fmt.Errorf("alerter client is not initialized")
	}

	return s.client.SendAlert(ctx, message)
}
