package service

import "context"

// IMailerService dispatches transactional email through the configured
// provider.
type IMailerService interface {
	Send(ctx context.Context, to, subject, html string) error
}
