package mailer

type Config struct {
	APIKey  string `envconfig:"API_KEY"`
	From    string `envconfig:"FROM" default:"noreply@resend.dev"`
	BaseURL string `envconfig:"BASE_URL"`
}

// IsConfigured reports whether email dispatch is enabled for this deployment.
func (c *Config) IsConfigured() bool {
	return c != nil && c.APIKey != ""
}
