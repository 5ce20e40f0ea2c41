package tracker

type Config struct {
	APIKey  string `envconfig:"API_KEY"`
	BaseURL string `envconfig:"BASE_URL"`
}

// IsConfigured reports whether conversion tracking is enabled.
func (c *Config) IsConfigured() bool {
	return c != nil && c.APIKey != ""
}
