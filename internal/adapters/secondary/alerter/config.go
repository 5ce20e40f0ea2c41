package alerter

type Config struct {
	BotToken        string `envconfig:"BOT_TOKEN"`
	ChatID          int64  `envconfig:"CHAT_ID"`
	MessageThreadID *int64 `envconfig:"MESSAGE_THREAD_ID"`
}

// IsConfigured reports whether the alert channel can be used at all.
func (c *Config) IsConfigured() bool {
	return c != nil && c.BotToken != "" && c.ChatID != 0
}
