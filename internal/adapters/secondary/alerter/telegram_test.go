package alerter

import (
	"context"
	"io"
	"testing"

	"log/slog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestIsConfigured(t *testing.T) {
	cases := []struct {
		name string
		cfg  *Config
		want bool
	}{
		{"nil config", nil, false},
		{"empty", &Config{}, false},
		{"token only", &Config{BotToken: "123:abc"}, false},
		{"chat only", &Config{ChatID: -100123}, false},
		{"complete", &Config{BotToken: "123:abc", ChatID: -100123}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.cfg.IsConfigured(); got != tc.want {
				t.Errorf("IsConfigured() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewClientUnconfigured(t *testing.T) {
	if client := NewClient(&Config{}, testLogger()); client != nil {
		t.Errorf("expected nil client when unconfigured")
	}
}

func TestSendAlertNilClient(t *testing.T) {
	var client *Client
	if err := client.SendAlert(context.Background(), "msg"); err == nil {
		t.Error("nil client must error, not panic")
	}
}
