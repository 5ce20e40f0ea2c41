package tracker

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
)

const (
	utmifyAPIBaseURL = "https://utmfy.com"
	apiTimeout       = 30 * time.Second
)

// Client posts purchase conversions to the Utmify tracking API. Implements
// service.ITrackerService.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	if !cfg.IsConfigured() {
		return nil
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = utmifyAPIBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		log:     log,
	}
}

type conversionPayload struct {
	OrderID     string  `json:"order_id"`
	Value       float64 `json:"value"`
	Currency    string  `json:"currency"`
	UTMSource   *string `json:"utm_source"`
	UTMMedium   *string `json:"utm_medium"`
	UTMCampaign *string `json:"utm_campaign"`
	UTMTerm     *string `json:"utm_term"`
	UTMContent  *string `json:"utm_content"`
}

// TrackConversion posts one confirmed purchase with its attribution.
func (c *Client) TrackConversion(ctx context.Context, conv service.Conversion) error {
	url := c.baseURL + "/api/track"

	jsonData, err := json.Marshal(conversionPayload{
		OrderID:     conv.OrderID,
		Value:       conv.Value,
		Currency:    conv.Currency,
		UTMSource:   conv.UTMSource,
		UTMMedium:   conv.UTMMedium,
		UTMCampaign: conv.UTMCampaign,
		UTMTerm:     conv.UTMTerm,
		UTMContent:  conv.UTMContent,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("failed to send conversion to utmify",
			"error", err,
			"order_id", conv.OrderID,
		)
		return fmt.Errorf("failed to send conversion: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("utmify API returned error",
			"status_code", resp.StatusCode,
			"body", string(body),
			"order_id", conv.OrderID,
		)
		return fmt.Errorf("utmify API error: status %d", resp.StatusCode)
	}

	c.log.Debug("conversion sent successfully",
		"order_id", conv.OrderID,
	)

	return nil
}
