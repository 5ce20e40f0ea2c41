package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"log/slog"
)

const (
	resendAPIBaseURL = "https://api.resend.com"
	apiTimeout       = 30 * time.Second
)

// Client sends transactional email through the Resend REST API. Implements
// service.IMailerService.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	from       string
	log        *slog.Logger
}

func NewClient(cfg *Config, log *slog.Logger) *Client {
	if !cfg.IsConfigured() {
		return nil
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = resendAPIBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: apiTimeout,
		},
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		from:    cfg.From,
		log:     log,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendEmailResponse struct {
	ID string `json:"id"`
}

// Send dispatches one HTML email.
func (c *Client) Send(ctx context.Context, to, subject, html string) error {
	url := c.baseURL + "/emails"

	jsonData, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
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
		c.log.Error("failed to send request to resend",
			"error", err,
			"to", to,
		)
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error("resend API returned error",
			"status_code", resp.StatusCode,
			"body", string(body),
			"to", to,
		)
		return fmt.Errorf("resend API error: status %d", resp.StatusCode)
	}

	var apiResp sendEmailResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	c.log.Debug("email sent successfully",
		"email_id", apiResp.ID,
		"to", to,
	)

	return nil
}
