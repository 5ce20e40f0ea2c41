package tracker

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/admin/ecommerce/checkout-api/internal/ports/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string { return &s }

func TestNewClientUnconfigured(t *testing.T) {
	if client := NewClient(&Config{}, testLogger()); client != nil {
		t.Errorf("expected nil client without an api key")
	}
}

func TestTrackConversion(t *testing.T) {
	var gotAuth string
	var gotPayload conversionPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/track" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPayload); err != nil {
			t.Errorf("failed to decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(&Config{APIKey: "utm_key", BaseURL: srv.URL}, testLogger())

	err := client.TrackConversion(context.Background(), service.Conversion{
		OrderID:     "ord_1",
		Value:       99.9,
		Currency:    "BRL",
		UTMSource:   strPtr("instagram"),
		UTMCampaign: strPtr("lancamento"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer utm_key" {
		t.Errorf("unexpected authorization header: %q", gotAuth)
	}
	if gotPayload.OrderID != "ord_1" || gotPayload.Value != 99.9 || gotPayload.Currency != "BRL" {
		t.Errorf("unexpected payload: %+v", gotPayload)
	}
	if gotPayload.UTMSource == nil || *gotPayload.UTMSource != "instagram" {
		t.Errorf("attribution not forwarded: %+v", gotPayload)
	}
	if gotPayload.UTMMedium != nil {
		t.Errorf("absent attribution must stay null, got %v", *gotPayload.UTMMedium)
	}
}

func TestTrackConversionAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(&Config{APIKey: "utm_key", BaseURL: srv.URL}, testLogger())

	err := client.TrackConversion(context.Background(), service.Conversion{OrderID: "ord_1"})
	if err == nil {
		t.Fatal("expected error on non-2xx response")
	}
}
