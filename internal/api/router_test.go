package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/relaykit/relay/internal/api"
	"github.com/relaykit/relay/internal/channel"
	"github.com/relaykit/relay/internal/dispatch"
	"github.com/relaykit/relay/internal/domain"
	"github.com/relaykit/relay/internal/metrics"
	"github.com/relaykit/relay/internal/ratelimiter"
)

func newServer(t *testing.T) (http.Handler, *bytes.Buffer) {
	t.Helper()
	var sink bytes.Buffer

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	onSent, onFailed := m.DispatchHooks()

	channels := channel.NewRegistry(channel.NewEmail(&sink), channel.NewSMS(&sink))
	d := dispatch.New(channels, ratelimiter.New(100), zap.NewNop(), dispatch.Hooks{
		OnSent:   onSent,
		OnFailed: onFailed,
	})
	return api.NewRouter(d, reg, zap.NewNop()), &sink
}

func TestRouter_DispatchMessage(t *testing.T) {
	srv, sink := newServer(t)

	body := `{"category":"urgent","medium":"sms","body":"Alert!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if got := sink.String(); got != "Enviando SMS: *** URGENTE *** Alert!\n" {
		t.Fatalf("sink output = %q", got)
	}

	var delivery domain.Delivery
	if err := json.Unmarshal(rec.Body.Bytes(), &delivery); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if delivery.Line != "Enviando SMS: *** URGENTE *** Alert!" {
		t.Fatalf("receipt line = %q", delivery.Line)
	}
	if rec.Header().Get("X-Correlation-ID") == "" {
		t.Fatal("expected a correlation ID header")
	}
}

func TestRouter_DispatchMessage_InvalidPayloads(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int
	}{
		{"malformed json", `{`, http.StatusBadRequest},
		{"invalid category", `{"category":"broadcast","medium":"sms","body":"x"}`, http.StatusUnprocessableEntity},
		{"invalid medium", `{"category":"simple","medium":"fax","body":"x"}`, http.StatusUnprocessableEntity},
	}

	srv, sink := newServer(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != tc.want {
				t.Fatalf("status = %d, want %d", rec.Code, tc.want)
			}
		})
	}
	if sink.Len() != 0 {
		t.Fatalf("expected no sink output for rejected requests, got %q", sink.String())
	}
}

func TestRouter_Catalog(t *testing.T) {
	srv, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got struct {
		Categories []domain.Category `json:"categories"`
		Media      []domain.Medium   `json:"media"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Categories) != 2 || len(got.Media) != 2 {
		t.Fatalf("unexpected catalog: %+v", got)
	}
}

func TestRouter_Health(t *testing.T) {
	srv, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestRouter_Metrics(t *testing.T) {
	srv, _ := newServer(t)

	// One successful dispatch so the counter exists on the scrape page.
	body := `{"category":"simple","medium":"email","body":"Hello"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/messages", strings.NewReader(body))
	srv.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "messages_sent_total") {
		t.Fatal("expected messages_sent_total on the scrape page")
	}
}
