package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/oauth2"

	"vitals/internal/health"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	tokenSource := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: "test-token"})
	return NewClient(tokenSource, server.URL)
}

func TestFetchSamples(t *testing.T) {
	var gotPath string
	var gotQuery map[string]string

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"metric": r.URL.Query().Get("metric"),
			"start":  r.URL.Query().Get("start"),
			"end":    r.URL.Query().Get("end"),
		}
		w.Header().Set("X-RateLimit-Remaining", "119")
		w.Write([]byte(`{
			"metric": "heart_rate",
			"samples": [
				{"date": "2026-08-20T07:30:00Z", "value": 62, "unit": "bpm"},
				{"date": "2026-08-20T08:30:00Z", "value": 75}
			]
		}`))
	})

	samples, err := client.FetchSamples(context.Background(), health.MetricHeartRate, health.PeriodWeek)
	if err != nil {
		t.Fatalf("FetchSamples: %v", err)
	}

	if gotPath != "/samples" {
		t.Errorf("path = %q, want /samples", gotPath)
	}
	if gotQuery["metric"] != "heart_rate" {
		t.Errorf("metric param = %q, want heart_rate", gotQuery["metric"])
	}
	if gotQuery["start"] == "" || gotQuery["end"] == "" {
		t.Error("start/end params missing")
	}

	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2", len(samples))
	}
	if samples[0].Value == nil || *samples[0].Value != 62 {
		t.Errorf("first sample value = %v, want 62", samples[0].Value)
	}
	if samples[1].Unit != "" {
		t.Errorf("second sample unit = %q, want empty from the wire", samples[1].Unit)
	}

	if got := client.rateLimiter.Remaining(); got != 119 {
		t.Errorf("Remaining() = %d, want 119 from the response header", got)
	}
}

func TestFetchSamplesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("maintenance"))
	})

	_, err := client.FetchSamples(context.Background(), health.MetricSteps, health.PeriodDay)
	if err == nil {
		t.Fatal("FetchSamples = nil error, want API error")
	}
}

func TestFetchSamplesBadPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := client.FetchSamples(context.Background(), health.MetricSteps, health.PeriodDay)
	if err == nil {
		t.Fatal("FetchSamples = nil error, want decode error")
	}
}
