package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestNewWithWriter_Level(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, "warn", "production")
	logger.Info().Msg("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info should be filtered at warn level, got %q", buf.String())
	}
	logger.Warn().Msg("shown")
	if buf.Len() == 0 {
		t.Fatal("warn should be written")
	}

	if got := NewWithWriter(&buf, "nonsense", "production").GetLevel(); got != zerolog.InfoLevel {
		t.Errorf("unknown level should fall back to info, got %s", got)
	}
}

func TestRequestLogger(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["message"] != "request" || line["method"] != "GET" || line["path"] != "/teapot" {
		t.Errorf("unexpected log line %v", line)
	}
	if status, _ := line["status"].(float64); status != http.StatusTeapot {
		t.Errorf("status = %v, want 418", line["status"])
	}
	if id, _ := line["request_id"].(string); id == "" {
		t.Error("request id missing")
	}
}
