package assessment

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

func newTestRouter(t *testing.T, repo Repository) http.Handler {
	t.Helper()
	svc, _ := newTestService(t, nil, repo, nil)
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		RegisterRoutes(r, NewHandler(svc, zerolog.New(io.Discard)))
	})
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandler_CreateAndGet(t *testing.T) {
	t.Parallel()
	h := newTestRouter(t, newMemRepo())

	rec := do(t, h, http.MethodPost, "/api/assessments",
		`{"symptoms":[{"name":"chest pain","severity":5,"onset":"sudden"},{"name":"shortness of breath","severity":4}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created Response
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.Disclaimer == "" || created.Urgency() != "emergency" || created.Source != SourceEngine {
		t.Errorf("unexpected response %+v", created)
	}

	rec = do(t, h, http.MethodGet, "/api/assessments/"+created.ID.String(), "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d", rec.Code)
	}
	var got Response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != created.ID || len(got.Assessment.RedFlags) == 0 {
		t.Errorf("stored record mismatch %+v", got)
	}

	rec = do(t, h, http.MethodGet, "/api/assessments?urgency=emergency&limit=5", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"count":1`) {
		t.Errorf("list: %d %s", rec.Code, rec.Body.String())
	}

	rec = do(t, h, http.MethodGet, "/api/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"total_assessments":1`) {
		t.Errorf("metrics: %d %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()
	withDB := newTestRouter(t, newMemRepo())
	noDB := newTestRouter(t, nil)

	tests := []struct {
		name   string
		h      http.Handler
		method string
		path   string
		body   string
		want   int
	}{
		{"bad json", withDB, http.MethodPost, "/api/assessments", `{"symptoms":`, http.StatusBadRequest},
		{"empty symptoms", withDB, http.MethodPost, "/api/assessments", `{"symptoms":[]}`, http.StatusBadRequest},
		{"bad id", withDB, http.MethodGet, "/api/assessments/xyz", "", http.StatusBadRequest},
		{"unknown id", withDB, http.MethodGet, "/api/assessments/" + uuid.NewString(), "", http.StatusNotFound},
		{"bad limit", withDB, http.MethodGet, "/api/assessments?limit=-3", "", http.StatusBadRequest},
		{"bad urgency", withDB, http.MethodGet, "/api/assessments?urgency=later", "", http.StatusBadRequest},
		{"no storage", noDB, http.MethodGet, "/api/assessments/" + uuid.NewString(), "", http.StatusServiceUnavailable},
		{"assess without storage", noDB, http.MethodPost, "/api/assessments", `{"symptoms":[{"name":"cough"}]}`, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, tt.h, tt.method, tt.path, tt.body)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.want, rec.Body.String())
			}
		})
	}
}
