package assessment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telehealth-assistant/internal/clinical"
)

const maxBodyBytes = 1 << 20

type Handler struct {
	svc    Service
	logger zerolog.Logger
}

func NewHandler(svc Service, logger zerolog.Logger) *Handler {
	return &Handler{svc: svc, logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	var req Request
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body: " + err.Error()})
		return
	}

	resp, err := h.svc.Assess(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid assessment id"})
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, Response{Record: *rec, Disclaimer: Disclaimer})
}

func (h *Handler) ListAssessments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := ListFilter{Urgency: clinical.OverallUrgency(q.Get("urgency"))}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		f.Limit = n
	}
	if v := q.Get("patient_id"); v != "" {
		pid, err := uuid.Parse(v)
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid patient_id"})
			return
		}
		f.PatientID = &pid
	}

	recs, err := h.svc.List(r.Context(), f)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"assessments": recs, "count": len(recs)})
}

func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.svc.Stats())
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, ErrInvalidRequest):
		status = http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	default:
		h.logger.Error().Err(err).Msg("assessment request failed")
		err = errors.New("internal error")
	}
	h.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/assessments", h.CreateAssessment)
	r.Get("/assessments", h.ListAssessments)
	r.Get("/assessments/{id}", h.GetAssessment)
	r.Get("/metrics", h.Metrics)
}
