package assessment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telehealth-assistant/internal/clinical"
	"telehealth-assistant/internal/platform/analytics"
)

var (
	ErrInvalidRequest     = errors.New("invalid assessment request")
	ErrNotFound           = errors.New("assessment not found")
	ErrStorageUnavailable = errors.New("assessment storage not configured")
)

// Analyzer is the offline engine.
type Analyzer interface {
	Analyze(symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) *clinical.Assessment
	EnforceRedFlags(a *clinical.Assessment) bool
}

// AIClient produces assessments from language models. We define it here to
// decouple from the concrete providers.
type AIClient interface {
	Len() int
	Assess(ctx context.Context, symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) (*clinical.Assessment, string, error)
}

// ReportService notifies a clinician about an urgent assessment.
type ReportService interface {
	SendClinicianReport(ctx context.Context, r Record) error
}

type Service interface {
	Assess(ctx context.Context, req Request) (*Response, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	List(ctx context.Context, f ListFilter) ([]Record, error)
	Stats() analytics.Snapshot
}

type service struct {
	engine    Analyzer
	ai        AIClient
	repo      Repository
	reportSvc ReportService
	metrics   *analytics.Recorder
	logger    zerolog.Logger
	now       func() time.Time

	reportTimeout time.Duration
}

// Deps groups the collaborators of the service. Only Engine is required.
type Deps struct {
	Engine  Analyzer
	AI      AIClient
	Repo    Repository
	Reports ReportService
	Metrics *analytics.Recorder
	Logger  zerolog.Logger
	Now     func() time.Time
}

func NewService(d Deps) Service {
	s := &service{
		engine:        d.Engine,
		ai:            d.AI,
		repo:          d.Repo,
		reportSvc:     d.Reports,
		metrics:       d.Metrics,
		logger:        d.Logger,
		now:           d.Now,
		reportTimeout: 30 * time.Second,
	}
	if s.metrics == nil {
		s.metrics = analytics.NewRecorder()
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

func (s *service) Assess(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	patientID, err := validate(req)
	if err != nil {
		return nil, err
	}

	rec := Record{
		ID:        uuid.New(),
		PatientID: patientID,
		Request:   req,
	}

	fallback := false
	if s.ai != nil && s.ai.Len() > 0 {
		a, provider, err := s.ai.Assess(ctx, req.Symptoms, req.Context)
		if err == nil {
			rec.Assessment = a
			rec.Source = sourceAIPrefix + provider
			// The model may miss a warning sign; the rules still apply.
			rec.Escalated = s.engine.EnforceRedFlags(a)
		} else {
			fallback = true
			s.logger.Warn().Err(err).Str("assessment_id", rec.ID.String()).Msg("ai providers failed, using offline engine")
		}
	}
	if rec.Assessment == nil {
		rec.Assessment = s.engine.Analyze(req.Symptoms, req.Context)
		rec.Source = SourceEngine
	}

	rec.CreatedAt = s.now().UTC()
	rec.UpdatedAt = rec.CreatedAt

	if s.repo != nil {
		if err := s.repo.Save(ctx, &rec); err != nil {
			s.logger.Error().Err(err).Str("assessment_id", rec.ID.String()).Msg("failed to store assessment")
		}
	}

	if rec.NeedsClinician() && s.reportSvc != nil {
		go s.sendReport(rec)
	}

	s.metrics.Record(analytics.Observation{
		Urgency:   string(rec.Urgency()),
		Source:    rec.Source,
		RedFlags:  rec.RedFlagIDs(),
		Fallback:  fallback,
		Escalated: rec.Escalated,
		Duration:  time.Since(start),
	})

	s.logger.Info().
		Str("assessment_id", rec.ID.String()).
		Str("source", rec.Source).
		Str("urgency", string(rec.Urgency())).
		Int("red_flags", len(rec.Assessment.RedFlags)).
		Bool("escalated", rec.Escalated).
		Msg("assessment completed")

	return &Response{Record: rec, Disclaimer: Disclaimer}, nil
}

func (s *service) sendReport(rec Record) {
	// Detached from the request; the response is already on its way.
	ctx, cancel := context.WithTimeout(context.Background(), s.reportTimeout)
	defer cancel()
	if err := s.reportSvc.SendClinicianReport(ctx, rec); err != nil {
		s.logger.Error().Err(err).Str("assessment_id", rec.ID.String()).Msg("failed to send clinician report")
		return
	}
	s.logger.Info().Str("assessment_id", rec.ID.String()).Msg("clinician report sent")
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, f ListFilter) ([]Record, error) {
	if s.repo == nil {
		return nil, ErrStorageUnavailable
	}
	if f.Urgency != "" && !validUrgency(f.Urgency) {
		return nil, fmt.Errorf("%w: unknown urgency %q", ErrInvalidRequest, f.Urgency)
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	return s.repo.List(ctx, f)
}

func (s *service) Stats() analytics.Snapshot {
	return s.metrics.Snapshot()
}

func validate(req Request) (*uuid.UUID, error) {
	if len(req.Symptoms) == 0 {
		return nil, fmt.Errorf("%w: at least one symptom is required", ErrInvalidRequest)
	}
	if len(req.Symptoms) > maxSymptoms {
		return nil, fmt.Errorf("%w: at most %d symptoms are accepted, got %d", ErrInvalidRequest, maxSymptoms, len(req.Symptoms))
	}
	if req.PatientID == "" {
		return nil, nil
	}
	pid, err := uuid.Parse(req.PatientID)
	if err != nil {
		return nil, fmt.Errorf("%w: patient_id: %v", ErrInvalidRequest, err)
	}
	return &pid, nil
}

func validUrgency(u clinical.OverallUrgency) bool {
	switch u {
	case clinical.SelfCare, clinical.ScheduleVisit, clinical.UrgentCare, clinical.Emergency:
		return true
	}
	return false
}
