package assessment

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telehealth-assistant/internal/clinical"
	"telehealth-assistant/internal/knowledge"
	"telehealth-assistant/internal/platform/analytics"
)

type fakeAI struct {
	answer *clinical.Assessment
	err    error
	calls  int
}

func (f *fakeAI) Len() int { return 1 }

func (f *fakeAI) Assess(ctx context.Context, symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) (*clinical.Assessment, string, error) {
	f.calls++
	if f.err != nil {
		return nil, "", f.err
	}
	a := *f.answer
	a.Symptoms = symptoms
	a.Context = patient
	return &a, "fake", nil
}

type memRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]Record
	saveErr error
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[uuid.UUID]Record)}
}

func (m *memRepo) GetByID(ctx context.Context, id uuid.UUID) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (m *memRepo) Save(ctx context.Context, r *Record) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.ID] = *r
	return nil
}

func (m *memRepo) List(ctx context.Context, f ListFilter) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Record{}
	for _, r := range m.records {
		if f.Urgency == "" || r.Urgency() == f.Urgency {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeReports struct {
	sent chan Record
}

func (f *fakeReports) SendClinicianReport(ctx context.Context, r Record) error {
	f.sent <- r
	return nil
}

var fixedNow = time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC)

func testEngine(t *testing.T) *clinical.Engine {
	t.Helper()
	kb, err := knowledge.Default()
	if err != nil {
		t.Fatal(err)
	}
	e, err := clinical.NewEngine(kb, clinical.DefaultConfig(), clinical.WithClock(func() time.Time { return fixedNow }))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func newTestService(t *testing.T, ai AIClient, repo Repository, reports ReportService) (Service, *analytics.Recorder) {
	t.Helper()
	rec := analytics.NewRecorder()
	return NewService(Deps{
		Engine:  testEngine(t),
		AI:      ai,
		Repo:    repo,
		Reports: reports,
		Metrics: rec,
		Logger:  zerolog.New(io.Discard),
		Now:     func() time.Time { return fixedNow },
	}), rec
}

var sneezing = []clinical.TemporalSymptom{
	{Name: "sneezing", Severity: 2},
	{Name: "runny nose", Severity: 2},
	{Name: "itchy eyes", Severity: 2},
}

var strokeSigns = []clinical.TemporalSymptom{
	{Name: "face drooping", Severity: 4, Onset: clinical.OnsetSudden},
	{Name: "headache", Severity: 2},
}

func TestAssess_EngineOnly(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	svc, metrics := newTestService(t, nil, repo, nil)

	resp, err := svc.Assess(context.Background(), Request{Symptoms: sneezing})
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if resp.Source != SourceEngine || resp.Escalated {
		t.Errorf("expected an engine answer, got source=%s escalated=%v", resp.Source, resp.Escalated)
	}
	if resp.Disclaimer != Disclaimer || resp.Assessment == nil {
		t.Fatalf("response incomplete: %+v", resp)
	}
	if !resp.CreatedAt.Equal(fixedNow) {
		t.Errorf("created at = %s", resp.CreatedAt)
	}
	if _, err := repo.GetByID(context.Background(), resp.ID); err != nil {
		t.Errorf("record not stored: %v", err)
	}
	if s := metrics.Snapshot(); s.TotalAssessments != 1 || s.BySource[SourceEngine] != 1 || s.Fallbacks != 0 {
		t.Errorf("unexpected metrics %+v", s)
	}
}

func TestAssess_UsesAIAnswer(t *testing.T) {
	t.Parallel()
	ai := &fakeAI{answer: &clinical.Assessment{
		OverallUrgency: clinical.SelfCare,
		UrgencyReason:  "hay fever",
		PossibleConditions: []clinical.ClinicalCondition{
			{ID: "allergic_rhinitis", Name: "Allergic rhinitis", Confidence: 70, Urgency: knowledge.UrgencyRoutine},
		},
	}}
	svc, _ := newTestService(t, ai, nil, nil)

	resp, err := svc.Assess(context.Background(), Request{Symptoms: sneezing})
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if resp.Source != "ai:fake" || resp.Escalated {
		t.Errorf("expected unescalated ai answer, got %s escalated=%v", resp.Source, resp.Escalated)
	}
	if resp.Assessment.UrgencyReason != "hay fever" {
		t.Errorf("ai reasoning should be kept, got %q", resp.Assessment.UrgencyReason)
	}
}

func TestAssess_RedFlagsOverrideAI(t *testing.T) {
	t.Parallel()
	ai := &fakeAI{answer: &clinical.Assessment{OverallUrgency: clinical.SelfCare, UrgencyReason: "tension headache"}}
	reports := &fakeReports{sent: make(chan Record, 1)}
	svc, metrics := newTestService(t, ai, nil, reports)

	resp, err := svc.Assess(context.Background(), Request{Symptoms: strokeSigns})
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if resp.Urgency() != clinical.Emergency || !resp.Escalated {
		t.Fatalf("stroke signs must escalate to emergency, got %s escalated=%v", resp.Urgency(), resp.Escalated)
	}

	select {
	case sent := <-reports.sent:
		if sent.ID != resp.ID {
			t.Errorf("report for wrong record %s", sent.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("expected a clinician report for an emergency")
	}
	if s := metrics.Snapshot(); s.Escalations != 1 || s.ByUrgency["emergency"] != 1 {
		t.Errorf("unexpected metrics %+v", s)
	}
}

func TestAssess_FallsBackWhenAIFails(t *testing.T) {
	t.Parallel()
	ai := &fakeAI{err: errors.New("provider down")}
	svc, metrics := newTestService(t, ai, nil, nil)

	resp, err := svc.Assess(context.Background(), Request{Symptoms: sneezing})
	if err != nil {
		t.Fatalf("Assess: %v", err)
	}
	if ai.calls != 1 || resp.Source != SourceEngine {
		t.Errorf("expected engine fallback after one ai call, got calls=%d source=%s", ai.calls, resp.Source)
	}
	if metrics.Snapshot().Fallbacks != 1 {
		t.Error("fallback not counted")
	}
}

func TestAssess_StorageFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	repo := newMemRepo()
	repo.saveErr = errors.New("connection refused")
	svc, _ := newTestService(t, nil, repo, nil)

	if _, err := svc.Assess(context.Background(), Request{Symptoms: sneezing}); err != nil {
		t.Fatalf("storage errors must not fail the assessment: %v", err)
	}
}

func TestAssess_Validation(t *testing.T) {
	t.Parallel()
	svc, _ := newTestService(t, nil, nil, nil)

	tooMany := make([]clinical.TemporalSymptom, maxSymptoms+1)
	for i := range tooMany {
		tooMany[i] = clinical.TemporalSymptom{Name: "cough"}
	}
	tests := map[string]Request{
		"no symptoms":       {},
		"too many symptoms": {Symptoms: tooMany},
		"bad patient id":    {PatientID: "not-a-uuid", Symptoms: sneezing},
	}
	for name, req := range tests {
		if _, err := svc.Assess(context.Background(), req); !errors.Is(err, ErrInvalidRequest) {
			t.Errorf("%s: expected ErrInvalidRequest, got %v", name, err)
		}
	}

	pid := uuid.New()
	resp, err := svc.Assess(context.Background(), Request{PatientID: pid.String(), Symptoms: sneezing})
	if err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}
	if resp.PatientID == nil || *resp.PatientID != pid {
		t.Errorf("patient id not carried, got %v", resp.PatientID)
	}
}

func TestGetAndList(t *testing.T) {
	t.Parallel()
	noDB, _ := newTestService(t, nil, nil, nil)
	if _, err := noDB.Get(context.Background(), uuid.New()); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}
	if _, err := noDB.List(context.Background(), ListFilter{}); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("expected ErrStorageUnavailable, got %v", err)
	}

	svc, _ := newTestService(t, nil, newMemRepo(), nil)
	resp, err := svc.Assess(context.Background(), Request{Symptoms: sneezing})
	if err != nil {
		t.Fatal(err)
	}
	got, err := svc.Get(context.Background(), resp.ID)
	if err != nil || got.ID != resp.ID {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := svc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	recs, err := svc.List(context.Background(), ListFilter{Urgency: resp.Urgency()})
	if err != nil || len(recs) != 1 {
		t.Errorf("List = %d records, %v", len(recs), err)
	}
	if _, err := svc.List(context.Background(), ListFilter{Urgency: "whenever"}); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("expected ErrInvalidRequest for unknown urgency, got %v", err)
	}
}
