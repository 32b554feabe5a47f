package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telehealth-assistant/internal/assessment"
	"telehealth-assistant/internal/clinical"
	"telehealth-assistant/internal/knowledge"
)

type fakeTelegram struct {
	messages  []string
	documents []string
	err       error
}

func (f *fakeTelegram) SendMessage(ctx context.Context, chatID int64, text string) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, text)
	return nil
}

func (f *fakeTelegram) SendDocument(ctx context.Context, chatID int64, data []byte, name string) error {
	f.documents = append(f.documents, name)
	return nil
}

func sampleRecord() assessment.Record {
	age := 67
	pid := uuid.New()
	return assessment.Record{
		ID:        uuid.New(),
		PatientID: &pid,
		Source:    "ai:deepseek",
		Escalated: true,
		CreatedAt: time.Date(2025, 5, 2, 10, 0, 0, 0, time.UTC),
		Assessment: &clinical.Assessment{
			Symptoms: []clinical.TemporalSymptom{
				{Name: "chest pain", Severity: 5, Duration: clinical.Duration{Value: 2, Unit: clinical.UnitHours}, Onset: clinical.OnsetSudden},
			},
			Context:        &clinical.PatientContext{Age: &age, Medications: []string{"aspirin"}},
			OverallUrgency: clinical.Emergency,
			UrgencyReason:  `Red flag "cardiac_chest_pain" requires emergency care`,
			RedFlags: []clinical.RedFlagAlert{
				{RuleID: "cardiac_chest_pain", Title: "Possible heart attack", Severity: clinical.AlertCritical, TriggerSymptoms: []string{"chest pain"}},
			},
			PossibleConditions: []clinical.ClinicalCondition{
				{Name: "Myocardial infarction", Confidence: 47, Urgency: knowledge.UrgencyEmergency, Reasoning: []string{"Matches 1 of 5 expected symptoms"}},
			},
			FollowUpQuestions: []clinical.FollowUpQuestion{{Question: "Does the pain spread to your arm or jaw?"}},
		},
	}
}

func TestLines(t *testing.T) {
	t.Parallel()
	rec := sampleRecord()
	var text []string
	for _, ln := range Lines(rec) {
		text = append(text, ln.Text)
	}
	joined := strings.Join(text, "\n")

	for _, want := range []string{
		"Clinical decision-support report",
		"Overall urgency: emergency",
		"[critical] Possible heart attack: chest pain",
		"chest pain, severity 5/5, 2 hours, sudden",
		"Age: 67",
		"Myocardial infarction: 47% (emergency)",
		"Does the pain spread to your arm or jaw?",
		"raised by the red-flag rules",
		assessment.Disclaimer,
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("report lacks %q", want)
		}
	}

	empty := Lines(assessment.Record{ID: uuid.New(), Source: "engine"})
	if last := empty[len(empty)-1]; last.Text != assessment.Disclaimer {
		t.Errorf("report must end with the disclaimer, got %q", last.Text)
	}
}

func TestSummary(t *testing.T) {
	t.Parallel()
	s := Summary(sampleRecord())
	for _, want := range []string{"EMERGENCY assessment", "! Possible heart attack", "Top match: Myocardial infarction (47%)", "Source: ai:deepseek"} {
		if !strings.Contains(s, want) {
			t.Errorf("summary %q lacks %q", s, want)
		}
	}
}

func TestSendClinicianReport_WithoutFont(t *testing.T) {
	t.Parallel()
	tg := &fakeTelegram{}
	svc := NewService(tg, 99, "", zerolog.New(io.Discard))
	svc.fontPaths = []string{"/nonexistent/font.ttf"}

	if err := svc.SendClinicianReport(context.Background(), sampleRecord()); err != nil {
		t.Fatalf("missing font should only skip the pdf: %v", err)
	}
	if len(tg.messages) != 1 || len(tg.documents) != 0 {
		t.Errorf("expected summary only, got %d messages %d documents", len(tg.messages), len(tg.documents))
	}
}

func TestSendClinicianReport_Errors(t *testing.T) {
	t.Parallel()
	if err := NewService(&fakeTelegram{}, 0, "", zerolog.New(io.Discard)).SendClinicianReport(context.Background(), sampleRecord()); err == nil {
		t.Error("expected an error without a chat id")
	}

	tg := &fakeTelegram{err: errors.New("blocked")}
	if err := NewService(tg, 1, "", zerolog.New(io.Discard)).SendClinicianReport(context.Background(), sampleRecord()); err == nil {
		t.Error("expected telegram failure to surface")
	}
}

func TestNewService_FontPathFirst(t *testing.T) {
	t.Parallel()
	svc := NewService(&fakeTelegram{}, 1, "/opt/fonts/custom.ttf", zerolog.New(io.Discard))
	if svc.fontPaths[0] != "/opt/fonts/custom.ttf" || len(svc.fontPaths) != len(defaultFontPaths)+1 {
		t.Errorf("unexpected font paths %v", svc.fontPaths)
	}
}
