package clinical

import (
	"strings"
	"testing"

	"telehealth-assistant/internal/knowledge"
)

func TestUrgencyClassifier_Precedence(t *testing.T) {
	t.Parallel()
	u := NewUrgencyClassifier(DefaultConfig())
	symptoms := []NormalizedSymptom{{Key: knowledge.Fever, Name: "fever", Known: true, Severity: 3}}

	cond := func(name string, urgency knowledge.Urgency, confidence int) ClinicalCondition {
		return ClinicalCondition{ID: knowledge.ConditionID(strings.ToLower(name)), Name: name, Urgency: urgency, Confidence: confidence}
	}
	critical := RedFlagAlert{RuleID: "stroke_signs", Title: "Possible stroke", Severity: AlertCritical, CallEmergency: true}
	danger := RedFlagAlert{RuleID: "syncope", Title: "Fainting", Severity: AlertDanger}
	warning := RedFlagAlert{RuleID: "dehydration_risk", Title: "Risk of dehydration", Severity: AlertWarning}

	tests := []struct {
		name       string
		conditions []ClinicalCondition
		alerts     []RedFlagAlert
		symptoms   []NormalizedSymptom
		want       OverallUrgency
		reason     string
	}{
		{"call-emergency alert beats a mild differential", []ClinicalCondition{cond("Cold", knowledge.UrgencyRoutine, 90)},
			[]RedFlagAlert{warning, critical}, symptoms, Emergency, "stroke_signs"},
		{"confident emergency condition", []ClinicalCondition{cond("Stroke", knowledge.UrgencyEmergency, 65)},
			nil, symptoms, Emergency, "Stroke"},
		{"emergency condition below threshold falls to urgent care", []ClinicalCondition{cond("Stroke", knowledge.UrgencyEmergency, 55)},
			nil, symptoms, UrgentCare, "Stroke"},
		{"danger alert", nil, []RedFlagAlert{danger}, symptoms, UrgentCare, "syncope"},
		{"urgent condition", []ClinicalCondition{cond("Pneumonia", knowledge.UrgencyUrgent, 50)},
			nil, symptoms, UrgentCare, "Pneumonia"},
		{"urgent condition with low confidence", []ClinicalCondition{cond("Pneumonia", knowledge.UrgencyUrgent, 40)},
			nil, symptoms, ScheduleVisit, "Pneumonia"},
		{"moderate match", []ClinicalCondition{cond("Migraine", knowledge.UrgencySoon, 35)},
			nil, symptoms, ScheduleVisit, "35%"},
		{"warning alert alone", nil, []RedFlagAlert{warning}, symptoms, ScheduleVisit, "dehydration_risk"},
		{"weak match", []ClinicalCondition{cond("Cold", knowledge.UrgencyRoutine, 20)},
			nil, symptoms, SelfCare, "Cold"},
		{"emergency threshold is inclusive", []ClinicalCondition{cond("Stroke", knowledge.UrgencyEmergency, 60)},
			nil, symptoms, Emergency, "60%"},
		{"schedule threshold is inclusive", []ClinicalCondition{cond("Migraine", knowledge.UrgencySoon, 30)},
			nil, symptoms, ScheduleVisit, "30%"},
		{"no candidates", nil, nil, symptoms, SelfCare, "The reported symptom matched"},
		{"no candidates among several", nil, nil, append(symptoms, NormalizedSymptom{Key: knowledge.Cough, Name: "cough", Known: true}),
			SelfCare, "None of the 2 reported symptoms"},
		{"no symptoms", nil, nil, nil, SelfCare, "No symptoms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := u.Classify(tt.conditions, tt.alerts, tt.symptoms)
			if got != tt.want {
				t.Fatalf("Classify = %s, want %s (reason %q)", got, tt.want, reason)
			}
			if !strings.Contains(reason, tt.reason) {
				t.Errorf("reason %q should mention %q", reason, tt.reason)
			}
		})
	}
}
