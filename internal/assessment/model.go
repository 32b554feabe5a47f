package assessment

import (
	"time"

	"github.com/google/uuid"

	"telehealth-assistant/internal/clinical"
)

// Disclaimer accompanies every assessment returned to a patient.
const Disclaimer = "This is a decision-support tool, not a diagnosis. " +
	"If you think you may have a medical emergency, call your local emergency number immediately."

const (
	SourceEngine   = "engine"
	sourceAIPrefix = "ai:"

	maxSymptoms = 30
)

// Request is the input of one assessment.
type Request struct {
	PatientID string                     `json:"patient_id,omitempty" yaml:"patient_id"`
	Symptoms  []clinical.TemporalSymptom `json:"symptoms" yaml:"symptoms"`
	Context   *clinical.PatientContext   `json:"context,omitempty" yaml:"context"`
}

// Record is a stored assessment.
type Record struct {
	ID         uuid.UUID            `json:"id" db:"id"`
	PatientID  *uuid.UUID           `json:"patient_id,omitempty" db:"patient_id"`
	Source     string               `json:"source" db:"source"`
	Escalated  bool                 `json:"escalated" db:"escalated"`
	Request    Request              `json:"request" db:"request"`
	Assessment *clinical.Assessment `json:"assessment" db:"assessment"`
	CreatedAt  time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at" db:"updated_at"`
}

// Urgency is a shortcut for the stored overall urgency.
func (r *Record) Urgency() clinical.OverallUrgency {
	if r.Assessment == nil {
		return clinical.SelfCare
	}
	return r.Assessment.OverallUrgency
}

// RedFlagIDs lists the rule ids of the stored alerts.
func (r *Record) RedFlagIDs() []string {
	ids := []string{}
	if r.Assessment == nil {
		return ids
	}
	for _, a := range r.Assessment.RedFlags {
		ids = append(ids, a.RuleID)
	}
	return ids
}

// NeedsClinician reports whether a clinician should be notified.
func (r *Record) NeedsClinician() bool {
	return r.Urgency().Rank() >= clinical.UrgentCare.Rank()
}

// Response is what the API returns for one assessment.
type Response struct {
	Record
	Disclaimer string `json:"disclaimer"`
}

// ListFilter narrows Repository.List.
type ListFilter struct {
	Urgency   clinical.OverallUrgency
	PatientID *uuid.UUID
	Limit     int
}
