package clinical

import (
	"time"

	"telehealth-assistant/internal/knowledge"
)

type DurationUnit string

const (
	UnitHours  DurationUnit = "hours"
	UnitDays   DurationUnit = "days"
	UnitWeeks  DurationUnit = "weeks"
	UnitMonths DurationUnit = "months"
)

type Progression string

const (
	ProgressionImproving Progression = "improving"
	ProgressionStable    Progression = "stable"
	ProgressionWorsening Progression = "worsening"
)

type Onset string

const (
	OnsetSudden  Onset = "sudden"
	OnsetGradual Onset = "gradual"
)

type Frequency string

const (
	FrequencyConstant     Frequency = "constant"
	FrequencyIntermittent Frequency = "intermittent"
	FrequencyOccasional   Frequency = "occasional"
)

// Duration of a symptom as reported.
type Duration struct {
	Value float64      `json:"value" yaml:"value"`
	Unit  DurationUnit `json:"unit" yaml:"unit"`
}

// TemporalSymptom is one reported symptom. Enum fields are plain strings on
// the wire; unknown values are replaced with neutral defaults during
// normalization.
type TemporalSymptom struct {
	ID          string      `json:"id,omitempty" yaml:"id"`
	Name        string      `json:"name" yaml:"name"`
	Severity    int         `json:"severity" yaml:"severity"`
	Duration    Duration    `json:"duration" yaml:"duration"`
	Progression Progression `json:"progression,omitempty" yaml:"progression"`
	Onset       Onset       `json:"onset,omitempty" yaml:"onset"`
	Frequency   Frequency   `json:"frequency,omitempty" yaml:"frequency"`
	Location    string      `json:"location,omitempty" yaml:"location"`
}

// Vitals are optional measurements. Zero means "not measured".
type Vitals struct {
	HeartRate        int     `json:"heart_rate,omitempty" yaml:"heart_rate"`
	SystolicBP       int     `json:"systolic_bp,omitempty" yaml:"systolic_bp"`
	DiastolicBP      int     `json:"diastolic_bp,omitempty" yaml:"diastolic_bp"`
	TemperatureC     float64 `json:"temperature_c,omitempty" yaml:"temperature_c"`
	RespiratoryRate  int     `json:"respiratory_rate,omitempty" yaml:"respiratory_rate"`
	OxygenSaturation int     `json:"oxygen_saturation,omitempty" yaml:"oxygen_saturation"`
}

// PatientContext carries optional demographic and clinical modifiers.
type PatientContext struct {
	Age            *int             `json:"age,omitempty" yaml:"age"`
	Gender         knowledge.Gender `json:"gender,omitempty" yaml:"gender"`
	MedicalHistory []string         `json:"medical_history,omitempty" yaml:"medical_history"`
	Medications    []string         `json:"medications,omitempty" yaml:"medications"`
	Vitals         *Vitals          `json:"vitals,omitempty" yaml:"vitals"`
}

// NormalizedSymptom is a fully populated, canonical symptom record. Every
// component after the Normalizer works only with these.
type NormalizedSymptom struct {
	ID            string               `json:"id"`
	Key           knowledge.SymptomKey `json:"key"`
	Name          string               `json:"name"`
	Reported      string               `json:"reported"`
	ReportedTexts []string             `json:"reported_texts"`
	Known         bool                 `json:"known"`
	Severity      int                  `json:"severity"`
	Duration      Duration             `json:"duration"`
	DurationHours float64              `json:"duration_hours"`
	Progression   Progression          `json:"progression"`
	Onset         Onset                `json:"onset"`
	Frequency     Frequency            `json:"frequency"`
	Location      string               `json:"location,omitempty"`
}

// ClinicalCondition is one scored and ranked candidate.
type ClinicalCondition struct {
	ID                  knowledge.ConditionID  `json:"id"`
	Name                string                 `json:"name"`
	Description         string                 `json:"description"`
	Confidence          int                    `json:"confidence"`
	MatchingSymptoms    []knowledge.SymptomKey `json:"matching_symptoms"`
	MissingSymptoms     []knowledge.SymptomKey `json:"missing_symptoms"`
	Reasoning           []string               `json:"reasoning"`
	DifferentialFactors []string               `json:"differential_factors"`
	RedFlags            []string               `json:"red_flags"`
	Urgency             knowledge.Urgency      `json:"urgency"`
}

type AlertSeverity string

const (
	AlertWarning  AlertSeverity = "warning"
	AlertDanger   AlertSeverity = "danger"
	AlertCritical AlertSeverity = "critical"
)

func (s AlertSeverity) rank() int {
	switch s {
	case AlertCritical:
		return 2
	case AlertDanger:
		return 1
	default:
		return 0
	}
}

// RedFlagAlert is a triggered safety rule.
type RedFlagAlert struct {
	RuleID          string        `json:"rule_id"`
	Title           string        `json:"title"`
	Severity        AlertSeverity `json:"severity"`
	TriggerSymptoms []string      `json:"trigger_symptoms"`
	Action          string        `json:"action"`
	CallEmergency   bool          `json:"call_emergency"`
}

// FollowUpQuestion is a clarifying question that separates two or more
// candidate conditions.
type FollowUpQuestion struct {
	ID                 string                  `json:"id"`
	Question           string                  `json:"question"`
	Symptom            knowledge.SymptomKey    `json:"symptom"`
	Purpose            string                  `json:"purpose"`
	ReducesUncertainty []knowledge.ConditionID `json:"reduces_uncertainty"`
	Priority           float64                 `json:"priority"`
}

// OverallUrgency is the assessment-level urgency class.
type OverallUrgency string

const (
	SelfCare      OverallUrgency = "self-care"
	ScheduleVisit OverallUrgency = "schedule-visit"
	UrgentCare    OverallUrgency = "urgent-care"
	Emergency     OverallUrgency = "emergency"
)

// Rank orders the classes from self-care (0) to emergency (3).
func (u OverallUrgency) Rank() int {
	switch u {
	case Emergency:
		return 3
	case UrgentCare:
		return 2
	case ScheduleVisit:
		return 1
	default:
		return 0
	}
}

// Assessment is the immutable result of one Analyze call.
type Assessment struct {
	Symptoms                []TemporalSymptom   `json:"symptoms"`
	Context                 *PatientContext     `json:"context,omitempty"`
	NormalizedSymptoms      []NormalizedSymptom `json:"normalized_symptoms"`
	PossibleConditions      []ClinicalCondition `json:"possible_conditions"`
	RedFlags                []RedFlagAlert      `json:"red_flags"`
	FollowUpQuestions       []FollowUpQuestion  `json:"follow_up_questions"`
	OverallUrgency          OverallUrgency      `json:"overall_urgency"`
	UrgencyReason           string              `json:"urgency_reason"`
	ConfidenceExplanation   string              `json:"confidence_explanation"`
	DifferentialExplanation string              `json:"differential_explanation"`
	UnexplainedSymptoms     []string            `json:"unexplained_symptoms"`
	NextSteps               []string            `json:"next_steps"`
	SelfCareAdvice          []string            `json:"self_care_advice"`
	WhenToSeekHelp          []string            `json:"when_to_seek_help"`
	Timestamp               time.Time           `json:"timestamp"`
}
