// Package clinical is the offline decision-support engine. It turns reported
// symptoms and optional patient context into a ranked differential, red-flag
// alerts, an overall urgency and follow-up questions. Analyze is pure apart
// from the output timestamp and is safe for concurrent use.
package clinical

import (
	"errors"
	"time"

	"telehealth-assistant/internal/knowledge"
)

// Engine wires the pipeline stages around one knowledge base.
type Engine struct {
	kb         *knowledge.Base
	cfg        Config
	normalizer *Normalizer
	scorer     *Scorer
	ranker     *Ranker
	detector   *RedFlagDetector
	classifier *UrgencyClassifier
	questions  *QuestionGenerator
	now        func() time.Time
}

type Option func(*Engine)

// WithClock overrides the clock used to timestamp assessments.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(kb *knowledge.Base, cfg Config, opts ...Option) (*Engine, error) {
	if kb == nil {
		return nil, errors.New("clinical: nil knowledge base")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		kb:         kb,
		cfg:        cfg,
		normalizer: NewNormalizer(kb),
		scorer:     NewScorer(kb, cfg),
		ranker:     NewRanker(kb, cfg),
		detector:   NewRedFlagDetector(),
		classifier: NewUrgencyClassifier(cfg),
		questions:  NewQuestionGenerator(kb, cfg),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Config returns the constants the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Normalize exposes the normalizer stage on its own.
func (e *Engine) Normalize(symptoms []TemporalSymptom) []NormalizedSymptom {
	return e.normalizer.Normalize(symptoms)
}

// DetectRedFlags runs only the safety rules. Callers that take another path
// to an answer use it to keep the safety net in place.
func (e *Engine) DetectRedFlags(symptoms []TemporalSymptom, patient *PatientContext) []RedFlagAlert {
	return e.detector.Detect(e.normalizer.Normalize(symptoms), patient)
}

// Analyze runs the full pipeline. It never fails: malformed fields are
// replaced with defaults and an input nothing matches yields an assessment
// without conditions.
func (e *Engine) Analyze(symptoms []TemporalSymptom, patient *PatientContext) *Assessment {
	input := append([]TemporalSymptom{}, symptoms...)
	ctx := clonePatient(patient)

	normalized := e.normalizer.Normalize(input)
	scores := e.scorer.Score(normalized, ctx)
	conditions := e.ranker.Rank(scores, normalized)
	alerts := e.detector.Detect(normalized, ctx)
	urgency, reason := e.classifier.Classify(conditions, alerts, normalized)

	a := &Assessment{
		Symptoms:            input,
		Context:             ctx,
		NormalizedSymptoms:  normalized,
		PossibleConditions:  conditions,
		RedFlags:            alerts,
		FollowUpQuestions:   e.questions.Generate(conditions),
		OverallUrgency:      urgency,
		UrgencyReason:       reason,
		UnexplainedSymptoms: unexplainedSymptoms(normalized, conditions),
		Timestamp:           e.now().UTC(),
	}
	e.composeAdvice(a)
	return a
}

// EnforceRedFlags applies the safety rules to an assessment produced
// elsewhere. Alerts replace a.RedFlags, and the overall urgency is raised
// to what the alerts alone demand; it is never lowered. It reports whether
// the urgency was raised.
func (e *Engine) EnforceRedFlags(a *Assessment) bool {
	normalized := e.normalizer.Normalize(a.Symptoms)
	if len(a.NormalizedSymptoms) == 0 {
		a.NormalizedSymptoms = normalized
	}
	a.RedFlags = e.detector.Detect(normalized, a.Context)

	floor, reason := e.classifier.Classify(nil, a.RedFlags, normalized)
	if len(a.RedFlags) == 0 || floor.Rank() <= a.OverallUrgency.Rank() {
		return false
	}
	a.OverallUrgency = floor
	a.UrgencyReason = reason
	e.composeAdvice(a)
	return true
}

func clonePatient(p *PatientContext) *PatientContext {
	if p == nil {
		return nil
	}
	c := *p
	if p.Age != nil {
		age := *p.Age
		c.Age = &age
	}
	c.MedicalHistory = append([]string(nil), p.MedicalHistory...)
	c.Medications = append([]string(nil), p.Medications...)
	if p.Vitals != nil {
		v := *p.Vitals
		c.Vitals = &v
	}
	return &c
}
