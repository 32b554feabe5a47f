package clinical

import (
	"math"
	"strings"

	"telehealth-assistant/internal/knowledge"
)

// Score is the raw score of one condition with the parts that produced it.
type Score struct {
	Condition knowledge.ConditionID
	// Raw is the final score in [0,1].
	Raw float64
	// Coverage is the matched share of the total signature weight.
	Coverage float64
	// SeverityFactor is the weighted mean severity multiplier of matched
	// symptoms.
	SeverityFactor     float64
	TemporalAdjustment float64
	DurationFit        float64
	RiskAdjustment     float64
	AppliedModifiers   []knowledge.RiskModifier
	// Capped is set when the missing-primary ceiling lowered the score.
	Capped  bool
	Matched []knowledge.SymptomKey
}

// Scorer computes a raw score per condition.
type Scorer struct {
	kb  *knowledge.Base
	cfg Config
}

func NewScorer(kb *knowledge.Base, cfg Config) *Scorer {
	return &Scorer{kb: kb, cfg: cfg}
}

// Score returns the conditions whose raw score reaches the configured
// minimum. Conditions with no matched signature symptom never appear.
func (s *Scorer) Score(symptoms []NormalizedSymptom, patient *PatientContext) map[knowledge.ConditionID]Score {
	out := make(map[knowledge.ConditionID]Score)
	if len(symptoms) == 0 {
		return out
	}

	present := make(map[knowledge.SymptomKey]NormalizedSymptom, len(symptoms))
	for _, ns := range symptoms {
		if ns.Known {
			present[ns.Key] = ns
		}
	}

	for _, c := range s.kb.Conditions() {
		sc, ok := s.scoreCondition(c, present, patient)
		if !ok || sc.Raw < s.cfg.MinScore {
			continue
		}
		out[c.ID] = sc
	}
	return out
}

func (s *Scorer) scoreCondition(c *knowledge.Condition, present map[knowledge.SymptomKey]NormalizedSymptom, patient *PatientContext) (Score, bool) {
	total := c.TotalWeight()
	if total <= 0 {
		return Score{}, false
	}

	var matchedWeight, severityWeighted, temporal, duration float64
	var matched []knowledge.SymptomKey
	hasWindow := !c.TypicalDuration.IsZero()
	progressionShare := s.cfg.TemporalBound - s.cfg.DurationShare

	for _, sig := range c.Signature {
		ns, ok := present[sig.Symptom]
		if !ok {
			continue
		}
		matched = append(matched, sig.Symptom)
		matchedWeight += sig.Weight
		severityWeighted += sig.Weight * s.severityFactor(ns.Severity)
		if c.Acute {
			temporal += sig.Weight * courseDirection(ns)
		}
		if hasWindow {
			if c.TypicalDuration.Contains(ns.DurationHours) {
				duration += sig.Weight
			} else {
				duration -= sig.Weight
			}
		}
	}
	if matchedWeight == 0 {
		return Score{}, false
	}

	sc := Score{
		Condition:      c.ID,
		Coverage:       matchedWeight / total,
		SeverityFactor: severityWeighted / matchedWeight,
		Matched:        matched,
	}

	sc.TemporalAdjustment = progressionShare * temporal / total
	sc.DurationFit = s.cfg.DurationShare * duration / total
	course := clamp(sc.TemporalAdjustment+sc.DurationFit, -s.cfg.TemporalBound, s.cfg.TemporalBound)

	if patient != nil {
		for _, m := range c.RiskModifiers {
			if modifierMatches(m, patient) {
				sc.RiskAdjustment += m.Adjustment
				sc.AppliedModifiers = append(sc.AppliedModifiers, m)
			}
		}
		sc.RiskAdjustment = clamp(sc.RiskAdjustment, -s.cfg.RiskBound, s.cfg.RiskBound)
	}

	raw := severityWeighted/total + course + sc.RiskAdjustment
	if !primaryMatched(c, present) && raw > s.cfg.MissingPrimaryCeiling {
		raw = s.cfg.MissingPrimaryCeiling
		sc.Capped = true
	}
	sc.Raw = clamp(raw, 0, 1)
	return sc, true
}

// severityFactor maps severity 1..5 linearly onto the configured range.
func (s *Scorer) severityFactor(severity int) float64 {
	frac := float64(ClampSeverity(severity)-1) / float64(knowledge.MaxSeverity-1)
	return s.cfg.SeverityFactorMin + frac*(s.cfg.SeverityFactorMax-s.cfg.SeverityFactorMin)
}

// courseDirection is +1 for a worsening sudden symptom and -1 for an
// improving gradual one.
func courseDirection(ns NormalizedSymptom) float64 {
	var p, o float64
	switch ns.Progression {
	case ProgressionWorsening:
		p = 1
	case ProgressionImproving:
		p = -1
	}
	if ns.Onset == OnsetSudden {
		o = 1
	} else {
		o = -1
	}
	return (p + o) / 2
}

func primaryMatched(c *knowledge.Condition, present map[knowledge.SymptomKey]NormalizedSymptom) bool {
	for _, key := range c.PrimarySymptoms() {
		if _, ok := present[key]; ok {
			return true
		}
	}
	return false
}

// modifierMatches reports whether every criterion the modifier sets is met
// by the patient context. Missing context data never matches.
func modifierMatches(m knowledge.RiskModifier, p *PatientContext) bool {
	if !m.HasCriteria() {
		return false
	}
	if m.MinAge > 0 || m.MaxAge > 0 {
		if p.Age == nil || *p.Age < 0 {
			return false
		}
		if m.MinAge > 0 && *p.Age < m.MinAge {
			return false
		}
		if m.MaxAge > 0 && *p.Age > m.MaxAge {
			return false
		}
	}
	if m.Gender != "" && knowledge.Gender(fold(string(p.Gender))) != m.Gender {
		return false
	}
	if len(m.HistoryTerms) > 0 && !containsAnyTerm(p.MedicalHistory, m.HistoryTerms) {
		return false
	}
	if len(m.MedicationTerms) > 0 && !containsAnyTerm(p.Medications, m.MedicationTerms) {
		return false
	}
	return true
}

// containsAnyTerm matches terms as folded substrings so stems such as
// "smok" or "pregnan" cover their inflections.
func containsAnyTerm(entries, terms []string) bool {
	for _, e := range entries {
		fe := fold(e)
		if fe == "" {
			continue
		}
		for _, t := range terms {
			if ft := fold(t); ft != "" && strings.Contains(fe, ft) {
				return true
			}
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
