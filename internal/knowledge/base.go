// Package knowledge holds the static clinical knowledge base: the canonical
// symptom vocabulary and the condition catalog the engine scores against.
// A Base is immutable after construction and safe for concurrent use.
package knowledge

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// Bounds enforced on catalog content.
const (
	MaxModifierAdjustment = 0.20
	MaxSeverity           = 5
)

// Base is a validated, read-only knowledge base.
type Base struct {
	symptoms   map[SymptomKey]Symptom
	symptomSeq []SymptomKey
	conditions map[ConditionID]*Condition
	order      []ConditionID
}

// New validates the given vocabulary and catalog and builds a Base. The input
// slices are copied; later changes by the caller do not affect the Base.
func New(symptoms []Symptom, conditions []Condition) (*Base, error) {
	if len(symptoms) == 0 {
		return nil, errors.New("knowledge: empty symptom vocabulary")
	}
	if len(conditions) == 0 {
		return nil, errors.New("knowledge: empty condition catalog")
	}

	b := &Base{
		symptoms:   make(map[SymptomKey]Symptom, len(symptoms)),
		conditions: make(map[ConditionID]*Condition, len(conditions)),
	}

	var errs []error
	for _, s := range symptoms {
		if s.Key == "" {
			errs = append(errs, errors.New("symptom with empty key"))
			continue
		}
		if _, dup := b.symptoms[s.Key]; dup {
			errs = append(errs, fmt.Errorf("duplicate symptom %q", s.Key))
			continue
		}
		if s.Name == "" {
			errs = append(errs, fmt.Errorf("symptom %q: empty name", s.Key))
		}
		if s.Question == "" {
			errs = append(errs, fmt.Errorf("symptom %q: empty question", s.Key))
		}
		s.Synonyms = append([]string(nil), s.Synonyms...)
		b.symptoms[s.Key] = s
		b.symptomSeq = append(b.symptomSeq, s.Key)
	}

	for i := range conditions {
		c := cloneCondition(conditions[i])
		if err := b.validateCondition(c); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := b.conditions[c.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate condition %q", c.ID))
			continue
		}
		b.conditions[c.ID] = c
		b.order = append(b.order, c.ID)
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("knowledge: invalid catalog: %w", errors.Join(errs...))
	}

	sort.Slice(b.order, func(i, j int) bool { return b.order[i] < b.order[j] })
	return b, nil
}

// Default builds the shipped vocabulary and catalog.
func Default() (*Base, error) {
	return New(defaultSymptoms(), defaultConditions())
}

func (b *Base) validateCondition(c *Condition) error {
	if c.ID == "" {
		return errors.New("condition with empty id")
	}
	if c.Name == "" {
		return fmt.Errorf("condition %q: empty name", c.ID)
	}
	if len(c.Signature) == 0 {
		return fmt.Errorf("condition %q: empty signature", c.ID)
	}
	if !c.BaselineUrgency.IsValid() {
		return fmt.Errorf("condition %q: unknown urgency %q", c.ID, c.BaselineUrgency)
	}

	seen := make(map[SymptomKey]bool, len(c.Signature))
	for _, s := range c.Signature {
		if _, ok := b.symptoms[s.Symptom]; !ok {
			return fmt.Errorf("condition %q: unknown symptom %q", c.ID, s.Symptom)
		}
		if seen[s.Symptom] {
			return fmt.Errorf("condition %q: symptom %q listed twice", c.ID, s.Symptom)
		}
		seen[s.Symptom] = true
		if math.IsNaN(s.Weight) || s.Weight <= 0 || s.Weight > 1 {
			return fmt.Errorf("condition %q: weight %v for %q outside (0,1]", c.ID, s.Weight, s.Symptom)
		}
	}

	for _, m := range c.RiskModifiers {
		if !m.HasCriteria() {
			return fmt.Errorf("condition %q: modifier %q has no criteria", c.ID, m.Description)
		}
		if math.Abs(m.Adjustment) > MaxModifierAdjustment {
			return fmt.Errorf("condition %q: modifier %q adjustment %v exceeds %v", c.ID, m.Description, m.Adjustment, MaxModifierAdjustment)
		}
		if m.MaxAge > 0 && m.MinAge > m.MaxAge {
			return fmt.Errorf("condition %q: modifier %q has min age above max age", c.ID, m.Description)
		}
	}

	for _, rf := range c.RedFlags {
		if _, ok := b.symptoms[rf.Symptom]; !ok {
			return fmt.Errorf("condition %q: red flag on unknown symptom %q", c.ID, rf.Symptom)
		}
		if rf.MinSeverity < 0 || rf.MinSeverity > MaxSeverity {
			return fmt.Errorf("condition %q: red flag severity %d out of range", c.ID, rf.MinSeverity)
		}
	}

	w := c.TypicalDuration
	if w.MinHours < 0 || w.MaxHours < 0 || (w.MaxHours > 0 && w.MinHours > w.MaxHours) {
		return fmt.Errorf("condition %q: invalid duration window", c.ID)
	}
	return nil
}

// Symptom looks up a canonical symptom.
func (b *Base) Symptom(key SymptomKey) (Symptom, bool) {
	s, ok := b.symptoms[key]
	return s, ok
}

// Symptoms returns the vocabulary in declaration order.
func (b *Base) Symptoms() []Symptom {
	out := make([]Symptom, 0, len(b.symptomSeq))
	for _, k := range b.symptomSeq {
		out = append(out, b.symptoms[k])
	}
	return out
}

// SymptomName returns the display name of key, falling back to the key itself.
func (b *Base) SymptomName(key SymptomKey) string {
	if s, ok := b.symptoms[key]; ok {
		return s.Name
	}
	return string(key)
}

// Condition looks up a condition definition. The returned pointer must be
// treated as read-only.
func (b *Base) Condition(id ConditionID) (*Condition, bool) {
	c, ok := b.conditions[id]
	return c, ok
}

// Conditions returns all definitions ordered by id.
func (b *Base) Conditions() []*Condition {
	out := make([]*Condition, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.conditions[id])
	}
	return out
}

func cloneCondition(c Condition) *Condition {
	c.Signature = append([]SignatureSymptom(nil), c.Signature...)
	c.RedFlags = append([]ConditionRedFlag(nil), c.RedFlags...)
	c.SelfCare = append([]string(nil), c.SelfCare...)
	mods := make([]RiskModifier, len(c.RiskModifiers))
	for i, m := range c.RiskModifiers {
		m.HistoryTerms = append([]string(nil), m.HistoryTerms...)
		m.MedicationTerms = append([]string(nil), m.MedicationTerms...)
		mods[i] = m
	}
	c.RiskModifiers = mods
	return &c
}
