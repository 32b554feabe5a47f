package clinical

import (
	"fmt"
	"math"
	"sort"

	"telehealth-assistant/internal/knowledge"
)

// QuestionGenerator proposes the symptoms whose answer best separates the
// ranked candidates.
type QuestionGenerator struct {
	kb  *knowledge.Base
	cfg Config
}

func NewQuestionGenerator(kb *knowledge.Base, cfg Config) *QuestionGenerator {
	return &QuestionGenerator{kb: kb, cfg: cfg}
}

// Generate looks at every pair of ranked conditions and picks the unreported
// symptom with the largest weight gap between the two signatures. Priority
// is that gap. Questions on the same symptom are merged.
func (g *QuestionGenerator) Generate(conditions []ClinicalCondition) []FollowUpQuestion {
	out := []FollowUpQuestion{}
	if len(conditions) < 2 || g.cfg.MaxQuestions == 0 {
		return out
	}

	defs := make([]*knowledge.Condition, len(conditions))
	reported := make(map[knowledge.SymptomKey]bool)
	for i, cc := range conditions {
		def, ok := g.kb.Condition(cc.ID)
		if !ok {
			return out
		}
		defs[i] = def
		for _, k := range cc.MatchingSymptoms {
			reported[k] = true
		}
	}

	index := make(map[knowledge.SymptomKey]int)
	for i := 0; i < len(defs); i++ {
		for j := i + 1; j < len(defs); j++ {
			a, b := defs[i], defs[j]
			key, gap, ok := bestSeparator(a, b, reported)
			if !ok {
				continue
			}
			if pos, seen := index[key]; seen {
				q := &out[pos]
				if gap > q.Priority {
					q.Priority = gap
					q.Purpose = g.purpose(key, a, b)
				}
				q.ReducesUncertainty = appendUnique(q.ReducesUncertainty, a.ID, b.ID)
				continue
			}
			sym, _ := g.kb.Symptom(key)
			index[key] = len(out)
			out = append(out, FollowUpQuestion{
				ID:                 "q-" + string(key),
				Question:           sym.Question,
				Symptom:            key,
				Purpose:            g.purpose(key, a, b),
				ReducesUncertainty: []knowledge.ConditionID{a.ID, b.ID},
				Priority:           gap,
			})
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Symptom < out[j].Symptom
	})
	if len(out) > g.cfg.MaxQuestions {
		out = out[:g.cfg.MaxQuestions]
	}
	return out
}

func (g *QuestionGenerator) purpose(key knowledge.SymptomKey, a, b *knowledge.Condition) string {
	more, less := a, b
	if b.Weight(key) > a.Weight(key) {
		more, less = b, a
	}
	return fmt.Sprintf("%s is more typical of %s than of %s", g.kb.SymptomName(key), more.Name, less.Name)
}

// bestSeparator returns the unreported symptom of either signature with the
// largest weight gap. Ties go to the symptom with the larger combined weight,
// then to the lower key.
func bestSeparator(a, b *knowledge.Condition, reported map[knowledge.SymptomKey]bool) (knowledge.SymptomKey, float64, bool) {
	var best knowledge.SymptomKey
	var bestGap, bestSum float64
	found := false

	consider := func(key knowledge.SymptomKey) {
		if reported[key] {
			return
		}
		wa, wb := a.Weight(key), b.Weight(key)
		gap := math.Abs(wa - wb)
		if gap == 0 {
			return
		}
		sum := wa + wb
		switch {
		case !found, gap > bestGap,
			gap == bestGap && sum > bestSum,
			gap == bestGap && sum == bestSum && key < best:
			best, bestGap, bestSum, found = key, gap, sum, true
		}
	}
	for _, s := range a.Signature {
		consider(s.Symptom)
	}
	for _, s := range b.Signature {
		consider(s.Symptom)
	}
	return best, bestGap, found
}

func appendUnique(ids []knowledge.ConditionID, more ...knowledge.ConditionID) []knowledge.ConditionID {
	for _, m := range more {
		dup := false
		for _, id := range ids {
			if id == m {
				dup = true
				break
			}
		}
		if !dup {
			ids = append(ids, m)
		}
	}
	return ids
}
