package clinical

import (
	"testing"

	"telehealth-assistant/internal/knowledge"
)

func questionKB(t *testing.T) *knowledge.Base {
	t.Helper()
	symptoms := []knowledge.Symptom{
		{Key: knowledge.Fever, Name: "fever", Question: "Do you have a fever?"},
		{Key: knowledge.Cough, Name: "cough", Question: "Do you have a cough?"},
		{Key: knowledge.Rash, Name: "rash", Question: "Do you have a rash?"},
		{Key: knowledge.Headache, Name: "headache", Question: "Do you have a headache?"},
	}
	conds := []knowledge.Condition{
		{ID: "a", Name: "Alpha", BaselineUrgency: knowledge.UrgencySoon, Signature: []knowledge.SignatureSymptom{
			{Symptom: knowledge.Fever, Weight: 1.0}, {Symptom: knowledge.Cough, Weight: 0.5}, {Symptom: knowledge.Rash, Weight: 0.9}}},
		{ID: "b", Name: "Bravo", BaselineUrgency: knowledge.UrgencySoon, Signature: []knowledge.SignatureSymptom{
			{Symptom: knowledge.Fever, Weight: 0.8}, {Symptom: knowledge.Cough, Weight: 0.5}, {Symptom: knowledge.Headache, Weight: 0.3}}},
		{ID: "c", Name: "Charlie", BaselineUrgency: knowledge.UrgencySoon, Signature: []knowledge.SignatureSymptom{
			{Symptom: knowledge.Fever, Weight: 1.0}, {Symptom: knowledge.Rash, Weight: 0.2}}},
	}
	kb, err := knowledge.New(symptoms, conds)
	if err != nil {
		t.Fatal(err)
	}
	return kb
}

func candidates(ids ...knowledge.ConditionID) []ClinicalCondition {
	matching := map[knowledge.ConditionID][]knowledge.SymptomKey{
		"a": {knowledge.Fever, knowledge.Cough},
		"b": {knowledge.Fever, knowledge.Cough},
		"c": {knowledge.Fever},
	}
	out := make([]ClinicalCondition, len(ids))
	for i, id := range ids {
		out[i] = ClinicalCondition{ID: id, MatchingSymptoms: matching[id]}
	}
	return out
}

func TestQuestionGenerator_NeedsTwoCandidates(t *testing.T) {
	t.Parallel()
	g := NewQuestionGenerator(questionKB(t), DefaultConfig())
	if got := g.Generate(candidates("a")); len(got) != 0 {
		t.Errorf("expected no questions for a single candidate, got %+v", got)
	}
	if got := g.Generate(nil); got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestQuestionGenerator_PicksLargestWeightGap(t *testing.T) {
	t.Parallel()
	g := NewQuestionGenerator(questionKB(t), DefaultConfig())

	got := g.Generate(candidates("a", "b"))
	if len(got) != 1 {
		t.Fatalf("expected one question, got %+v", got)
	}
	q := got[0]
	if q.Symptom != knowledge.Rash || q.ID != "q-rash" || q.Question != "Do you have a rash?" {
		t.Errorf("expected the rash question, got %+v", q)
	}
	if q.Priority != 0.9 {
		t.Errorf("priority should be the weight gap 0.9, got %v", q.Priority)
	}
	if len(q.ReducesUncertainty) != 2 {
		t.Errorf("expected both conditions, got %v", q.ReducesUncertainty)
	}
}

func TestQuestionGenerator_MergesAndCaps(t *testing.T) {
	t.Parallel()
	g := NewQuestionGenerator(questionKB(t), DefaultConfig())

	got := g.Generate(candidates("a", "b", "c"))
	if len(got) != 2 {
		t.Fatalf("expected two questions, got %+v", got)
	}
	if got[0].Symptom != knowledge.Rash || got[1].Symptom != knowledge.Headache {
		t.Errorf("unexpected order: %s, %s", got[0].Symptom, got[1].Symptom)
	}
	if len(got[0].ReducesUncertainty) != 3 {
		t.Errorf("rash question should cover all three conditions, got %v", got[0].ReducesUncertainty)
	}
	if got[0].Priority != 0.9 {
		t.Errorf("merged question should keep the highest priority, got %v", got[0].Priority)
	}

	cfg := DefaultConfig()
	cfg.MaxQuestions = 1
	capped := NewQuestionGenerator(questionKB(t), cfg).Generate(candidates("a", "b", "c"))
	if len(capped) != 1 || capped[0].Symptom != knowledge.Rash {
		t.Errorf("expected only the top question, got %+v", capped)
	}
}
