package clinical

import (
	"strings"
	"testing"

	"telehealth-assistant/internal/knowledge"
)

func tieKB(t *testing.T) *knowledge.Base {
	t.Helper()
	symptoms := []knowledge.Symptom{
		{Key: knowledge.Fever, Name: "fever", Question: "Fever?"},
		{Key: knowledge.Cough, Name: "cough", Question: "Cough?"},
	}
	conds := []knowledge.Condition{
		{ID: "a", Name: "Alpha", BaselineUrgency: knowledge.UrgencyRoutine,
			Signature: []knowledge.SignatureSymptom{{Symptom: knowledge.Fever, Weight: 1}}},
		{ID: "b", Name: "Bravo", BaselineUrgency: knowledge.UrgencyEmergency,
			Signature: []knowledge.SignatureSymptom{{Symptom: knowledge.Fever, Weight: 1}}},
		{ID: "c", Name: "Charlie", BaselineUrgency: knowledge.UrgencyRoutine,
			Signature: []knowledge.SignatureSymptom{{Symptom: knowledge.Fever, Weight: 1}, {Symptom: knowledge.Cough, Weight: 0.5}},
			RedFlags:  []knowledge.ConditionRedFlag{{Symptom: knowledge.Fever, MinSeverity: 4, Description: "high fever"}}},
	}
	kb, err := knowledge.New(symptoms, conds)
	if err != nil {
		t.Fatal(err)
	}
	return kb
}

func presentSymptoms(feverSeverity int) []NormalizedSymptom {
	return []NormalizedSymptom{
		{ID: "1", Key: knowledge.Fever, Name: "fever", Known: true, Severity: feverSeverity},
		{ID: "2", Key: knowledge.Cough, Name: "cough", Known: true, Severity: 2},
	}
}

func TestRanker_TieBreaks(t *testing.T) {
	t.Parallel()
	kb := tieKB(t)
	r := NewRanker(kb, DefaultConfig())

	scores := map[knowledge.ConditionID]Score{
		"a": {Condition: "a", Raw: 0.5, Coverage: 1, SeverityFactor: 1},
		"b": {Condition: "b", Raw: 0.5, Coverage: 1, SeverityFactor: 1},
		"c": {Condition: "c", Raw: 0.5, Coverage: 1, SeverityFactor: 1},
	}
	got := r.Rank(scores, presentSymptoms(2))

	want := []knowledge.ConditionID{"c", "b", "a"}
	if len(got) != len(want) {
		t.Fatalf("expected %d conditions, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
		if got[i].Confidence != 50 {
			t.Errorf("%s: confidence %d, want 50", got[i].ID, got[i].Confidence)
		}
	}
}

func TestRanker_Truncates(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	cfg.MaxConditions = 2
	r := NewRanker(tieKB(t), cfg)

	got := r.Rank(map[knowledge.ConditionID]Score{
		"a": {Raw: 0.9, Coverage: 1, SeverityFactor: 1},
		"b": {Raw: 0.2, Coverage: 1, SeverityFactor: 1},
		"c": {Raw: 0.6, Coverage: 1, SeverityFactor: 1},
	}, presentSymptoms(2))
	if len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("unexpected truncated ranking: %+v", got)
	}
}

func TestRanker_ExplainsConditions(t *testing.T) {
	t.Parallel()
	r := NewRanker(tieKB(t), DefaultConfig())

	got := r.Rank(map[knowledge.ConditionID]Score{
		"b": {Raw: 0.4, Coverage: 1, SeverityFactor: 1.3},
		"c": {Raw: 0.8, Coverage: 1, SeverityFactor: 1.3},
	}, presentSymptoms(4))
	if len(got) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(got))
	}
	top := got[0]
	if top.ID != "c" {
		t.Fatalf("expected c on top, got %s", top.ID)
	}

	if len(top.MatchingSymptoms) != 2 || top.MatchingSymptoms[0] != knowledge.Fever {
		t.Errorf("matching symptoms should be ordered by weight: %v", top.MatchingSymptoms)
	}
	if len(top.MissingSymptoms) != 0 {
		t.Errorf("expected no missing symptoms, got %v", top.MissingSymptoms)
	}
	if len(top.Reasoning) == 0 || !strings.Contains(top.Reasoning[0], "Matches 2 of 2") {
		t.Errorf("first reason should describe the match, got %v", top.Reasoning)
	}
	if len(top.DifferentialFactors) == 0 || !strings.Contains(top.DifferentialFactors[0], "cough (reported)") {
		t.Errorf("expected cough to distinguish Charlie from Bravo, got %v", top.DifferentialFactors)
	}
	if len(top.RedFlags) != 1 || top.Urgency != knowledge.UrgencySoon {
		t.Errorf("condition red flag should escalate routine to soon, got %v / %s", top.RedFlags, top.Urgency)
	}

	second := got[1]
	if !strings.Contains(strings.Join(second.Reasoning, "|"), "Does not explain: cough") {
		t.Errorf("unexplained input should be named, got %v", second.Reasoning)
	}
	want := "cough (reported) is typical of Charlie but not of Bravo"
	if len(second.DifferentialFactors) != 1 || second.DifferentialFactors[0] != want {
		t.Errorf("separators of the rival should be listed too, got %v", second.DifferentialFactors)
	}
}

func TestRanker_EmptyScores(t *testing.T) {
	t.Parallel()
	got := NewRanker(tieKB(t), DefaultConfig()).Rank(nil, nil)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %#v", got)
	}
}

func TestConfidence(t *testing.T) {
	t.Parallel()
	tests := map[float64]int{0.994: 99, 0.2: 20, 1.5: 100, -1: 0, 0: 0}
	for raw, want := range tests {
		if got := Confidence(raw); got != want {
			t.Errorf("Confidence(%v) = %d, want %d", raw, got, want)
		}
	}
}
