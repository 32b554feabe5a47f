package agent

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"telehealth-assistant/internal/clinical"
	"telehealth-assistant/internal/knowledge"
)

const maxConditions = 5

type modelCondition struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Confidence       float64  `json:"confidence"`
	MatchingSymptoms []string `json:"matching_symptoms"`
	Reasoning        []string `json:"reasoning"`
	Urgency          string   `json:"urgency"`
}

type modelResponse struct {
	PossibleConditions    []modelCondition `json:"possible_conditions"`
	OverallUrgency        string           `json:"overall_urgency"`
	UrgencyReason         string           `json:"urgency_reason"`
	ConfidenceExplanation string           `json:"confidence_explanation"`
	FollowUpQuestions     []string         `json:"follow_up_questions"`
	NextSteps             []string         `json:"next_steps"`
	SelfCareAdvice        []string         `json:"self_care_advice"`
	WhenToSeekHelp        []string         `json:"when_to_seek_help"`
}

var overallUrgencies = map[string]clinical.OverallUrgency{
	string(clinical.SelfCare):      clinical.SelfCare,
	string(clinical.ScheduleVisit): clinical.ScheduleVisit,
	string(clinical.UrgentCare):    clinical.UrgentCare,
	string(clinical.Emergency):     clinical.Emergency,
}

// parseAssessment validates a model answer and maps it onto the engine's
// assessment shape. Answers with an unknown overall urgency are rejected;
// confidences are clamped and conditions re-sorted.
func parseAssessment(content string) (*clinical.Assessment, error) {
	var r modelResponse
	if err := json.Unmarshal([]byte(stripFences(content)), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	urgency, ok := overallUrgencies[strings.ToLower(strings.TrimSpace(r.OverallUrgency))]
	if !ok {
		return nil, fmt.Errorf("%w: overall urgency %q", ErrInvalidResponse, r.OverallUrgency)
	}

	conds := make([]clinical.ClinicalCondition, 0, len(r.PossibleConditions))
	for _, mc := range r.PossibleConditions {
		name := strings.TrimSpace(mc.Name)
		if name == "" {
			continue
		}
		u := knowledge.Urgency(strings.ToLower(mc.Urgency))
		if !u.IsValid() {
			u = knowledge.UrgencySoon
		}
		conds = append(conds, clinical.ClinicalCondition{
			ID:                  knowledge.ConditionID(slug(name)),
			Name:                name,
			Description:         mc.Description,
			Confidence:          clinical.Confidence(mc.Confidence / 100),
			MatchingSymptoms:    symptomKeys(mc.MatchingSymptoms),
			MissingSymptoms:     []knowledge.SymptomKey{},
			Reasoning:           nonNil(mc.Reasoning),
			DifferentialFactors: []string{},
			RedFlags:            []string{},
			Urgency:             u,
		})
	}
	sort.SliceStable(conds, func(i, j int) bool { return conds[i].Confidence > conds[j].Confidence })
	if len(conds) > maxConditions {
		conds = conds[:maxConditions]
	}

	questions := make([]clinical.FollowUpQuestion, 0, len(r.FollowUpQuestions))
	for i, q := range r.FollowUpQuestions {
		if strings.TrimSpace(q) == "" {
			continue
		}
		questions = append(questions, clinical.FollowUpQuestion{
			ID:                 fmt.Sprintf("q-ai-%d", i+1),
			Question:           q,
			ReducesUncertainty: []knowledge.ConditionID{},
		})
	}

	return &clinical.Assessment{
		PossibleConditions:    conds,
		RedFlags:              []clinical.RedFlagAlert{},
		FollowUpQuestions:     questions,
		OverallUrgency:        urgency,
		UrgencyReason:         r.UrgencyReason,
		ConfidenceExplanation: r.ConfidenceExplanation,
		UnexplainedSymptoms:   []string{},
		NextSteps:             nonNil(r.NextSteps),
		SelfCareAdvice:        nonNil(r.SelfCareAdvice),
		WhenToSeekHelp:        nonNil(r.WhenToSeekHelp),
	}, nil
}

func symptomKeys(names []string) []knowledge.SymptomKey {
	out := make([]knowledge.SymptomKey, 0, len(names))
	for _, n := range names {
		if s := slug(n); s != "" {
			out = append(out, knowledge.SymptomKey(s))
		}
	}
	return out
}

// slug lowercases s and joins its words with underscores.
func slug(s string) string {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, "_")
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
