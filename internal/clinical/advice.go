package clinical

import (
	"fmt"
	"strings"

	"telehealth-assistant/internal/knowledge"
)

var nextStepsByUrgency = map[OverallUrgency][]string{
	Emergency: {
		"Call your local emergency number now or go to the nearest emergency department.",
		"Do not drive yourself; ask someone to stay with you until help arrives.",
		"Bring a list of your medications and tell the team when the symptoms started.",
	},
	UrgentCare: {
		"Get medical care today at an urgent care centre, out-of-hours service or your doctor's same-day clinic.",
		"If symptoms get suddenly worse before you are seen, call your local emergency number.",
	},
	ScheduleVisit: {
		"Book an appointment with a doctor or nurse within the next few days.",
		"Keep a note of how your symptoms change, including severity and timing.",
	},
	SelfCare: {
		"Your symptoms can usually be managed at home for now.",
		"Book a routine appointment if they last longer than expected or keep coming back.",
	},
}

var selfCareByUrgency = map[OverallUrgency][]string{
	Emergency: {
		"Do not eat or drink until you have been assessed.",
		"Stay still and as calm as possible while you wait for help.",
	},
	UrgentCare: {
		"Rest and avoid strenuous activity until you have been seen.",
	},
	ScheduleVisit: {
		"Rest, stay hydrated and use simple pain relief if it is safe for you.",
	},
	SelfCare: {
		"Rest, drink plenty of fluids and eat light meals.",
		"Use simple over-the-counter remedies only as directed on the pack.",
	},
}

var seekHelpAlways = []string{
	"Call your local emergency number for chest pain, severe difficulty breathing, fainting, seizures or signs of a stroke.",
	"Get urgent help if you feel confused, very drowsy or cannot keep fluids down.",
}

var seekHelpByUrgency = map[OverallUrgency][]string{
	Emergency:     {},
	UrgentCare:    {"Call your local emergency number if you cannot get seen today or your symptoms worsen quickly."},
	ScheduleVisit: {"Seek same-day care if your symptoms get worse before your appointment."},
	SelfCare:      {"Book an appointment if your symptoms last more than a week, get worse or new symptoms appear."},
}

// composeAdvice fills the template text of an assessment. The text is keyed
// by urgency and by the top-ranked condition only.
func (e *Engine) composeAdvice(a *Assessment) {
	var top *knowledge.Condition
	if len(a.PossibleConditions) > 0 {
		top, _ = e.kb.Condition(a.PossibleConditions[0].ID)
	}

	a.NextSteps = append([]string{}, nextStepsByUrgency[a.OverallUrgency]...)
	if top != nil && a.OverallUrgency != SelfCare {
		a.NextSteps = append(a.NextSteps, fmt.Sprintf("Tell the clinician your symptoms were compared with %s so it can be confirmed or ruled out.", top.Name))
	}
	for _, f := range a.RedFlags {
		if f.Action != "" && !contains(a.NextSteps, f.Action) {
			a.NextSteps = append(a.NextSteps, f.Action)
		}
	}

	a.SelfCareAdvice = append([]string{}, selfCareByUrgency[a.OverallUrgency]...)
	if top != nil {
		a.SelfCareAdvice = append(a.SelfCareAdvice, top.SelfCare...)
	}

	a.WhenToSeekHelp = append(append([]string{}, seekHelpByUrgency[a.OverallUrgency]...), seekHelpAlways...)
	if top != nil {
		for _, rf := range top.RedFlags {
			a.WhenToSeekHelp = append(a.WhenToSeekHelp, "Seek urgent care if you notice "+rf.Description+".")
		}
	}

	a.ConfidenceExplanation = confidenceExplanation(a.PossibleConditions)
	a.DifferentialExplanation = differentialExplanation(a.PossibleConditions)
}

func confidenceExplanation(conds []ClinicalCondition) string {
	if len(conds) == 0 {
		return "No condition matched the reported symptoms well enough to be listed. This is not a diagnosis."
	}
	top := conds[0]
	return fmt.Sprintf("%s is the closest match at %d%% confidence, based on %d of %d expected symptoms. "+
		"Confidence reflects how well the symptoms fit a typical pattern, not diagnostic certainty.",
		top.Name, top.Confidence, len(top.MatchingSymptoms), len(top.MatchingSymptoms)+len(top.MissingSymptoms))
}

func differentialExplanation(conds []ClinicalCondition) string {
	switch len(conds) {
	case 0:
		return "No differential could be formed from the reported symptoms."
	case 1:
		return fmt.Sprintf("Only %s cleared the minimum confidence threshold.", conds[0].Name)
	}
	names := make([]string, 0, len(conds)-1)
	for _, c := range conds[1:] {
		names = append(names, fmt.Sprintf("%s (%d%%)", c.Name, c.Confidence))
	}
	msg := fmt.Sprintf("%s (%d%%) ranks above %s.", conds[0].Name, conds[0].Confidence, strings.Join(names, ", "))
	if len(conds[0].DifferentialFactors) > 0 {
		msg += " " + conds[0].DifferentialFactors[0] + "."
	}
	return msg
}

// unexplainedSymptoms lists reported symptoms that no ranked condition
// accounts for, in input order.
func unexplainedSymptoms(symptoms []NormalizedSymptom, conds []ClinicalCondition) []string {
	explained := make(map[knowledge.SymptomKey]bool)
	for _, c := range conds {
		for _, k := range c.MatchingSymptoms {
			explained[k] = true
		}
	}
	out := []string{}
	for _, ns := range symptoms {
		if !explained[ns.Key] {
			out = append(out, ns.Name)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
