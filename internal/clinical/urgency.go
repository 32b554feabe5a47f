package clinical

import (
	"fmt"

	"telehealth-assistant/internal/knowledge"
)

// UrgencyClassifier reduces ranked conditions and alerts to one overall
// urgency class. Rules are evaluated in strict precedence order.
type UrgencyClassifier struct {
	cfg Config
}

func NewUrgencyClassifier(cfg Config) *UrgencyClassifier {
	return &UrgencyClassifier{cfg: cfg}
}

// Classify returns the overall urgency and a reason naming the rule or
// condition that decided it.
func (u *UrgencyClassifier) Classify(conditions []ClinicalCondition, alerts []RedFlagAlert, symptoms []NormalizedSymptom) (OverallUrgency, string) {
	for _, a := range alerts {
		if a.CallEmergency {
			return Emergency, fmt.Sprintf("Red flag %q (%s) requires emergency care", a.RuleID, a.Title)
		}
	}
	for _, c := range conditions {
		if c.Urgency == knowledge.UrgencyEmergency && c.Confidence >= u.cfg.EmergencyConfidence {
			return Emergency, fmt.Sprintf("%s is possible with %d%% confidence and needs emergency care", c.Name, c.Confidence)
		}
	}

	for _, a := range alerts {
		if a.Severity.rank() >= AlertDanger.rank() {
			return UrgentCare, fmt.Sprintf("Red flag %q (%s) needs same-day medical care", a.RuleID, a.Title)
		}
	}
	for _, c := range conditions {
		if c.Urgency.Rank() >= knowledge.UrgencyUrgent.Rank() && c.Confidence >= u.cfg.UrgentConfidence {
			return UrgentCare, fmt.Sprintf("%s is possible with %d%% confidence and should be assessed today", c.Name, c.Confidence)
		}
	}

	if len(conditions) > 0 && conditions[0].Confidence >= u.cfg.ScheduleVisitConfidence {
		top := conditions[0]
		return ScheduleVisit, fmt.Sprintf("%s is the closest match at %d%% confidence; a clinician should confirm it", top.Name, top.Confidence)
	}
	for _, a := range alerts {
		if a.Severity == AlertWarning {
			return ScheduleVisit, fmt.Sprintf("Warning sign %q (%s) should be reviewed by a clinician", a.RuleID, a.Title)
		}
	}

	switch {
	case len(symptoms) == 0:
		return SelfCare, "No symptoms were reported and no warning signs were found"
	case len(conditions) == 0:
		subject := fmt.Sprintf("None of the %d reported symptoms", len(symptoms))
		if len(symptoms) == 1 {
			subject = "The reported symptom"
		}
		return SelfCare, subject + " matched a known condition strongly enough and no warning signs were found"
	default:
		top := conditions[0]
		return SelfCare, fmt.Sprintf("%s is the closest match at only %d%% confidence (below %d%%) and no warning signs were found",
			top.Name, top.Confidence, u.cfg.ScheduleVisitConfidence)
	}
}
