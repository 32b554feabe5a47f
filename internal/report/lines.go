package report

import (
	"fmt"
	"strings"

	"telehealth-assistant/internal/assessment"
	"telehealth-assistant/internal/clinical"
)

// Line is one paragraph of the report. A line without text is vertical space.
type Line struct {
	Text string
	Size float64
	Gap  float64
}

const (
	sizeTitle   = 20
	sizeHeading = 14
	sizeBody    = 11
	sizeFooter  = 9
)

func heading(text string) Line { return Line{Text: text, Size: sizeHeading, Gap: 4} }
func body(text string) Line    { return Line{Text: text, Size: sizeBody} }

// Lines lays out the report content independently of the PDF backend.
func Lines(rec assessment.Record) []Line {
	out := []Line{
		{Text: "Clinical decision-support report", Size: sizeTitle, Gap: 12},
		body(fmt.Sprintf("Assessment: %s", rec.ID)),
		body(fmt.Sprintf("Date: %s", rec.CreatedAt.Format("02.01.2006 15:04 MST"))),
	}
	if rec.PatientID != nil {
		out = append(out, body(fmt.Sprintf("Patient: %s", rec.PatientID)))
	}
	out = append(out, body(fmt.Sprintf("Source: %s", rec.Source)))
	if rec.Escalated {
		out = append(out, body("Urgency was raised by the red-flag rules."))
	}

	a := rec.Assessment
	if a == nil {
		return append(out, footer())
	}

	out = append(out,
		Line{Gap: 8},
		heading(fmt.Sprintf("Overall urgency: %s", a.OverallUrgency)),
		body(a.UrgencyReason),
		Line{Gap: 8},
	)

	if len(a.RedFlags) > 0 {
		out = append(out, heading("Red flags"))
		for _, f := range a.RedFlags {
			out = append(out, body(fmt.Sprintf("- [%s] %s: %s", f.Severity, f.Title, strings.Join(f.TriggerSymptoms, ", "))))
		}
		out = append(out, Line{Gap: 8})
	}

	out = append(out, heading("Reported symptoms"))
	for _, s := range a.Symptoms {
		out = append(out, body("- "+symptomLine(s)))
	}
	if c := a.Context; c != nil {
		out = append(out, contextLines(c)...)
	}
	out = append(out, Line{Gap: 8})

	out = append(out, heading("Possible conditions"))
	if len(a.PossibleConditions) == 0 {
		out = append(out, body("- No condition cleared the confidence threshold."))
	}
	for _, c := range a.PossibleConditions {
		out = append(out, body(fmt.Sprintf("- %s: %d%% (%s)", c.Name, c.Confidence, c.Urgency)))
		for _, r := range c.Reasoning {
			out = append(out, body("    "+r))
		}
	}
	if len(a.UnexplainedSymptoms) > 0 {
		out = append(out, body("Not explained: "+strings.Join(a.UnexplainedSymptoms, ", ")))
	}

	if len(a.FollowUpQuestions) > 0 {
		out = append(out, Line{Gap: 8}, heading("Open questions"))
		for _, q := range a.FollowUpQuestions {
			out = append(out, body("- "+q.Question))
		}
	}

	return append(out, footer())
}

func symptomLine(s clinical.TemporalSymptom) string {
	line := fmt.Sprintf("%s, severity %d/5", s.Name, s.Severity)
	if s.Duration.Value > 0 {
		line += fmt.Sprintf(", %g %s", s.Duration.Value, s.Duration.Unit)
	}
	for _, extra := range []string{string(s.Onset), string(s.Progression), s.Location} {
		if extra != "" {
			line += ", " + extra
		}
	}
	return line
}

func contextLines(c *clinical.PatientContext) []Line {
	var out []Line
	if c.Age != nil {
		out = append(out, body(fmt.Sprintf("Age: %d", *c.Age)))
	}
	if c.Gender != "" {
		out = append(out, body(fmt.Sprintf("Gender: %s", c.Gender)))
	}
	if len(c.MedicalHistory) > 0 {
		out = append(out, body("History: "+strings.Join(c.MedicalHistory, ", ")))
	}
	if len(c.Medications) > 0 {
		out = append(out, body("Medications: "+strings.Join(c.Medications, ", ")))
	}
	if v := c.Vitals; v != nil {
		out = append(out, body(fmt.Sprintf("Vitals: HR %d, BP %d/%d, T %.1f C, RR %d, SpO2 %d%%",
			v.HeartRate, v.SystolicBP, v.DiastolicBP, v.TemperatureC, v.RespiratoryRate, v.OxygenSaturation)))
	}
	return out
}

func footer() Line {
	return Line{Text: assessment.Disclaimer, Size: sizeFooter}
}
