package clinical

import (
	"fmt"
	"strings"

	"telehealth-assistant/internal/knowledge"
)

const (
	actionCallEmergency = "Call your local emergency number now or go to the nearest emergency department. Do not drive yourself."
	actionSeeUrgently   = "Get medical care today: urgent care, an out-of-hours service or the emergency department if it gets worse."
	actionBookVisit     = "Book an appointment with a clinician within the next day or two."
)

// Raw phrases that escalate even when the symptom itself is not in the
// vocabulary.
var emergencyPhrases = []string{
	"not breathing", "stopped breathing", "unconscious", "unresponsive", "wont wake", "won t wake",
	"suicid", "overdose", "severe bleeding", "bleeding heavily", "choking",
}

var anticoagulants = []string{
	"warfarin", "apixaban", "rivaroxaban", "dabigatran", "edoxaban", "heparin", "enoxaparin", "clopidogrel", "blood thinner",
}

// flagInput is the per-call view the rules evaluate.
type flagInput struct {
	symptoms map[knowledge.SymptomKey]NormalizedSymptom
	reported []string
	patient  *PatientContext
}

func (in *flagInput) has(key knowledge.SymptomKey) (NormalizedSymptom, bool) {
	ns, ok := in.symptoms[key]
	return ns, ok
}

func (in *flagInput) atLeast(key knowledge.SymptomKey, severity int) (NormalizedSymptom, bool) {
	ns, ok := in.symptoms[key]
	if !ok || ns.Severity < severity {
		return NormalizedSymptom{}, false
	}
	return ns, true
}

func (in *flagInput) mentions(fragment string) (string, bool) {
	for _, r := range in.reported {
		if strings.Contains(" "+r+" ", fragment) {
			return r, true
		}
	}
	return "", false
}

func (in *flagInput) age() (int, bool) {
	if in.patient == nil || in.patient.Age == nil || *in.patient.Age < 0 {
		return 0, false
	}
	return *in.patient.Age, true
}

func (in *flagInput) vitals() *Vitals {
	if in.patient == nil {
		return nil
	}
	return in.patient.Vitals
}

type redFlagRule struct {
	id            string
	title         string
	severity      AlertSeverity
	callEmergency bool
	action        string
	// match returns the trigger descriptions, or nil when the rule does not
	// fire.
	match func(in *flagInput) []string
}

// RedFlagDetector evaluates the fixed safety rule set. It does not depend on
// the scorer and fires on raw input alone.
type RedFlagDetector struct {
	rules []redFlagRule
}

func NewRedFlagDetector() *RedFlagDetector {
	return &RedFlagDetector{rules: defaultRules()}
}

// Detect returns one alert per firing rule in rule declaration order.
func (d *RedFlagDetector) Detect(symptoms []NormalizedSymptom, patient *PatientContext) []RedFlagAlert {
	in := &flagInput{
		symptoms: make(map[knowledge.SymptomKey]NormalizedSymptom, len(symptoms)),
		patient:  patient,
	}
	for _, ns := range symptoms {
		if ns.Known {
			in.symptoms[ns.Key] = ns
		}
		texts := ns.ReportedTexts
		if len(texts) == 0 {
			texts = []string{ns.Reported}
		}
		for _, r := range texts {
			if text := fold(r); text != "" {
				in.reported = append(in.reported, text)
			}
		}
	}

	alerts := []RedFlagAlert{}
	for _, r := range d.rules {
		triggers := r.match(in)
		if len(triggers) == 0 {
			continue
		}
		alerts = append(alerts, RedFlagAlert{
			RuleID:          r.id,
			Title:           r.title,
			Severity:        r.severity,
			TriggerSymptoms: triggers,
			Action:          r.action,
			CallEmergency:   r.callEmergency,
		})
	}
	return alerts
}

func describe(ns NormalizedSymptom) string {
	desc := fmt.Sprintf("%s (severity %d", ns.Name, ns.Severity)
	if ns.Onset == OnsetSudden {
		desc += ", sudden onset"
	}
	if ns.Progression == ProgressionWorsening {
		desc += ", worsening"
	}
	return desc + ")"
}

// anyOf collects every present symptom among keys.
func anyOf(in *flagInput, keys ...knowledge.SymptomKey) []string {
	var out []string
	for _, k := range keys {
		if ns, ok := in.has(k); ok {
			out = append(out, describe(ns))
		}
	}
	return out
}

func bleedingTriggers(in *flagInput) []string {
	out := anyOf(in, knowledge.VomitingBlood, knowledge.BloodInStool, knowledge.BloodInUrine)
	if r, ok := in.mentions("bleed"); ok {
		out = append(out, fmt.Sprintf("reported %q", r))
	}
	return out
}

func defaultRules() []redFlagRule {
	return []redFlagRule{
		{
			id: "cardiac_chest_pain", title: "Possible heart attack", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency,
			match: func(in *flagInput) []string {
				cp, ok := in.has(knowledge.ChestPain)
				if !ok {
					return nil
				}
				if sob, ok := in.has(knowledge.ShortnessOfBreath); ok && (cp.Onset == OnsetSudden || sob.Onset == OnsetSudden) {
					return []string{describe(cp), describe(sob)}
				}
				if cp.Severity >= 4 {
					if assoc := anyOf(in, knowledge.Sweating, knowledge.Nausea, knowledge.ArmJawPain); len(assoc) > 0 {
						return append([]string{describe(cp)}, assoc...)
					}
				}
				return nil
			},
		},
		{
			id: "severe_chest_pain", title: "Severe chest pain", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if cp, ok := in.atLeast(knowledge.ChestPain, 4); ok {
					return []string{describe(cp)}
				}
				return nil
			},
		},
		{
			id: "stroke_signs", title: "Possible stroke (FAST signs)", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency + " Note the time the symptoms started.",
			match: func(in *flagInput) []string {
				return anyOf(in, knowledge.FacialDroop, knowledge.OneSidedWeakness, knowledge.SlurredSpeech)
			},
		},
		{
			id: "thunderclap_headache", title: "Sudden severe headache", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency,
			match: func(in *flagInput) []string {
				if h, ok := in.atLeast(knowledge.Headache, 5); ok && h.Onset == OnsetSudden {
					return []string{describe(h)}
				}
				return nil
			},
		},
		{
			id: "meningism", title: "Fever with stiff neck", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency,
			match: func(in *flagInput) []string {
				f, ok1 := in.has(knowledge.Fever)
				n, ok2 := in.has(knowledge.StiffNeck)
				if ok1 && ok2 {
					return []string{describe(f), describe(n)}
				}
				return nil
			},
		},
		{
			id: "anaphylaxis", title: "Possible severe allergic reaction", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency + " Use an adrenaline auto-injector if one has been prescribed.",
			match: func(in *flagInput) []string {
				if ts, ok := in.has(knowledge.ThroatSwelling); ok {
					return []string{describe(ts)}
				}
				h, ok1 := in.has(knowledge.Hives)
				sob, ok2 := in.has(knowledge.ShortnessOfBreath)
				if ok1 && ok2 {
					return []string{describe(h), describe(sob)}
				}
				return nil
			},
		},
		{
			id: "severe_breathlessness", title: "Severe difficulty breathing", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if sob, ok := in.atLeast(knowledge.ShortnessOfBreath, 4); ok {
					return []string{describe(sob)}
				}
				return nil
			},
		},
		{
			id: "gi_bleeding", title: "Bleeding from the gut", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				return anyOf(in, knowledge.VomitingBlood, knowledge.BloodInStool)
			},
		},
		{
			id: "acute_abdomen", title: "Sudden severe abdominal pain", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if ap, ok := in.atLeast(knowledge.AbdominalPain, 4); ok && ap.Onset == OnsetSudden {
					return []string{describe(ap)}
				}
				return nil
			},
		},
		{
			id: "seizure", title: "Seizure", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency,
			match: func(in *flagInput) []string {
				return anyOf(in, knowledge.Seizure)
			},
		},
		{
			id: "syncope", title: "Fainting or loss of consciousness", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				return anyOf(in, knowledge.Fainting)
			},
		},
		{
			id: "suicidal_thoughts", title: "Thoughts of suicide or self-harm", severity: AlertCritical, callEmergency: true,
			action: "Call your local emergency number or a crisis line now. You do not have to face this alone.",
			match: func(in *flagInput) []string {
				return anyOf(in, knowledge.SuicidalThoughts)
			},
		},
		{
			id: "prolonged_high_fever", title: "High fever lasting three days or more", severity: AlertWarning,
			action: actionBookVisit,
			match: func(in *flagInput) []string {
				if f, ok := in.atLeast(knowledge.Fever, 4); ok && f.DurationHours >= 72 {
					return []string{fmt.Sprintf("%s for %.0f hours", describe(f), f.DurationHours)}
				}
				return nil
			},
		},
		{
			id: "infant_fever", title: "Fever in a baby under one year", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				age, ok := in.age()
				if !ok || age >= 1 {
					return nil
				}
				if f, ok := in.has(knowledge.Fever); ok {
					return []string{describe(f), fmt.Sprintf("age %d", age)}
				}
				return nil
			},
		},
		{
			id: "elderly_confusion", title: "New confusion in an older adult", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				age, ok := in.age()
				if !ok || age < 65 {
					return nil
				}
				if c, ok := in.has(knowledge.Confusion); ok {
					return []string{describe(c), fmt.Sprintf("age %d", age)}
				}
				return nil
			},
		},
		{
			id: "pregnancy_warning", title: "Pain or bleeding in pregnancy", severity: AlertDanger,
			action: actionSeeUrgently + " Contact your maternity unit.",
			match: func(in *flagInput) []string {
				if in.patient == nil || !containsAnyTerm(in.patient.MedicalHistory, []string{"pregnan"}) {
					return nil
				}
				triggers := append(anyOf(in, knowledge.AbdominalPain), bleedingTriggers(in)...)
				if len(triggers) == 0 {
					return nil
				}
				return append(triggers, "pregnancy")
			},
		},
		{
			id: "anticoagulant_bleeding", title: "Bleeding while taking blood thinners", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if in.patient == nil || !containsAnyTerm(in.patient.Medications, anticoagulants) {
					return nil
				}
				triggers := bleedingTriggers(in)
				if len(triggers) == 0 {
					return nil
				}
				return append(triggers, "anticoagulant medication")
			},
		},
		{
			id: "dehydration_risk", title: "Risk of dehydration", severity: AlertWarning,
			action: "Keep sipping oral rehydration solution and book an appointment within the next day or two.",
			match: func(in *flagInput) []string {
				var out []string
				for _, k := range []knowledge.SymptomKey{knowledge.Vomiting, knowledge.Diarrhea} {
					if ns, ok := in.atLeast(k, 4); ok && ns.DurationHours > 48 {
						out = append(out, fmt.Sprintf("%s for %.0f hours", describe(ns), ns.DurationHours))
					}
				}
				return out
			},
		},
		{
			id: "critical_oxygen", title: "Dangerously low oxygen level", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency,
			match: func(in *flagInput) []string {
				if v := in.vitals(); v != nil && v.OxygenSaturation > 0 && v.OxygenSaturation < 90 {
					return []string{fmt.Sprintf("oxygen saturation %d%%", v.OxygenSaturation)}
				}
				return nil
			},
		},
		{
			id: "low_oxygen", title: "Low oxygen level", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if v := in.vitals(); v != nil && v.OxygenSaturation >= 90 && v.OxygenSaturation < 94 {
					return []string{fmt.Sprintf("oxygen saturation %d%%", v.OxygenSaturation)}
				}
				return nil
			},
		},
		{
			id: "hypotension", title: "Very low blood pressure", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency,
			match: func(in *flagInput) []string {
				if v := in.vitals(); v != nil && v.SystolicBP > 0 && v.SystolicBP < 90 {
					return []string{fmt.Sprintf("systolic blood pressure %d mmHg", v.SystolicBP)}
				}
				return nil
			},
		},
		{
			id: "hypertensive_crisis", title: "Very high blood pressure", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if v := in.vitals(); v != nil && v.SystolicBP >= 180 {
					return []string{fmt.Sprintf("systolic blood pressure %d mmHg", v.SystolicBP)}
				}
				return nil
			},
		},
		{
			id: "abnormal_heart_rate", title: "Abnormal heart rate", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if v := in.vitals(); v != nil && v.HeartRate > 0 && (v.HeartRate > 130 || v.HeartRate < 40) {
					return []string{fmt.Sprintf("heart rate %d bpm", v.HeartRate)}
				}
				return nil
			},
		},
		{
			id: "very_high_temperature", title: "Very high temperature", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if v := in.vitals(); v != nil && v.TemperatureC >= 40 {
					return []string{fmt.Sprintf("temperature %.1f°C", v.TemperatureC)}
				}
				return nil
			},
		},
		{
			id: "rapid_breathing", title: "Very fast breathing", severity: AlertDanger,
			action: actionSeeUrgently,
			match: func(in *flagInput) []string {
				if v := in.vitals(); v != nil && v.RespiratoryRate > 30 {
					return []string{fmt.Sprintf("respiratory rate %d per minute", v.RespiratoryRate)}
				}
				return nil
			},
		},
		{
			id: "emergency_phrase", title: "Emergency described in the report", severity: AlertCritical, callEmergency: true,
			action: actionCallEmergency,
			match: func(in *flagInput) []string {
				var out []string
				seen := make(map[string]bool)
				for _, p := range emergencyPhrases {
					if r, ok := in.mentions(p); ok && !seen[r] {
						seen[r] = true
						out = append(out, fmt.Sprintf("reported %q", r))
					}
				}
				return out
			},
		},
	}
}
