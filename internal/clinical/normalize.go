package clinical

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"telehealth-assistant/internal/knowledge"
)

// UnknownPrefix marks the literal fallback key of an unrecognised symptom.
const UnknownPrefix = "unknown:"

const maxDurationValue = 1e6

var unitHours = map[DurationUnit]float64{
	UnitHours:  1,
	UnitDays:   24,
	UnitWeeks:  24 * 7,
	UnitMonths: 24 * 30,
}

var unitSynonyms = map[string]DurationUnit{
	"h": UnitHours, "hr": UnitHours, "hrs": UnitHours, "hour": UnitHours, "hours": UnitHours, "horas": UnitHours, "heures": UnitHours,
	"d": UnitDays, "day": UnitDays, "days": UnitDays, "dias": UnitDays, "jours": UnitDays, "din": UnitDays,
	"w": UnitWeeks, "wk": UnitWeeks, "wks": UnitWeeks, "week": UnitWeeks, "weeks": UnitWeeks, "semanas": UnitWeeks, "semaines": UnitWeeks,
	"m": UnitMonths, "mo": UnitMonths, "mos": UnitMonths, "month": UnitMonths, "months": UnitMonths, "meses": UnitMonths, "mois": UnitMonths,
}

var progressionSynonyms = map[string]Progression{
	"improving": ProgressionImproving, "better": ProgressionImproving, "getting better": ProgressionImproving,
	"resolving": ProgressionImproving, "easing": ProgressionImproving,
	"worsening": ProgressionWorsening, "worse": ProgressionWorsening, "getting worse": ProgressionWorsening,
	"deteriorating": ProgressionWorsening, "progressing": ProgressionWorsening,
	"stable": ProgressionStable, "same": ProgressionStable, "unchanged": ProgressionStable,
}

var onsetSynonyms = map[string]Onset{
	"sudden": OnsetSudden, "suddenly": OnsetSudden, "abrupt": OnsetSudden, "acute": OnsetSudden, "rapid": OnsetSudden,
	"gradual": OnsetGradual, "gradually": OnsetGradual, "slow": OnsetGradual, "insidious": OnsetGradual,
}

var frequencySynonyms = map[string]Frequency{
	"constant": FrequencyConstant, "continuous": FrequencyConstant, "persistent": FrequencyConstant, "always": FrequencyConstant,
	"intermittent": FrequencyIntermittent, "comes and goes": FrequencyIntermittent, "on and off": FrequencyIntermittent,
	"occasional": FrequencyOccasional, "sometimes": FrequencyOccasional, "rare": FrequencyOccasional, "rarely": FrequencyOccasional,
}

type phrase struct {
	text string
	key  knowledge.SymptomKey
}

// Normalizer maps free-form symptom reports onto canonical keys. It is built
// once from a knowledge base and is read-only afterwards.
type Normalizer struct {
	kb      *knowledge.Base
	exact   map[string]knowledge.SymptomKey
	phrases []phrase
}

// NewNormalizer indexes the vocabulary of kb.
func NewNormalizer(kb *knowledge.Base) *Normalizer {
	n := &Normalizer{
		kb:    kb,
		exact: make(map[string]knowledge.SymptomKey),
	}
	for _, s := range kb.Symptoms() {
		terms := append([]string{string(s.Key), s.Name}, s.Synonyms...)
		for _, term := range terms {
			folded := fold(term)
			if folded == "" {
				continue
			}
			if _, taken := n.exact[folded]; taken {
				continue
			}
			n.exact[folded] = s.Key
			n.phrases = append(n.phrases, phrase{text: folded, key: s.Key})
		}
	}
	sort.Slice(n.phrases, func(i, j int) bool {
		a, b := n.phrases[i], n.phrases[j]
		if len(a.text) != len(b.text) {
			return len(a.text) > len(b.text)
		}
		return a.text < b.text
	})
	return n
}

// Normalize canonicalises raw symptoms. It never fails: invalid fields fall
// back to neutral defaults, unknown names keep a literal fallback key, and
// duplicates collapse onto the most severe report while keeping every
// reported text.
func (n *Normalizer) Normalize(raw []TemporalSymptom) []NormalizedSymptom {
	out := make([]NormalizedSymptom, 0, len(raw))
	index := make(map[knowledge.SymptomKey]int, len(raw))

	for i, r := range raw {
		ns := n.normalizeOne(i, r)
		if pos, dup := index[ns.Key]; dup {
			texts := append(out[pos].ReportedTexts, ns.ReportedTexts...)
			if ns.Severity > out[pos].Severity {
				out[pos] = ns
			}
			out[pos].ReportedTexts = texts
			continue
		}
		index[ns.Key] = len(out)
		out = append(out, ns)
	}
	return out
}

func (n *Normalizer) normalizeOne(i int, r TemporalSymptom) NormalizedSymptom {
	id := strings.TrimSpace(r.ID)
	if id == "" {
		id = fmt.Sprintf("symptom-%d", i+1)
	}
	reported := strings.TrimSpace(r.Name)
	location := strings.TrimSpace(r.Location)

	key, known := n.Resolve(reported, location)
	name := n.kb.SymptomName(key)
	if !known {
		name = reported
		if name == "" {
			name = "unspecified symptom"
		}
	}

	texts := []string{}
	if reported != "" {
		texts = append(texts, reported)
	}

	dur := normalizeDuration(r.Duration)
	return NormalizedSymptom{
		ID:            id,
		Key:           key,
		Name:          name,
		Reported:      reported,
		ReportedTexts: texts,
		Known:         known,
		Severity:      ClampSeverity(r.Severity),
		Duration:      dur,
		DurationHours: dur.Value * unitHours[dur.Unit],
		Progression:   normalizeProgression(r.Progression),
		Onset:         normalizeOnset(r.Onset),
		Frequency:     normalizeFrequency(r.Frequency),
		Location:      location,
	}
}

// Resolve maps a symptom name, optionally qualified by a body location, to a
// canonical key. The second result is false when only the literal fallback
// key could be produced.
func (n *Normalizer) Resolve(name, location string) (knowledge.SymptomKey, bool) {
	text := fold(name)
	if key, ok := n.lookup(text); ok {
		return key, true
	}
	if loc := fold(location); loc != "" && text != "" {
		if key, ok := n.lookup(loc + " " + text); ok {
			return key, true
		}
	}
	if text == "" {
		return knowledge.SymptomKey(UnknownPrefix + "unspecified"), false
	}
	return knowledge.SymptomKey(UnknownPrefix + strings.ReplaceAll(text, " ", "_")), false
}

func (n *Normalizer) lookup(text string) (knowledge.SymptomKey, bool) {
	if text == "" {
		return "", false
	}
	if key, ok := n.exact[text]; ok {
		return key, true
	}
	padded := " " + text + " "
	for _, p := range n.phrases {
		if strings.Contains(padded, " "+p.text+" ") {
			return p.key, true
		}
	}
	return "", false
}

// ClampSeverity forces a severity into [1,5].
func ClampSeverity(s int) int {
	if s < 1 {
		return 1
	}
	if s > knowledge.MaxSeverity {
		return knowledge.MaxSeverity
	}
	return s
}

func normalizeDuration(d Duration) Duration {
	unit := DurationUnit(fold(string(d.Unit)))
	if _, ok := unitHours[unit]; !ok {
		if syn, ok := unitSynonyms[string(unit)]; ok {
			unit = syn
		} else {
			unit = UnitDays
		}
	}
	v := d.Value
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		v = 1
	}
	if v > maxDurationValue {
		v = maxDurationValue
	}
	return Duration{Value: v, Unit: unit}
}

func normalizeProgression(p Progression) Progression {
	if v, ok := progressionSynonyms[fold(string(p))]; ok {
		return v
	}
	return ProgressionStable
}

func normalizeOnset(o Onset) Onset {
	if v, ok := onsetSynonyms[fold(string(o))]; ok {
		return v
	}
	return OnsetGradual
}

func normalizeFrequency(f Frequency) Frequency {
	if v, ok := frequencySynonyms[fold(string(f))]; ok {
		return v
	}
	return FrequencyConstant
}

// fold lower-cases s, strips diacritics, turns punctuation and underscores
// into spaces and collapses whitespace. The transformer is created per call
// because transform chains carry state.
func fold(s string) string {
	if s == "" {
		return ""
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, strings.ToLower(s))
	if err != nil {
		stripped = strings.ToLower(s)
	}
	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range stripped {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
