package clinical

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"telehealth-assistant/internal/knowledge"
)

const maxDifferentialFactors = 3

// Ranker turns raw scores into an ordered, explained differential.
type Ranker struct {
	kb  *knowledge.Base
	cfg Config
}

func NewRanker(kb *knowledge.Base, cfg Config) *Ranker {
	return &Ranker{kb: kb, cfg: cfg}
}

type ranked struct {
	cond  *knowledge.Condition
	score Score
	out   ClinicalCondition
}

// Rank orders scored conditions by confidence, then by number of matching
// symptoms, then by baseline urgency so that on exact ties the more
// dangerous condition comes first. Condition id breaks any remaining tie.
func (r *Ranker) Rank(scores map[knowledge.ConditionID]Score, symptoms []NormalizedSymptom) []ClinicalCondition {
	if len(scores) == 0 {
		return []ClinicalCondition{}
	}

	present := make(map[knowledge.SymptomKey]NormalizedSymptom, len(symptoms))
	for _, ns := range symptoms {
		present[ns.Key] = ns
	}

	items := make([]ranked, 0, len(scores))
	for id, sc := range scores {
		c, ok := r.kb.Condition(id)
		if !ok {
			continue
		}
		items = append(items, ranked{cond: c, score: sc, out: r.describe(c, sc, present, symptoms)})
	}

	sort.Slice(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.out.Confidence != b.out.Confidence {
			return a.out.Confidence > b.out.Confidence
		}
		if len(a.out.MatchingSymptoms) != len(b.out.MatchingSymptoms) {
			return len(a.out.MatchingSymptoms) > len(b.out.MatchingSymptoms)
		}
		if ua, ub := a.cond.BaselineUrgency.Rank(), b.cond.BaselineUrgency.Rank(); ua != ub {
			return ua > ub
		}
		return a.cond.ID < b.cond.ID
	})

	if len(items) > r.cfg.MaxConditions {
		items = items[:r.cfg.MaxConditions]
	}

	out := make([]ClinicalCondition, len(items))
	for i := range items {
		var rival *knowledge.Condition
		switch {
		case i == 0 && len(items) > 1:
			rival = items[1].cond
		case i > 0:
			rival = items[0].cond
		}
		items[i].out.DifferentialFactors = r.differential(items[i].cond, rival, present)
		out[i] = items[i].out
	}
	return out
}

// Confidence converts a raw score into the 0-100 scale.
func Confidence(raw float64) int {
	return int(math.Round(clamp(raw, 0, 1) * 100))
}

func (r *Ranker) describe(c *knowledge.Condition, sc Score, present map[knowledge.SymptomKey]NormalizedSymptom, symptoms []NormalizedSymptom) ClinicalCondition {
	matching, missing := splitSignature(c, present)
	cc := ClinicalCondition{
		ID:                  c.ID,
		Name:                c.Name,
		Description:         c.Description,
		Confidence:          Confidence(sc.Raw),
		MatchingSymptoms:    matching,
		MissingSymptoms:     missing,
		DifferentialFactors: []string{},
		RedFlags:            []string{},
		Urgency:             c.BaselineUrgency,
	}

	for _, rf := range c.RedFlags {
		ns, ok := present[rf.Symptom]
		if ok && ns.Known && ns.Severity >= max(rf.MinSeverity, 1) {
			cc.RedFlags = append(cc.RedFlags, rf.Description)
		}
	}
	if len(cc.RedFlags) > 0 {
		cc.Urgency = c.BaselineUrgency.Escalate()
	}

	cc.Reasoning = r.reasoning(c, sc, matching, symptoms)
	return cc
}

func (r *Ranker) reasoning(c *knowledge.Condition, sc Score, matching []knowledge.SymptomKey, symptoms []NormalizedSymptom) []string {
	reasons := []string{
		fmt.Sprintf("Matches %d of %d expected symptoms (%s), covering %.0f%% of the weighted pattern",
			len(matching), len(c.Signature), r.names(matching), sc.Coverage*100),
	}

	switch {
	case sc.SeverityFactor > 1.0001:
		reasons = append(reasons, fmt.Sprintf("Reported severity raises the score (factor %.2f)", sc.SeverityFactor))
	case sc.SeverityFactor < 0.9999:
		reasons = append(reasons, fmt.Sprintf("Mild severity lowers the score (factor %.2f)", sc.SeverityFactor))
	}

	if pts := points(sc.TemporalAdjustment); pts != 0 {
		if pts > 0 {
			reasons = append(reasons, fmt.Sprintf("Sudden or worsening course fits this acute condition (%+d points)", pts))
		} else {
			reasons = append(reasons, fmt.Sprintf("Gradual or improving course is less typical of this acute condition (%+d points)", pts))
		}
	}
	if pts := points(sc.DurationFit); pts != 0 {
		if pts > 0 {
			reasons = append(reasons, fmt.Sprintf("Symptom duration fits the usual course (%+d points)", pts))
		} else {
			reasons = append(reasons, fmt.Sprintf("Symptom duration is outside the usual course (%+d points)", pts))
		}
	}

	for _, m := range sc.AppliedModifiers {
		reasons = append(reasons, fmt.Sprintf("Risk factor: %s (%+d points)", m.Description, points(m.Adjustment)))
	}
	if len(sc.AppliedModifiers) > 1 && points(sc.RiskAdjustment) != sumPoints(sc.AppliedModifiers) {
		reasons = append(reasons, fmt.Sprintf("Combined risk factors limited to %+d points", points(sc.RiskAdjustment)))
	}

	if sc.Capped {
		reasons = append(reasons, fmt.Sprintf("Confidence limited to %d because the key symptom (%s) was not reported",
			Confidence(r.cfg.MissingPrimaryCeiling), r.names(c.PrimarySymptoms())))
	}

	var unexplained []string
	for _, ns := range symptoms {
		if c.Weight(ns.Key) == 0 {
			unexplained = append(unexplained, ns.Name)
		}
	}
	if len(unexplained) > 0 {
		reasons = append(reasons, "Does not explain: "+strings.Join(unexplained, ", "))
	}
	return reasons
}

// differential names the heaviest signature symptoms that separate c from
// rival in both directions, up to three each way, noting whether each was
// reported.
func (r *Ranker) differential(c, rival *knowledge.Condition, present map[knowledge.SymptomKey]NormalizedSymptom) []string {
	if rival == nil {
		return []string{}
	}
	out := make([]string, 0, 2*maxDifferentialFactors)
	out = r.appendDistinct(out, c, rival, present)
	out = r.appendDistinct(out, rival, c, present)
	if len(out) == 0 {
		out = append(out, fmt.Sprintf("Every expected symptom of %s is also expected with %s; relative weights decide", c.Name, rival.Name))
	}
	return out
}

// appendDistinct adds the signature symptoms of from that other lacks,
// heaviest first.
func (r *Ranker) appendDistinct(out []string, from, other *knowledge.Condition, present map[knowledge.SymptomKey]NormalizedSymptom) []string {
	var distinct []knowledge.SignatureSymptom
	for _, sig := range from.Signature {
		if other.Weight(sig.Symptom) == 0 {
			distinct = append(distinct, sig)
		}
	}
	sortSignature(distinct)
	if len(distinct) > maxDifferentialFactors {
		distinct = distinct[:maxDifferentialFactors]
	}
	for _, sig := range distinct {
		status := "not reported"
		if _, ok := present[sig.Symptom]; ok {
			status = "reported"
		}
		out = append(out, fmt.Sprintf("%s (%s) is typical of %s but not of %s",
			r.kb.SymptomName(sig.Symptom), status, from.Name, other.Name))
	}
	return out
}

func (r *Ranker) names(keys []knowledge.SymptomKey) string {
	if len(keys) == 0 {
		return "none"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = r.kb.SymptomName(k)
	}
	return strings.Join(names, ", ")
}

// splitSignature partitions a signature into reported and unreported keys,
// each ordered by weight then key.
func splitSignature(c *knowledge.Condition, present map[knowledge.SymptomKey]NormalizedSymptom) (matching, missing []knowledge.SymptomKey) {
	sig := append([]knowledge.SignatureSymptom(nil), c.Signature...)
	sortSignature(sig)
	matching = []knowledge.SymptomKey{}
	missing = []knowledge.SymptomKey{}
	for _, s := range sig {
		if ns, ok := present[s.Symptom]; ok && ns.Known {
			matching = append(matching, s.Symptom)
		} else {
			missing = append(missing, s.Symptom)
		}
	}
	return matching, missing
}

func sortSignature(sig []knowledge.SignatureSymptom) {
	sort.SliceStable(sig, func(i, j int) bool {
		if sig[i].Weight != sig[j].Weight {
			return sig[i].Weight > sig[j].Weight
		}
		return sig[i].Symptom < sig[j].Symptom
	})
}

func points(v float64) int {
	return int(math.Round(v * 100))
}

func sumPoints(mods []knowledge.RiskModifier) int {
	var total int
	for _, m := range mods {
		total += points(m.Adjustment)
	}
	return total
}
