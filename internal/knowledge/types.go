package knowledge

// SymptomKey is the canonical identifier of a symptom concept.
type SymptomKey string

// ConditionID identifies a condition definition in the catalog.
type ConditionID string

// Urgency is the per-condition urgency tier.
type Urgency string

const (
	UrgencyRoutine   Urgency = "routine"
	UrgencySoon      Urgency = "soon"
	UrgencyUrgent    Urgency = "urgent"
	UrgencyEmergency Urgency = "emergency"
)

var urgencyRank = map[Urgency]int{
	UrgencyRoutine:   0,
	UrgencySoon:      1,
	UrgencyUrgent:    2,
	UrgencyEmergency: 3,
}

// Rank orders tiers from routine (0) to emergency (3). Unknown tiers rank -1.
func (u Urgency) Rank() int {
	r, ok := urgencyRank[u]
	if !ok {
		return -1
	}
	return r
}

// IsValid reports whether u is one of the four tiers.
func (u Urgency) IsValid() bool {
	_, ok := urgencyRank[u]
	return ok
}

// Escalate returns the next tier up; emergency stays emergency.
func (u Urgency) Escalate() Urgency {
	switch u {
	case UrgencyRoutine:
		return UrgencySoon
	case UrgencySoon:
		return UrgencyUrgent
	default:
		return UrgencyEmergency
	}
}

// Gender as used by risk modifiers. The empty value matches any gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// Symptom describes one canonical symptom concept.
type Symptom struct {
	Key      SymptomKey
	Name     string
	Question string
	Synonyms []string
}

// SignatureSymptom is one (symptom, weight) pair of a condition signature.
type SignatureSymptom struct {
	Symptom SymptomKey
	Weight  float64
}

// RiskModifier adjusts a condition's score when the patient context matches
// every criterion it sets. Unset criteria are ignored; a modifier with no
// criteria never matches.
type RiskModifier struct {
	Description     string
	MinAge          int
	MaxAge          int
	Gender          Gender
	HistoryTerms    []string
	MedicationTerms []string
	Adjustment      float64
}

// HasCriteria reports whether the modifier constrains anything at all.
func (m RiskModifier) HasCriteria() bool {
	return m.MinAge > 0 || m.MaxAge > 0 || m.Gender != "" ||
		len(m.HistoryTerms) > 0 || len(m.MedicationTerms) > 0
}

// ConditionRedFlag marks a danger indicator specific to one condition.
type ConditionRedFlag struct {
	Symptom     SymptomKey
	MinSeverity int
	Description string
}

// DurationWindow is the typical course of a condition in hours. Zero bounds
// are open.
type DurationWindow struct {
	MinHours float64
	MaxHours float64
}

// IsZero reports whether no window is set.
func (w DurationWindow) IsZero() bool {
	return w.MinHours == 0 && w.MaxHours == 0
}

// Contains reports whether hours falls inside the window.
func (w DurationWindow) Contains(hours float64) bool {
	if w.MinHours > 0 && hours < w.MinHours {
		return false
	}
	if w.MaxHours > 0 && hours > w.MaxHours {
		return false
	}
	return true
}

// Condition is one entry of the condition catalog.
type Condition struct {
	ID              ConditionID
	Name            string
	Description     string
	Signature       []SignatureSymptom
	Acute           bool
	TypicalDuration DurationWindow
	RiskModifiers   []RiskModifier
	RedFlags        []ConditionRedFlag
	BaselineUrgency Urgency
	SelfCare        []string
}

// Weight returns the signature weight of key, or 0 if key is not part of
// the signature.
func (c *Condition) Weight(key SymptomKey) float64 {
	for _, s := range c.Signature {
		if s.Symptom == key {
			return s.Weight
		}
	}
	return 0
}

// TotalWeight sums all signature weights.
func (c *Condition) TotalWeight() float64 {
	var total float64
	for _, s := range c.Signature {
		total += s.Weight
	}
	return total
}

// MaxWeight is the highest signature weight.
func (c *Condition) MaxWeight() float64 {
	var maxW float64
	for _, s := range c.Signature {
		if s.Weight > maxW {
			maxW = s.Weight
		}
	}
	return maxW
}

// PrimarySymptoms returns the signature symptoms carrying the highest weight.
func (c *Condition) PrimarySymptoms() []SymptomKey {
	maxW := c.MaxWeight()
	var out []SymptomKey
	for _, s := range c.Signature {
		if s.Weight == maxW {
			out = append(out, s.Symptom)
		}
	}
	return out
}
