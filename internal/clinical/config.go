package clinical

import (
	"errors"
	"fmt"
)

// Config holds the tunable scoring and classification constants. They are
// clinical tuning parameters and should change only after clinical review.
type Config struct {
	// MinScore excludes conditions whose raw score falls below it.
	MinScore float64
	// MaxConditions bounds the ranked differential.
	MaxConditions int
	// MaxQuestions bounds the follow-up questions.
	MaxQuestions int

	SeverityFactorMin float64
	SeverityFactorMax float64
	// TemporalBound caps the progression/onset/duration adjustment.
	TemporalBound float64
	// DurationShare is the part of TemporalBound given to duration fit.
	DurationShare float64
	// RiskBound caps the summed demographic risk adjustment.
	RiskBound float64
	// MissingPrimaryCeiling caps conditions whose primary symptom is absent.
	MissingPrimaryCeiling float64

	// Overall urgency thresholds on the 0-100 confidence scale. A
	// condition qualifies when its confidence is at or above the threshold.
	EmergencyConfidence     int
	UrgentConfidence        int
	ScheduleVisitConfidence int
}

// DefaultConfig returns the reviewed default constants.
func DefaultConfig() Config {
	return Config{
		MinScore:                0.15,
		MaxConditions:           5,
		MaxQuestions:            4,
		SeverityFactorMin:       0.7,
		SeverityFactorMax:       1.3,
		TemporalBound:           0.15,
		DurationShare:           0.05,
		RiskBound:               0.20,
		MissingPrimaryCeiling:   0.45,
		EmergencyConfidence:     60,
		UrgentConfidence:        45,
		ScheduleVisitConfidence: 30,
	}
}

// Validate rejects inconsistent constants.
func (c Config) Validate() error {
	var errs []error
	if c.MinScore <= 0 || c.MinScore >= 1 {
		errs = append(errs, fmt.Errorf("min score %v must be in (0,1)", c.MinScore))
	}
	if c.MaxConditions < 1 {
		errs = append(errs, errors.New("max conditions must be at least 1"))
	}
	if c.MaxQuestions < 0 {
		errs = append(errs, errors.New("max questions must not be negative"))
	}
	if c.SeverityFactorMin <= 0 || c.SeverityFactorMin > c.SeverityFactorMax {
		errs = append(errs, fmt.Errorf("severity factor bounds [%v,%v] invalid", c.SeverityFactorMin, c.SeverityFactorMax))
	}
	if c.TemporalBound < 0 || c.DurationShare < 0 || c.DurationShare > c.TemporalBound {
		errs = append(errs, fmt.Errorf("temporal bound %v / duration share %v invalid", c.TemporalBound, c.DurationShare))
	}
	// Temporal penalties must never outweigh the smallest severity-scaled
	// contribution, otherwise adding a matching symptom could lower a score.
	if c.TemporalBound >= c.SeverityFactorMin {
		errs = append(errs, fmt.Errorf("temporal bound %v must stay below severity factor min %v", c.TemporalBound, c.SeverityFactorMin))
	}
	if c.RiskBound < 0 || c.RiskBound >= 1 {
		errs = append(errs, fmt.Errorf("risk bound %v must be in [0,1)", c.RiskBound))
	}
	if c.MissingPrimaryCeiling <= c.MinScore || c.MissingPrimaryCeiling > 1 {
		errs = append(errs, fmt.Errorf("missing-primary ceiling %v must be in (min score,1]", c.MissingPrimaryCeiling))
	}
	if !(c.ScheduleVisitConfidence <= c.UrgentConfidence && c.UrgentConfidence <= c.EmergencyConfidence) {
		errs = append(errs, errors.New("urgency thresholds must satisfy schedule-visit <= urgent <= emergency"))
	}
	if c.EmergencyConfidence > 100 || c.ScheduleVisitConfidence < 0 {
		errs = append(errs, errors.New("urgency thresholds must lie in [0,100]"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("clinical: invalid config: %w", errors.Join(errs...))
	}
	return nil
}
