package clinical

import (
	"strings"
	"testing"
)

func TestDefaultConfig_Validates(t *testing.T) {
	t.Parallel()
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestConfig_ValidateRejects(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"min score zero", func(c *Config) { c.MinScore = 0 }, "min score"},
		{"no conditions", func(c *Config) { c.MaxConditions = 0 }, "max conditions"},
		{"negative questions", func(c *Config) { c.MaxQuestions = -1 }, "max questions"},
		{"inverted severity range", func(c *Config) { c.SeverityFactorMin = 1.5 }, "severity factor"},
		{"duration share above bound", func(c *Config) { c.DurationShare = 0.2 }, "duration share"},
		{"temporal bound too large", func(c *Config) { c.TemporalBound = 0.8; c.DurationShare = 0.1 }, "must stay below"},
		{"risk bound", func(c *Config) { c.RiskBound = 1 }, "risk bound"},
		{"ceiling under min score", func(c *Config) { c.MissingPrimaryCeiling = 0.1 }, "ceiling"},
		{"thresholds out of order", func(c *Config) { c.UrgentConfidence = 70 }, "urgency thresholds"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should mention %q", err, tt.want)
			}
		})
	}
}
