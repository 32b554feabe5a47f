package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"telehealth-assistant/internal/clinical"
)

type Config struct {
	Port           string        `mapstructure:"PORT"`
	Env            string        `mapstructure:"ENV"`
	LogLevel       string        `mapstructure:"LOG_LEVEL"`
	DatabaseURL    string        `mapstructure:"DATABASE_URL"`
	DBConnAttempts int           `mapstructure:"DB_CONNECT_ATTEMPTS"`
	MigrationsPath string        `mapstructure:"MIGRATIONS_PATH"`
	DeepSeekAPIKey string        `mapstructure:"DEEPSEEK_API_KEY"`
	DeepSeekModel  string        `mapstructure:"DEEPSEEK_MODEL"`
	OpenAIAPIKey   string        `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel    string        `mapstructure:"OPENAI_MODEL"`
	AITimeout      time.Duration `mapstructure:"AI_TIMEOUT"`
	TelegramToken  string        `mapstructure:"TELEGRAM_BOT_TOKEN"`
	DoctorChatID   int64         `mapstructure:"DOCTOR_CHAT_ID"`
	ReportFontPath string        `mapstructure:"REPORT_FONT_PATH"`

	// Engine overrides; nil keeps the reviewed default.
	EngineMinScore            *float64 `mapstructure:"ENGINE_MIN_SCORE"`
	EngineMaxConditions       *int     `mapstructure:"ENGINE_MAX_CONDITIONS"`
	EngineMaxQuestions        *int     `mapstructure:"ENGINE_MAX_QUESTIONS"`
	EngineEmergencyConfidence *int     `mapstructure:"ENGINE_EMERGENCY_CONFIDENCE"`
	EngineUrgentConfidence    *int     `mapstructure:"ENGINE_URGENT_CONFIDENCE"`
	EngineScheduleConfidence  *int     `mapstructure:"ENGINE_SCHEDULE_CONFIDENCE"`
}

var keys = []string{
	"PORT", "ENV", "LOG_LEVEL", "DATABASE_URL", "DB_CONNECT_ATTEMPTS", "MIGRATIONS_PATH",
	"DEEPSEEK_API_KEY", "DEEPSEEK_MODEL", "OPENAI_API_KEY", "OPENAI_MODEL", "AI_TIMEOUT",
	"TELEGRAM_BOT_TOKEN", "DOCTOR_CHAT_ID", "REPORT_FONT_PATH",
	"ENGINE_MIN_SCORE", "ENGINE_MAX_CONDITIONS", "ENGINE_MAX_QUESTIONS",
	"ENGINE_EMERGENCY_CONFIDENCE", "ENGINE_URGENT_CONFIDENCE", "ENGINE_SCHEDULE_CONFIDENCE",
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_CONNECT_ATTEMPTS", 10)
	v.SetDefault("MIGRATIONS_PATH", "migrations")
	v.SetDefault("DEEPSEEK_MODEL", "deepseek-chat")
	v.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	v.SetDefault("AI_TIMEOUT", "20s")

	// Bind explicitly so Unmarshal sees env-only keys.
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env is optional.
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// HasDatabase reports whether persistence is configured. Without it the
// server still answers assessments but does not store them.
func (c *Config) HasDatabase() bool {
	return c.DatabaseURL != ""
}

// EngineConfig applies the ENGINE_* overrides to the default constants.
func (c *Config) EngineConfig() clinical.Config {
	ec := clinical.DefaultConfig()
	if c.EngineMinScore != nil {
		ec.MinScore = *c.EngineMinScore
	}
	if c.EngineMaxConditions != nil {
		ec.MaxConditions = *c.EngineMaxConditions
	}
	if c.EngineMaxQuestions != nil {
		ec.MaxQuestions = *c.EngineMaxQuestions
	}
	if c.EngineEmergencyConfidence != nil {
		ec.EmergencyConfidence = *c.EngineEmergencyConfidence
	}
	if c.EngineUrgentConfidence != nil {
		ec.UrgentConfidence = *c.EngineUrgentConfidence
	}
	if c.EngineScheduleConfidence != nil {
		ec.ScheduleVisitConfidence = *c.EngineScheduleConfidence
	}
	return ec
}

// Validate checks that the configuration is safe to run.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AITimeout)
	}
	if c.TelegramToken != "" && c.DoctorChatID == 0 {
		return fmt.Errorf("DOCTOR_CHAT_ID is required when TELEGRAM_BOT_TOKEN is set")
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("engine overrides: %w", err)
	}
	return nil
}
