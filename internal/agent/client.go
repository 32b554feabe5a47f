package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"telehealth-assistant/internal/clinical"
)

const deepSeekBaseURL = "https://api.deepseek.com/v1"

var (
	// ErrNoProvider is returned when no AI provider is configured.
	ErrNoProvider = errors.New("agent: no provider configured")
	// ErrInvalidResponse marks a completion that could not be used.
	ErrInvalidResponse = errors.New("agent: invalid model response")
)

// Provider produces an assessment from a language model.
type Provider interface {
	Name() string
	Assess(ctx context.Context, symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) (*clinical.Assessment, error)
}

type client struct {
	name  string
	api   *openai.Client
	model string
	now   func() time.Time
}

// NewDeepSeekClient talks to DeepSeek through its OpenAI-compatible API.
func NewDeepSeekClient(apiKey, model string) Provider {
	return NewCompatibleClient("deepseek", apiKey, model, deepSeekBaseURL)
}

func NewOpenAIClient(apiKey, model string) Provider {
	return NewCompatibleClient("openai", apiKey, model, "")
}

// NewCompatibleClient builds a provider for any OpenAI-compatible endpoint.
// An empty baseURL keeps the library default.
func NewCompatibleClient(name, apiKey, model, baseURL string) Provider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &client{
		name:  name,
		api:   openai.NewClientWithConfig(cfg),
		model: model,
		now:   time.Now,
	}
}

func (c *client) Name() string { return c.name }

func (c *client) Assess(ctx context.Context, symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) (*clinical.Assessment, error) {
	userMsg, err := userPrompt(symptoms, patient)
	if err != nil {
		return nil, err
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMsg},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("%s completion: %w", c.name, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%s: %w: no choices", c.name, ErrInvalidResponse)
	}

	a, err := parseAssessment(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", c.name, err)
	}
	a.Symptoms = append([]clinical.TemporalSymptom{}, symptoms...)
	a.Context = patient
	a.Timestamp = c.now().UTC()
	return a, nil
}

func userPrompt(symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) (string, error) {
	payload := struct {
		Symptoms []clinical.TemporalSymptom `json:"symptoms"`
		Context  *clinical.PatientContext   `json:"context,omitempty"`
	}{symptoms, patient}
	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode prompt: %w", err)
	}
	return string(b), nil
}

// Chain tries providers in order and returns the first usable answer.
type Chain struct {
	providers []Provider
	timeout   time.Duration
}

func NewChain(timeout time.Duration, providers ...Provider) *Chain {
	return &Chain{providers: providers, timeout: timeout}
}

func (c *Chain) Len() int {
	if c == nil {
		return 0
	}
	return len(c.providers)
}

// Assess returns the assessment and the name of the provider that produced
// it. When every provider fails the errors are joined.
func (c *Chain) Assess(ctx context.Context, symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) (*clinical.Assessment, string, error) {
	if c.Len() == 0 {
		return nil, "", ErrNoProvider
	}
	var errs []error
	for _, p := range c.providers {
		a, err := c.try(ctx, p, symptoms, patient)
		if err == nil {
			return a, p.Name(), nil
		}
		errs = append(errs, err)
		if ctx.Err() != nil {
			break
		}
	}
	return nil, "", errors.Join(errs...)
}

func (c *Chain) try(ctx context.Context, p Provider, symptoms []clinical.TemporalSymptom, patient *clinical.PatientContext) (*clinical.Assessment, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	return p.Assess(ctx, symptoms, patient)
}

// stripFences removes a markdown code fence around a JSON body.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
