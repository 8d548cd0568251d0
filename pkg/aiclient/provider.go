// Package aiclient talks to the external generative-language providers that
// produce weekly fitness and diet plans. One configured client is built at
// startup and shared across requests; every call carries a bounded timeout
// and is never retried.
package aiclient

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Sampling temperature for plan generation. Chat configs use a higher one,
// set where the config is assembled.
const (
	planTemperature = 0.5
	callTimeout     = 60 * time.Second
)

// PlanProvider generates machine-parseable JSON text from a prompt.
type PlanProvider interface {
	// GenerateJSON sends the prompt and returns the raw text of the first
	// candidate's first content part.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// ModelName reports the configured model, echoed in chat configs.
	ModelName() string
	Close() error
}

type Config struct {
	Provider string // "gemini" or "openai"
	APIKey   string
	Model    string
}

func New(cfg Config) (PlanProvider, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		return NewGeminiClient(cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s. Use 'gemini' or 'openai'", cfg.Provider)
	}
}
