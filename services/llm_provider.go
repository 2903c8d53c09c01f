package services

import (
	"context"
	"fmt"

	"github.com/ser6eevich/formafit/config"
)

// NewLLMClient picks the provider from configuration. OpenAI is the default;
// Gemini is the fallback for deployments carrying only a Google key.
func NewLLMClient(ctx context.Context) (LLMClient, error) {
	switch config.App.LLMProvider {
	case "openai", "":
		if config.App.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is not set")
		}
		return NewOpenAIService(config.App.OpenAIKey), nil
	case "gemini":
		if config.App.GeminiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set")
		}
		return NewGeminiService(ctx, config.App.GeminiKey)
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", config.App.LLMProvider)
	}
}
