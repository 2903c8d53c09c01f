package services

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-1.5-flash"

// GeminiService is the alternate provider behind LLMClient for deployments
// without OpenAI access.
type GeminiService struct {
	client *genai.Client
}

func NewGeminiService(ctx context.Context, apiKey string) (*GeminiService, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiService{client: client}, nil
}

func (s *GeminiService) Close() error { return s.client.Close() }

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", fmt.Errorf("generated content is not text")
	}
	return string(text), nil
}

func (s *GeminiService) jsonModel() *genai.GenerativeModel {
	m := s.client.GenerativeModel(geminiModel)
	m.ResponseMIMEType = "application/json"
	return m
}

func (s *GeminiService) EstimateMeal(ctx context.Context, text, imageBase64 string) (*MealEstimate, error) {
	parts := []genai.Part{genai.Text(mealEstimatePrompt)}
	if text != "" {
		parts = append(parts, genai.Text("Описание еды: "+text))
	}
	if imageBase64 != "" {
		img, err := base64.StdEncoding.DecodeString(imageBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode meal image: %w", err)
		}
		parts = append(parts, genai.ImageData("jpeg", img))
	}

	resp, err := s.jsonModel().GenerateContent(ctx, parts...)
	if err != nil {
		return nil, fmt.Errorf("failed to generate meal estimate: %w", err)
	}
	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseMealEstimate(raw)
}

func (s *GeminiService) GenerateWorkout(ctx context.Context, prompt string) (*WorkoutPlan, error) {
	resp, err := s.jsonModel().GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate workout plan: %w", err)
	}
	raw, err := responseText(resp)
	if err != nil {
		return nil, err
	}
	return parseWorkoutPlan(raw)
}

func (s *GeminiService) Reply(ctx context.Context, system string, history []ChatTurn, message, imageBase64 string) (string, error) {
	m := s.client.GenerativeModel(geminiModel)
	m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}

	cs := m.StartChat()
	for _, t := range history {
		role := "user"
		if t.Role == "assistant" {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(t.Content)},
		})
	}

	var parts []genai.Part
	if message != "" {
		parts = append(parts, genai.Text(message))
	}
	if imageBase64 != "" {
		if img, err := base64.StdEncoding.DecodeString(imageBase64); err == nil {
			parts = append(parts, genai.ImageData("jpeg", img))
		}
	}

	resp, err := cs.SendMessage(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("failed to generate chat reply: %w", err)
	}
	return responseText(resp)
}
