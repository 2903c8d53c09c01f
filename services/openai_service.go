package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	openAIURL = "https://api.openai.com/v1/chat/completions"

	visionModel = "gpt-4o"      // meal photo estimation
	textModel   = "gpt-4o-mini" // workout plans, coach chat
)

type OpenAIService struct {
	apiKey string
	client *http.Client
}

func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		apiKey: apiKey,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// chat message content is either a plain string or a list of typed parts
// (text / image_url), so it is declared as any and built per call.
type oaMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type oaContentPart struct {
	Type     string      `json:"type"`
	Text     string      `json:"text,omitempty"`
	ImageURL *oaImageURL `json:"image_url,omitempty"`
}

type oaImageURL struct {
	URL    string `json:"url"`
	Detail string `json:"detail,omitempty"`
}

type oaRequest struct {
	Model          string      `json:"model"`
	Messages       []oaMessage `json:"messages"`
	ResponseFormat *oaRespFmt  `json:"response_format,omitempty"`
}

type oaRespFmt struct {
	Type string `json:"type"`
}

type oaResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

func (s *OpenAIService) complete(ctx context.Context, req oaRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal completion payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", openAIURL, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to create completion request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read OpenAI response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai API error %d: %s", resp.StatusCode, string(body))
	}

	var out oaResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("failed to parse OpenAI JSON: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("openai: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices")
	}
	return out.Choices[0].Message.Content, nil
}

func (s *OpenAIService) EstimateMeal(ctx context.Context, text, imageBase64 string) (*MealEstimate, error) {
	parts := []oaContentPart{{Type: "text", Text: mealEstimatePrompt}}
	if text != "" {
		parts = append(parts, oaContentPart{Type: "text", Text: "Описание еды: " + text})
	}
	if imageBase64 != "" {
		parts = append(parts, oaContentPart{
			Type:     "image_url",
			ImageURL: &oaImageURL{URL: "data:image/jpeg;base64," + imageBase64, Detail: "low"},
		})
	}

	raw, err := s.complete(ctx, oaRequest{
		Model:          visionModel,
		Messages:       []oaMessage{{Role: "user", Content: parts}},
		ResponseFormat: &oaRespFmt{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}
	return parseMealEstimate(raw)
}

func (s *OpenAIService) GenerateWorkout(ctx context.Context, prompt string) (*WorkoutPlan, error) {
	raw, err := s.complete(ctx, oaRequest{
		Model:          textModel,
		Messages:       []oaMessage{{Role: "system", Content: prompt}},
		ResponseFormat: &oaRespFmt{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}
	return parseWorkoutPlan(raw)
}

func (s *OpenAIService) Reply(ctx context.Context, system string, history []ChatTurn, message, imageBase64 string) (string, error) {
	msgs := []oaMessage{{Role: "system", Content: system}}
	for _, t := range history {
		msgs = append(msgs, oaMessage{Role: t.Role, Content: t.Content})
	}

	var parts []oaContentPart
	if message != "" {
		parts = append(parts, oaContentPart{Type: "text", Text: message})
	}
	if imageBase64 != "" {
		parts = append(parts, oaContentPart{Type: "image_url", ImageURL: &oaImageURL{URL: imageBase64}})
	}
	msgs = append(msgs, oaMessage{Role: "user", Content: parts})

	reply, err := s.complete(ctx, oaRequest{Model: textModel, Messages: msgs})
	if err != nil {
		return "", err
	}
	if reply == "" {
		reply = "Извини, бро, я немного завис."
	}
	return reply, nil
}
