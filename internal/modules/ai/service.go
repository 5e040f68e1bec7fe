package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

const captionModel = "gemini-2.0-flash"

var ErrEmptyResult = errors.New("model returned no text")

// Service is a pass-through to the Gemini text-generation API.
type Service struct {
	client *genai.Client
}

func NewService(ctx context.Context, apiKey string) (*Service, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Service{client: client}, nil
}

func (s *Service) Enhance(ctx context.Context, caption string) (string, error) {
	prompt := fmt.Sprintf(
		`You are a clever and social assistant, Enhance this social media post caption: %q. `+
			`make sure it's not more than 20 words. in your answer dont tell me what you did `+
			`or anything like that. return simply the enhanced caption.`,
		caption,
	)

	resp, err := s.client.Models.GenerateContent(ctx, captionModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResult
	}
	return text, nil
}
