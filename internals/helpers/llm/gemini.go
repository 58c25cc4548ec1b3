// file: internals/helpers/llm/gemini.go
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

var (
	ErrEmptyResponse = errors.New("llm: empty response from model")
	ErrNotConfigured = errors.New("llm: missing Gemini API key")
)

// contentGenerator is the slice of genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiClient is a thin wrapper around the official genai client. One call,
// no retries; deadlines come from ctx.
type GeminiClient struct {
	models      contentGenerator
	model       string
	temperature float32
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNotConfigured
	}
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("llm: new genai client: %w", err)
	}
	return &GeminiClient{models: cli.Models, model: model}, nil
}

// Generate sends systemInstruction as the system turn and userPrompt as the
// single user turn, at temperature 0.
func (g *GeminiClient) Generate(ctx context.Context, systemInstruction, userPrompt string) (string, error) {
	temp := g.temperature
	resp, err := g.models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: userPrompt}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}},
			Temperature:       &temp,
		},
	)
	if err != nil {
		return "", err
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	if b.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return b.String(), nil
}

// Unconfigured stands in when no API key is set; every call fails with
// ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Generate(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}
