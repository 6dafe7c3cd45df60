package llm

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// GeminiProvider implements the Provider interface with the official GenAI SDK.
type GeminiProvider struct {
	// BaseURL overrides the API endpoint, used against local fakes.
	BaseURL string
}

// Ensure interface compliance
var _ Provider = (*GeminiProvider)(nil)

// GenerateContent sends one generateContent request. A client is built per
// call because the key may change between calls.
func (p *GeminiProvider) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	if req.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	cc := &genai.ClientConfig{
		APIKey:  req.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if p.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: p.BaseURL}
	}
	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(req.Temperature),
	}
	if req.SystemInstruction != "" {
		config.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{
				{Text: req.SystemInstruction},
			},
		}
	}

	result, err := client.Models.GenerateContent(ctx, req.Model, genai.Text(req.UserContent), config)
	if err != nil {
		return nil, err
	}

	return &Response{Text: candidateText(result)}, nil
}

// candidateText returns nil when the first candidate carries no content at all.
func candidateText(result *genai.GenerateContentResponse) *string {
	if result == nil || len(result.Candidates) == 0 {
		return nil
	}
	cand := result.Candidates[0]
	if cand.Content == nil || len(cand.Content.Parts) == 0 {
		return nil
	}
	text := result.Text()
	return &text
}
