package llm

import (
	"context"
	"fmt"
	"strings"

	legacy "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// LegacyGeminiProvider talks to Gemini through the older generative-ai-go SDK.
type LegacyGeminiProvider struct {
	Endpoint string
}

var _ Provider = (*LegacyGeminiProvider)(nil)

func (p *LegacyGeminiProvider) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	if req.APIKey == "" {
		return nil, ErrNoAPIKey
	}

	opts := []option.ClientOption{option.WithAPIKey(req.APIKey)}
	if p.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(p.Endpoint))
	}
	client, err := legacy.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(req.Model)
	configureLegacyModel(model, req)

	resp, err := model.GenerateContent(ctx, legacy.Text(req.UserContent))
	if err != nil {
		return nil, err
	}

	return &Response{Text: legacyCandidateText(resp)}, nil
}

// configureLegacyModel applies the per-request generation settings.
func configureLegacyModel(model *legacy.GenerativeModel, req Request) {
	model.SetTemperature(req.Temperature)
	if req.SystemInstruction != "" {
		model.SystemInstruction = legacy.NewUserContent(legacy.Text(req.SystemInstruction))
	}
}

// legacyCandidateText joins the text parts of the first candidate. It returns
// nil when there is no candidate or the candidate has no text part.
func legacyCandidateText(resp *legacy.GenerateContentResponse) *string {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return nil
	}

	var sb strings.Builder
	found := false
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(legacy.Text); ok {
			sb.WriteString(string(txt))
			found = true
		}
	}
	if !found {
		return nil
	}
	text := sb.String()
	return &text
}
