package llm

import (
	"context"
	"errors"
)

// ErrNoAPIKey is returned by providers when a request carries no key.
var ErrNoAPIKey = errors.New("llm: request has no API key")

// Request is everything a generation call needs. The key travels with the
// request because it is resolved fresh for every call.
type Request struct {
	Model             string
	SystemInstruction string
	UserContent       string
	Temperature       float32
	APIKey            string
}

// Response keeps only the text payload. Text is nil when the API answered
// without any candidate content.
type Response struct {
	Text *string
}

// TextOrEmpty returns the payload or "" when absent.
func (r *Response) TextOrEmpty() string {
	if r == nil || r.Text == nil {
		return ""
	}
	return *r.Text
}

// Provider is the interface for all LLM providers.
type Provider interface {
	GenerateContent(ctx context.Context, req Request) (*Response, error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, req Request) (*Response, error)

func (f ProviderFunc) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	return f(ctx, req)
}
