// Package generation turns a task and a short user input into one request to
// the generative API and hands back the model's text.
package generation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"smart_performance/pkg/core/llm"
	"smart_performance/pkg/core/prompt"
	"smart_performance/pkg/platform/logger"
)

// Shared by all three tasks.
const (
	Model               = "gemini-3-flash-preview"
	Temperature float32 = 0.7
)

var (
	ErrMissingCredential = errors.New("generation: Gemini API key is missing")
	ErrEmptyInput        = errors.New("generation: input is empty")
	ErrUnknownTask       = errors.New("generation: unknown task")
	ErrNoProvider        = errors.New("generation: no provider available")
)

// CredentialResolver is satisfied by *credential.Resolver.
type CredentialResolver interface {
	Resolve(ctx context.Context) (string, bool)
}

// ProviderSource is satisfied by *agent.Manager.
type ProviderSource interface {
	Resolve(task string) (string, llm.Provider, error)
}

type singleProvider struct{ p llm.Provider }

func (s singleProvider) Resolve(task string) (string, llm.Provider, error) {
	if s.p == nil {
		return "", nil, fmt.Errorf("no provider for task %q", task)
	}
	return "single", s.p, nil
}

// SingleProvider routes every task to p.
func SingleProvider(p llm.Provider) ProviderSource {
	return singleProvider{p: p}
}

// Orchestrator holds no per-call state and is safe for concurrent use.
type Orchestrator struct {
	creds     CredentialResolver
	providers ProviderSource
	log       *logger.Logger
}

func NewOrchestrator(creds CredentialResolver, providers ProviderSource, log *logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop()
	}
	return &Orchestrator{creds: creds, providers: providers, log: log.With("component", "generation")}
}

func (o *Orchestrator) GenerateKPIs(ctx context.Context, practice string) (string, error) {
	return o.Generate(ctx, TaskKPI, practice)
}

func (o *Orchestrator) GenerateImprovementPlan(ctx context.Context, results string) (string, error) {
	return o.Generate(ctx, TaskImprovementPlan, results)
}

func (o *Orchestrator) GeneratePerformanceReport(ctx context.Context, data string) (string, error) {
	return o.Generate(ctx, TaskPerformanceReport, data)
}

// Generate sends exactly one request for task. An empty model answer comes
// back as "" with a nil error; provider errors are returned unchanged.
func (o *Orchestrator) Generate(ctx context.Context, task Task, input string) (string, error) {
	if !task.Valid() {
		return "", ErrUnknownTask
	}
	if strings.TrimSpace(input) == "" {
		return "", ErrEmptyInput
	}

	apiKey, ok := o.creds.Resolve(ctx)
	if !ok {
		o.log.Warn("generation refused", "task", task.String(), "reason", "missing_credential")
		return "", ErrMissingCredential
	}

	system, user, err := prompt.Build(task.PromptID(), input)
	if err != nil {
		return "", err
	}

	providerName, provider, err := o.providers.Resolve(task.String())
	if err != nil {
		o.log.Error("generation refused", "task", task.String(), "reason", "no_provider", "error", err)
		return "", fmt.Errorf("%w: %v", ErrNoProvider, err)
	}
	o.log.Debug("generation request",
		"task", task.String(),
		"provider", providerName,
		"prompt_id", task.PromptID(),
		"model", Model,
	)

	req := llm.Request{
		Model:             Model,
		SystemInstruction: system,
		UserContent:       user,
		Temperature:       Temperature,
		APIKey:            apiKey,
	}

	start := time.Now()
	resp, err := provider.GenerateContent(ctx, req)
	elapsed := time.Since(start)
	if err != nil {
		o.log.Error("generation failed", "task", task.String(), "provider", providerName, "duration", elapsed, "error", err)
		return "", err
	}

	text := resp.TextOrEmpty()
	o.log.Info("generation finished",
		"task", task.String(),
		"provider", providerName,
		"input_len", len([]rune(input)),
		"output_len", len([]rune(text)),
		"empty", text == "",
		"duration", elapsed,
	)
	return text, nil
}
