package useai

import (
	"context"
	"log/slog"

	"github.com/nailen1/use-ai/pkg/compat"
	"github.com/nailen1/use-ai/pkg/config"
)

// Client is what a Service needs from the API.
type Client interface {
	ModelLister
	compat.Completer
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	DefaultModel string       // Used when a call names no model; defaults to config.DefaultModelName.
	Log          *slog.Logger // Receives parameter-adaptation events; nil discards.
}

// Service binds the operations to one client and default model.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	client       Client
	exec         compat.Executor
	defaultModel string
}

// NewService creates a Service over c.
func NewService(c Client, opts ServiceOptions) *Service {
	model := opts.DefaultModel
	if model == "" {
		model = config.DefaultModelName
	}

	return &Service{
		client:       c,
		exec:         compat.Executor{Log: opts.Log},
		defaultModel: model,
	}
}

// DefaultModel returns the model used when a call names none.
func (s *Service) DefaultModel() string { return s.defaultModel }

// ListModels returns the sorted model ids.
func (s *Service) ListModels(ctx context.Context) ([]string, error) {
	return ListModels(ctx, s.client)
}

// TestConnectivity checks model, or the default model when empty.
func (s *Service) TestConnectivity(ctx context.Context, model string) ConnectivityResult {
	if model == "" {
		model = s.defaultModel
	}
	return testConnectivity(ctx, &s.exec, s.client, model)
}

// SendPrompt sends prompt with opts; an empty opts.Model uses the default model.
func (s *Service) SendPrompt(ctx context.Context, prompt string, opts PromptOptions) (string, error) {
	if opts.Model == "" {
		opts.Model = s.defaultModel
	}
	return sendPrompt(ctx, &s.exec, s.client, prompt, opts)
}
