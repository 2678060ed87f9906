package useai

import (
	"context"
	"encoding/json"
	"errors"
	"slices"

	"github.com/nailen1/use-ai/pkg/chats/message"
	"github.com/nailen1/use-ai/pkg/compat"
	"github.com/nailen1/use-ai/pkg/config"
	"github.com/nailen1/use-ai/pkg/modeladapter"
	"github.com/nailen1/use-ai/pkg/providers/openai"
)

const (
	// DefaultMaxTokens caps SendPrompt replies when PromptOptions leaves it unset.
	DefaultMaxTokens = 1024
	// DefaultTemperature is used when PromptOptions.Temperature is nil.
	DefaultTemperature = 0.7

	pingPrompt    = "Say 'hello' in one word."
	pingMaxTokens = 10
)

// ModelLister lists the model ids visible to a credential.
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// ListModels returns the model ids sorted lexicographically.
func ListModels(ctx context.Context, l ModelLister) ([]string, error) {
	ids, err := l.ListModels(ctx)
	if err != nil {
		return nil, err
	}

	slices.Sort(ids)

	return ids, nil
}

// Outcome tags a ConnectivityResult.
type Outcome int

const (
	OutcomeFailure Outcome = iota
	OutcomeSuccess
	OutcomeUnauthorized // The service rejected the credential.
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeUnauthorized:
		return "unauthorized"
	}
	return "failure"
}

// ConnectivityResult reports a connectivity check. On failure Message holds
// the stringified error and Err the error itself.
type ConnectivityResult struct {
	Outcome Outcome
	Model   string
	Message string
	Err     error
}

// Success reports whether the check got a reply.
func (r ConnectivityResult) Success() bool { return r.Outcome == OutcomeSuccess }

// MarshalJSON renders the result as {"success", "model", "message"}.
func (r ConnectivityResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Model   string `json:"model"`
		Message string `json:"message"`
	}{r.Success(), r.Model, r.Message})
}

// TestConnectivity sends a one-word prompt to model (DefaultModelName when
// empty). It never returns an error: failures are reported in the result.
func TestConnectivity(ctx context.Context, c compat.Completer, model string) ConnectivityResult {
	return testConnectivity(ctx, &compat.Executor{}, c, model)
}

func testConnectivity(ctx context.Context, exec *compat.Executor, c compat.Completer, model string) ConnectivityResult {
	if model == "" {
		model = config.DefaultModelName
	}

	maxTokens := pingMaxTokens
	req := openai.Request{
		Model:     model,
		Messages:  message.Build("", pingPrompt),
		MaxTokens: &maxTokens,
	}

	resp, err := exec.Complete(ctx, c, req)
	if err == nil {
		var text string
		if text, err = resp.Text(); err == nil {
			return ConnectivityResult{Outcome: OutcomeSuccess, Model: model, Message: text}
		}
	}

	return ConnectivityResult{Outcome: failureOutcome(err), Model: model, Message: err.Error(), Err: err}
}

func failureOutcome(err error) Outcome {
	var apiErr *modeladapter.APIError
	if errors.As(err, &apiErr) && apiErr.IsAuthentication() {
		return OutcomeUnauthorized
	}
	return OutcomeFailure
}

// PromptOptions tunes SendPrompt. The zero value uses the package defaults.
type PromptOptions struct {
	Model         string   // Defaults to config.DefaultModelName.
	SystemMessage string   // Sent before the prompt when non-empty.
	MaxTokens     int      // Defaults to DefaultMaxTokens when zero.
	Temperature   *float64 // Defaults to DefaultTemperature when nil.
}

// Temperature returns a pointer to v for PromptOptions.Temperature.
func Temperature(v float64) *float64 { return &v }

// SendPrompt sends prompt and returns the reply text. Errors the executor
// cannot recover from are returned to the caller.
func SendPrompt(ctx context.Context, c compat.Completer, prompt string, opts PromptOptions) (string, error) {
	return sendPrompt(ctx, &compat.Executor{}, c, prompt, opts)
}

func sendPrompt(ctx context.Context, exec *compat.Executor, c compat.Completer, prompt string, opts PromptOptions) (string, error) {
	resp, err := exec.Complete(ctx, c, buildPromptRequest(prompt, opts))
	if err != nil {
		return "", err
	}

	return resp.Text()
}

func buildPromptRequest(prompt string, opts PromptOptions) openai.Request {
	model := opts.Model
	if model == "" {
		model = config.DefaultModelName
	}

	maxTokens := opts.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	temp := DefaultTemperature
	if opts.Temperature != nil {
		temp = *opts.Temperature
	}

	return openai.Request{
		Model:       model,
		Messages:    message.Build(opts.SystemMessage, prompt),
		MaxTokens:   &maxTokens,
		Temperature: &temp,
	}
}
