// Package compat submits chat-completion requests and adapts them to
// parameter incompatibilities between model generations.
//
// Two rejections are recognized: newer models refuse max_tokens and expect
// max_completion_tokens instead, and reasoning models refuse any explicit
// temperature. Each is corrected at most once per call. Every other failure
// is returned unchanged.
package compat

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nailen1/use-ai/pkg/modeladapter"
	"github.com/nailen1/use-ai/pkg/providers/openai"
)

// Completer submits a single chat-completion request.
type Completer interface {
	CreateChatCompletion(ctx context.Context, req openai.Request) (openai.Response, error)
}

// rateLimitReporter is implemented by clients that track the quota headers
// of their last reply, such as *openai.Client.
type rateLimitReporter interface {
	LastRateLimitInfo() *modeladapter.RateLimitInfo
}

// RepeatedParameterError is returned when the service rejects a parameter
// that was already corrected earlier in the same call.
type RepeatedParameterError struct {
	Param string
	Err   error // The service's rejection.
}

func (e *RepeatedParameterError) Error() string {
	return fmt.Sprintf("compat: %s still rejected after correction: %v", e.Param, e.Err)
}

func (e *RepeatedParameterError) Unwrap() error { return e.Err }

// rewrite adjusts req for one rejected parameter. It reports false when the
// parameter is not present, in which case there is nothing to correct.
type rewrite func(req *openai.Request) bool

var rewrites = map[string]rewrite{
	openai.ParamMaxTokens:   useMaxCompletionTokens,
	openai.ParamTemperature: dropTemperature,
}

// maxAttempts is the first submission plus one per known rewrite.
var maxAttempts = len(rewrites) + 1

// Executor runs requests through the adaptive loop. The zero value is ready
// to use and logs nothing.
type Executor struct {
	Log *slog.Logger
}

// Complete submits req through c. On a recognized unsupported-parameter
// rejection it rewrites a copy of the request and resubmits; req itself is
// never modified. The first successful response is returned as-is.
func (e *Executor) Complete(ctx context.Context, c Completer, req openai.Request) (openai.Response, error) {
	log := e.logger()
	current := req
	corrected := make(map[string]struct{}, len(rewrites))

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		resp, err := c.CreateChatCompletion(ctx, current)
		if err == nil {
			logRateLimit(ctx, log, c, req.Model)
			return resp, nil
		}
		lastErr = err

		param, ok := openai.UnsupportedParameter(err)
		if !ok {
			return openai.Response{}, err
		}

		if _, done := corrected[param]; done {
			return openai.Response{}, &RepeatedParameterError{Param: param, Err: err}
		}

		fix, known := rewrites[param]
		if !known {
			return openai.Response{}, err
		}

		next := current.Clone()
		if !fix(&next) {
			return openai.Response{}, err
		}

		corrected[param] = struct{}{}
		current = next

		log.InfoContext(ctx, "retrying with adapted parameters",
			"model", req.Model,
			"param", param,
			"attempt", attempt+1,
		)
	}

	return openai.Response{}, lastErr
}

func (e *Executor) logger() *slog.Logger {
	if e == nil || e.Log == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Log
}

func logRateLimit(ctx context.Context, log *slog.Logger, c Completer, model string) {
	r, ok := c.(rateLimitReporter)
	if !ok {
		return
	}

	info := r.LastRateLimitInfo()
	if info == nil {
		return
	}

	log.DebugContext(ctx, "rate limit",
		"model", model,
		"remaining_requests", info.RemainingRequests,
		"remaining_tokens", info.RemainingTokens,
	)
}

// useMaxCompletionTokens moves max_tokens to max_completion_tokens. Both the
// typed field and a pass-through entry are rewritten; the typed value wins
// when both are set.
func useMaxCompletionTokens(req *openai.Request) bool {
	v, inExtra := req.Extra[openai.ParamMaxTokens]
	if req.MaxTokens == nil && !inExtra {
		return false
	}

	if inExtra {
		delete(req.Extra, openai.ParamMaxTokens)
		if req.MaxTokens == nil {
			req.Extra[openai.ParamMaxCompletionTokens] = v
		}
	}

	if req.MaxTokens != nil {
		delete(req.Extra, openai.ParamMaxCompletionTokens)
		req.MaxCompletionTokens = req.MaxTokens
		req.MaxTokens = nil
	}

	return true
}

// dropTemperature removes temperature from both the typed field and the
// pass-through entries.
func dropTemperature(req *openai.Request) bool {
	_, inExtra := req.Extra[openai.ParamTemperature]
	if req.Temperature == nil && !inExtra {
		return false
	}

	req.Temperature = nil
	delete(req.Extra, openai.ParamTemperature)

	return true
}
