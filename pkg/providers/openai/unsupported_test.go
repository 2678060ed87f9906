package openai_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/nailen1/use-ai/pkg/modeladapter"
	"github.com/nailen1/use-ai/pkg/providers/openai"
	"github.com/stretchr/testify/assert"
)

func TestUnsupportedParameter(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantParam string
		wantOK    bool
	}{
		{
			name: "param field",
			err: &modeladapter.APIError{
				StatusCode: http.StatusBadRequest,
				Code:       "unsupported_parameter",
				Param:      "max_tokens",
				Message:    "Unsupported parameter: 'max_tokens' is not supported with this model.",
			},
			wantParam: "max_tokens",
			wantOK:    true,
		},
		{
			name: "unsupported value",
			err: &modeladapter.APIError{
				StatusCode: http.StatusBadRequest,
				Code:       "unsupported_value",
				Param:      "temperature",
				Message:    "Unsupported value: 'temperature' does not support 0.7 with this model.",
			},
			wantParam: "temperature",
			wantOK:    true,
		},
		{
			name: "name from message only",
			err: fmt.Errorf("openai: %w", &modeladapter.APIError{
				StatusCode: http.StatusBadRequest,
				Message:    "Unsupported parameter: 'top_logprobs' is not supported with this model.",
			}),
			wantParam: "top_logprobs",
			wantOK:    true,
		},
		{
			name: "bad request without field",
			err: &modeladapter.APIError{
				StatusCode: http.StatusBadRequest,
				Message:    "Unsupported parameter",
			},
		},
		{
			name: "other bad request",
			err: &modeladapter.APIError{
				StatusCode: http.StatusBadRequest,
				Code:       "context_length_exceeded",
				Param:      "messages",
				Message:    "This model's maximum context length is 128000 tokens.",
			},
		},
		{
			name: "not a bad request",
			err: &modeladapter.APIError{
				StatusCode: http.StatusUnauthorized,
				Code:       "unsupported_parameter",
				Param:      "max_tokens",
			},
		},
		{name: "plain error", err: errors.New("connection reset")},
		{name: "nil", err: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			param, ok := openai.UnsupportedParameter(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantParam, param)
		})
	}
}
