package openai

import (
	"encoding/json"
	"errors"
	"maps"
	"slices"

	"github.com/nailen1/use-ai/pkg/chats/message"
)

// Wire names of the request parameters that differ across model generations.
const (
	ParamMaxTokens           = "max_tokens"
	ParamMaxCompletionTokens = "max_completion_tokens"
	ParamTemperature         = "temperature"
)

// ErrEmptyChoices is returned by Response.Text when the reply has no choices.
var ErrEmptyChoices = errors.New("openai: empty choices in response")

// Request is a chat-completion request. Nil optionals are omitted from the
// wire; Extra carries any other parameters verbatim.
type Request struct {
	Model               string
	Messages            []message.Message
	MaxTokens           *int
	MaxCompletionTokens *int
	Temperature         *float64
	Extra               map[string]any
}

// MarshalJSON flattens the request into a single JSON object. Typed fields
// win over Extra entries with the same name.
func (r Request) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(r.Extra)+5)
	maps.Copy(m, r.Extra)

	m["model"] = r.Model
	msgs := r.Messages
	if msgs == nil {
		msgs = []message.Message{}
	}
	m["messages"] = msgs

	if r.MaxTokens != nil {
		m[ParamMaxTokens] = *r.MaxTokens
	}
	if r.MaxCompletionTokens != nil {
		m[ParamMaxCompletionTokens] = *r.MaxCompletionTokens
	}
	if r.Temperature != nil {
		m[ParamTemperature] = *r.Temperature
	}

	return json.Marshal(m)
}

// Clone returns a copy sharing nothing mutable with r.
func (r Request) Clone() Request {
	out := Request{
		Model:    r.Model,
		Messages: slices.Clone(r.Messages),
		Extra:    maps.Clone(r.Extra),
	}
	if r.MaxTokens != nil {
		v := *r.MaxTokens
		out.MaxTokens = &v
	}
	if r.MaxCompletionTokens != nil {
		v := *r.MaxCompletionTokens
		out.MaxCompletionTokens = &v
	}
	if r.Temperature != nil {
		v := *r.Temperature
		out.Temperature = &v
	}

	return out
}

// Response is the non-streaming reply from /v1/chat/completions.
type Response struct {
	ID      string   `json:"id"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Choice is one completion alternative.
type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

// ChoiceMessage is the assistant message inside a choice.
type ChoiceMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
	Refusal *string `json:"refusal,omitempty"`
}

// Usage is the token count the service reports for the exchange.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Text returns the first choice's content. A null content yields "".
func (r Response) Text() (string, error) {
	if len(r.Choices) == 0 {
		return "", ErrEmptyChoices
	}

	if c := r.Choices[0].Message.Content; c != nil {
		return *c, nil
	}

	return "", nil
}
