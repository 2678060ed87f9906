package useai

import (
	"net/http"

	"github.com/nailen1/use-ai/pkg/config"
	"github.com/nailen1/use-ai/pkg/providers/openai"
)

// NewClient reads the credential once and returns a client bound to it.
// A nil creds uses cfg.Credential(). Credential failures are returned before
// any network I/O; construction itself performs none.
func NewClient(cfg config.Config, creds config.CredentialProvider) (*openai.Client, error) {
	if creds == nil {
		creds = cfg.Credential()
	}

	key, err := creds()
	if err != nil {
		return nil, err
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultBaseURL
	}

	return openai.New(baseURL, key, &http.Client{Timeout: cfg.HTTPTimeout()}), nil
}
