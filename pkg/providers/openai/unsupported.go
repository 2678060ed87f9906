package openai

import (
	"errors"
	"regexp"
	"strings"

	"github.com/nailen1/use-ai/pkg/modeladapter"
)

var quotedName = regexp.MustCompile(`'([A-Za-z0-9_.]+)'`)

var unsupportedPrefixes = []string{
	"Unsupported parameter",
	"Unsupported value",
	"Unrecognized request argument",
}

// UnsupportedParameter reports the request field named by a "bad request"
// rejection of an unsupported parameter or value. It returns false for any
// other error, including 400s that do not identify a field.
func UnsupportedParameter(err error) (string, bool) {
	var apiErr *modeladapter.APIError
	if !errors.As(err, &apiErr) || !apiErr.IsBadRequest() {
		return "", false
	}

	if !isUnsupported(apiErr) {
		return "", false
	}

	if apiErr.Param != "" {
		return apiErr.Param, true
	}

	if m := quotedName.FindStringSubmatch(apiErr.Message); m != nil {
		return m[1], true
	}

	return "", false
}

func isUnsupported(e *modeladapter.APIError) bool {
	switch e.Code {
	case "unsupported_parameter", "unsupported_value":
		return true
	}

	for _, p := range unsupportedPrefixes {
		if strings.HasPrefix(e.Message, p) {
			return true
		}
	}

	return false
}
