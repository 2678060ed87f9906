package config

import (
	"errors"
	"fmt"
	"os"
)

// ErrMissingCredential is matched by every ConfigurationError raised for an
// absent API key.
var ErrMissingCredential = errors.New("missing credential")

// ConfigurationError reports a setting that could not be resolved.
type ConfigurationError struct {
	Key string // Environment variable or config field name.
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("config: %s: %v", e.Key, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// CredentialProvider supplies the API key. It is called once per client
// construction and may be called repeatedly.
type CredentialProvider func() (string, error)

// Env returns a provider reading the named environment variable.
// An unset or empty variable is a ConfigurationError.
func Env(name string) CredentialProvider {
	return func() (string, error) {
		v, ok := os.LookupEnv(name)
		if !ok || v == "" {
			return "", &ConfigurationError{Key: name, Err: ErrMissingCredential}
		}

		return v, nil
	}
}

// Static returns a provider that always yields key.
func Static(key string) CredentialProvider {
	return func() (string, error) {
		if key == "" {
			return "", &ConfigurationError{Key: "api_key", Err: ErrMissingCredential}
		}

		return key, nil
	}
}
