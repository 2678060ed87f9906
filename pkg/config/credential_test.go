package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_Set(t *testing.T) {
	t.Setenv("USEAI_TEST_CRED", "sk-abc")

	key, err := Env("USEAI_TEST_CRED")()
	require.NoError(t, err)
	assert.Equal(t, "sk-abc", key)
}

func TestEnv_Unset(t *testing.T) {
	t.Setenv("USEAI_TEST_CRED", "")
	require.NoError(t, os.Unsetenv("USEAI_TEST_CRED"))

	_, err := Env("USEAI_TEST_CRED")()
	require.Error(t, err)

	var cfgErr *ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "USEAI_TEST_CRED", cfgErr.Key)
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, "config: USEAI_TEST_CRED: missing credential", err.Error())
}

func TestEnv_Empty(t *testing.T) {
	t.Setenv("USEAI_TEST_CRED", "")

	_, err := Env("USEAI_TEST_CRED")()
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func TestEnv_RepeatedCalls(t *testing.T) {
	t.Setenv("USEAI_TEST_CRED", "first")
	p := Env("USEAI_TEST_CRED")

	k1, err := p()
	require.NoError(t, err)

	t.Setenv("USEAI_TEST_CRED", "second")
	k2, err := p()
	require.NoError(t, err)

	assert.Equal(t, "first", k1)
	assert.Equal(t, "second", k2)
}

func TestStatic(t *testing.T) {
	key, err := Static("sk-static")()
	require.NoError(t, err)
	assert.Equal(t, "sk-static", key)

	_, err = Static("")()
	assert.True(t, errors.Is(err, ErrMissingCredential))
}
