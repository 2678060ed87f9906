package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("USEAI_DOTENV_KEY=sk-dotenv\n"), 0o600))

	t.Setenv("USEAI_DOTENV_KEY", "")
	require.NoError(t, os.Unsetenv("USEAI_DOTENV_KEY"))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "sk-dotenv", os.Getenv("USEAI_DOTENV_KEY"))
}

func TestLoadDotEnv_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("USEAI_DOTENV_KEEP=from-file\n"), 0o600))

	t.Setenv("USEAI_DOTENV_KEEP", "from-process")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "from-process", os.Getenv("USEAI_DOTENV_KEEP"))
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}
