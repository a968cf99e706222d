package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv(t *testing.T) {
	t.Setenv("TOKENMASTER_TEST_PRESET", "shell")
	path := writeFile(t, ".env", "TOKENMASTER_TEST_FROM_FILE=file\nTOKENMASTER_TEST_PRESET=file\n")
	t.Cleanup(func() { os.Unsetenv("TOKENMASTER_TEST_FROM_FILE") })

	require.NoError(t, LoadEnv(path))

	assert.Equal(t, "file", os.Getenv("TOKENMASTER_TEST_FROM_FILE"))
	assert.Equal(t, "shell", os.Getenv("TOKENMASTER_TEST_PRESET"), "existing variables must not be overridden")
}

func TestLoadEnv_MissingFileSkipped(t *testing.T) {
	assert.NoError(t, LoadEnv(filepath.Join(t.TempDir(), "nope.env")))
}

func TestLoadEnv_Malformed(t *testing.T) {
	path := writeFile(t, "bad.env", "KEY=\"unterminated\n")
	assert.Error(t, LoadEnv(path))
}
