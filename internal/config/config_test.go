package config

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotEnvHandlesLongLinesAndComments(t *testing.T) {
	t.Chdir(t.TempDir())

	// A value well past any read-buffer size must survive in one piece.
	long := strings.Repeat("x", 5000)
	env := "# settings\n" +
		"MINDEASE_TEST_LONG=" + long + "\n" +
		"MINDEASE_TEST_PLAIN=ok\r\n" +
		"\n" +
		"MINDEASE_TEST_EQUALS=a=b\n"
	assert.NoError(t, os.WriteFile(".env", []byte(env), 0644))
	defer os.Unsetenv("MINDEASE_TEST_LONG")
	defer os.Unsetenv("MINDEASE_TEST_PLAIN")
	defer os.Unsetenv("MINDEASE_TEST_EQUALS")

	assert.NoError(t, loadDotEnv())
	assert.Equal(t, long, os.Getenv("MINDEASE_TEST_LONG"))
	assert.Equal(t, "ok", os.Getenv("MINDEASE_TEST_PLAIN"))
	// Only the first '=' separates key from value.
	assert.Equal(t, "a=b", os.Getenv("MINDEASE_TEST_EQUALS"))
}

func TestDotEnvMissingFileIsFine(t *testing.T) {
	t.Chdir(t.TempDir())
	assert.NoError(t, loadDotEnv())
}

func TestValidateRejectsUnknownBackend(t *testing.T) {
	c := &Config{Env: "development", DBType: "cloud", EmailDomain: "example.com"}
	assert.Error(t, c.Validate())

	c.DBType = "file"
	c.DataDir = "data"
	assert.NoError(t, c.Validate())
}
