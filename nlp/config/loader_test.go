package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oarkflow/rake/nlp/keyword"
	"github.com/oarkflow/rake/nlp/stopwords"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	require.NoError(t, c.Validate())
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
stopwords: /etc/rake/stopwords.txt
rake:
  normalize: false
  workers: 4
  stemming: english
server:
  address: ":9090"
log:
  level: debug
  format: json
`)
	c, err := Load(path, writeFile(t, "empty.env", ""))
	require.NoError(t, err)

	assert.Equal(t, "/etc/rake/stopwords.txt", c.Stopwords)
	assert.False(t, c.Rake.Normalize)
	assert.True(t, c.Rake.Strict)
	assert.Equal(t, 4, c.Rake.Workers)
	assert.Equal(t, "english", c.Rake.Stemming)
	assert.Equal(t, ":9090", c.Server.Address)
	assert.Equal(t, 1024, c.Server.CacheSize)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "json", c.Log.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RAKE_WORKERS", "8")
	t.Setenv("RAKE_NORMALIZE", "false")
	t.Setenv("RAKE_LOG_LEVEL", "warn")

	path := writeFile(t, "config.yaml", "rake:\n  workers: 2\n")
	env := writeFile(t, "test.env", "RAKE_STOPWORDS=/tmp/words.txt\nRAKE_SERVER_ADDRESS=:7070\n")
	t.Cleanup(func() {
		os.Unsetenv("RAKE_STOPWORDS")
		os.Unsetenv("RAKE_SERVER_ADDRESS")
	})

	c, err := Load(path, env)
	require.NoError(t, err)
	assert.Equal(t, 8, c.Rake.Workers)
	assert.False(t, c.Rake.Normalize)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "/tmp/words.txt", c.Stopwords)
	assert.Equal(t, ":7070", c.Server.Address)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "rake: [\n"))
		require.Error(t, err)
	})
	t.Run("missing env file", func(t *testing.T) {
		_, err := Load("", filepath.Join(t.TempDir(), "nope.env"))
		require.Error(t, err)
	})
	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("RAKE_STRICT", "sometimes")
		_, err := Load("", writeFile(t, "empty.env", ""))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		desc   string
		mutate func(c *Config)
	}{
		{desc: "no stopwords", mutate: func(c *Config) { c.Stopwords = "" }},
		{desc: "negative workers", mutate: func(c *Config) { c.Rake.Workers = -1 }},
		{desc: "zero cache", mutate: func(c *Config) { c.Server.CacheSize = 0 }},
		{desc: "negative rate", mutate: func(c *Config) { c.Server.RateLimit = -1 }},
		{desc: "zero burst", mutate: func(c *Config) { c.Server.RateBurst = 0 }},
		{desc: "zero body limit", mutate: func(c *Config) { c.Server.BodyLimit = 0 }},
		{desc: "bad log level", mutate: func(c *Config) { c.Log.Level = "chatty" }},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			c := Default()
			tc.mutate(c)
			require.Error(t, c.Validate())
		})
	}
}

func TestValidateUnlimitedRate(t *testing.T) {
	c := Default()
	c.Server.RateLimit = 0
	c.Server.RateBurst = 0
	require.NoError(t, c.Validate())
}

func TestRakeOptions(t *testing.T) {
	idx, err := stopwords.New([]string{"and"})
	require.NoError(t, err)

	c := Default()
	c.Rake.Normalize = false
	c.Rake.Symbols = true
	r, err := keyword.New(idx, c.RakeOptions()...)
	require.NoError(t, err)

	got := r.Extract("state-of-the-art kitchen and bar")
	assert.Equal(t, []keyword.Score{
		{Phrase: "state-of-the-art kitchen", Score: 4},
		{Phrase: "bar", Score: 1},
	}, got)

	c.Rake.Stemming = "klingon"
	_, err = keyword.New(idx, c.RakeOptions()...)
	require.Error(t, err)
}
