package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/oarkflow/rake/nlp/keyword"
	"github.com/oarkflow/rake/nlp/logging"
	"github.com/oarkflow/rake/nlp/tokenizer"
)

const envPrefix = "RAKE_"

type Config struct {
	Stopwords string         `yaml:"stopwords"`
	Rake      Rake           `yaml:"rake"`
	Server    Server         `yaml:"server"`
	Log       logging.Config `yaml:"log"`
}

type Rake struct {
	Normalize      bool   `yaml:"normalize"`
	Strict         bool   `yaml:"strict"`
	Workers        int    `yaml:"workers"`
	Stemming       string `yaml:"stemming"`
	FoldDiacritics bool   `yaml:"fold_diacritics"`
	Symbols        bool   `yaml:"symbols"`
}

type Server struct {
	Address        string  `yaml:"address"`
	BodyLimit      int     `yaml:"body_limit"`
	CacheSize      int     `yaml:"cache_size"`
	// RateLimit is requests per second; 0 disables rate limiting.
	RateLimit      float64 `yaml:"rate_limit"`
	RateBurst      int     `yaml:"rate_burst"`
	WatchStopwords bool    `yaml:"watch_stopwords"`
}

func Default() *Config {
	return &Config{
		Stopwords: "data/stopwords.txt",
		Rake: Rake{
			Normalize: true,
			Strict:    true,
			Workers:   1,
		},
		Server: Server{
			Address:        ":8080",
			BodyLimit:      4 << 20,
			CacheSize:      1024,
			RateLimit:      50,
			RateBurst:      100,
			WatchStopwords: true,
		},
		Log: logging.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults, then applies .env
// files and RAKE_* environment variables. An empty path skips the file.
// With no envFiles, ".env" is loaded when present.
func Load(path string, envFiles ...string) (*Config, error) {
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := godotenv.Load(envFiles...); err != nil && (len(envFiles) > 0 || !errors.Is(err, fs.ErrNotExist)) {
		return nil, errors.Wrap(err, "load env file")
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	if v, ok := lookup("STOPWORDS"); ok {
		c.Stopwords = v
	}
	if v, ok := lookup("STEMMING"); ok {
		c.Rake.Stemming = v
	}
	if v, ok := lookup("SERVER_ADDRESS"); ok {
		c.Server.Address = v
	}
	if v, ok := lookup("LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := lookup("LOG_FILE"); ok {
		c.Log.File = v
	}
	for name, dst := range map[string]*bool{
		"NORMALIZE": &c.Rake.Normalize,
		"STRICT":    &c.Rake.Strict,
	} {
		if v, ok := lookup(name); ok {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return errors.Wrapf(err, "%s%s", envPrefix, name)
			}
			*dst = b
		}
	}
	if v, ok := lookup("WORKERS"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrap(err, envPrefix+"WORKERS")
		}
		c.Rake.Workers = n
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envPrefix + name)
	return strings.TrimSpace(v), ok
}

func (c *Config) Validate() error {
	switch {
	case c.Stopwords == "":
		return errors.New("stopwords path is required")
	case c.Rake.Workers < 1:
		return errors.Errorf("workers must be positive, got %d", c.Rake.Workers)
	case c.Server.BodyLimit <= 0:
		return errors.New("server.body_limit must be positive")
	case c.Server.CacheSize <= 0:
		return errors.New("server.cache_size must be positive")
	case c.Server.RateLimit < 0:
		return errors.New("server.rate_limit must not be negative")
	case c.Server.RateLimit > 0 && c.Server.RateBurst <= 0:
		return errors.New("server.rate_burst must be positive when rate limiting")
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// RakeOptions maps the rake section to engine options.
func (c *Config) RakeOptions() []keyword.Option {
	opts := []keyword.Option{
		keyword.WithNormalize(c.Rake.Normalize),
		keyword.WithStrict(c.Rake.Strict),
		keyword.WithWorkers(c.Rake.Workers),
		keyword.WithStemming(c.Rake.Stemming),
		keyword.WithFoldDiacritics(c.Rake.FoldDiacritics),
	}
	if c.Rake.Symbols {
		opts = append(opts, keyword.WithTokenizer(tokenizer.New(tokenizer.WithSymbols())))
	}
	return opts
}
