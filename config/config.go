// Package config reads process configuration from LEXFEAT_* environment
// variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/hupe1980/lexfeat"
	"github.com/hupe1980/lexfeat/blobstore/s3"
	"github.com/hupe1980/lexfeat/corpus"
	"github.com/hupe1980/lexfeat/loader"
	"github.com/hupe1980/lexfeat/lookup"
	"github.com/hupe1980/lexfeat/resource"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every variable name.
const Prefix = "LEXFEAT"

// ErrMissingEnv is returned when a location can be neither read from the
// environment nor derived from $HOME.
var ErrMissingEnv = errors.New("config: missing environment configuration")

const (
	defaultVectorPath = "graphseg-cpp/model/GoogleNews-vectors-negative300.bin"
	defaultCorpusPath = "nltk_data/corpora/gutenberg"
)

// MinIO configures minio:// locations.
type MinIO struct {
	Endpoint  string `envconfig:"ENDPOINT"`
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
	Secure    bool   `envconfig:"SECURE"`
}

// S3 adjusts s3:// locations. Credentials come from the AWS default chain.
type S3 struct {
	Region   string `envconfig:"REGION"`
	Endpoint string `envconfig:"ENDPOINT"`
}

// Config is the complete process configuration.
type Config struct {
	VectorPath   string `envconfig:"VECTOR_PATH"`
	VectorFormat string `envconfig:"VECTOR_FORMAT" default:"word2vec-bin"`
	VectorLimit  int    `envconfig:"VECTOR_LIMIT" default:"50000"`
	VectorTable  string `envconfig:"VECTOR_TABLE"`

	CorpusPath      string   `envconfig:"CORPUS_PATH"`
	CorpusFiles     []string `envconfig:"CORPUS_FILES" default:"austen-emma.txt"`
	CorpusTokenizer string   `envconfig:"CORPUS_TOKENIZER" default:"wordpunct"`
	CorpusNFC       bool     `envconfig:"CORPUS_NFC"`

	AggregateKeys string `envconfig:"AGGREGATE_KEYS" default:"default"`
	Serve         bool   `envconfig:"SERVE"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`

	IOLimitBytes     int64  `envconfig:"IO_LIMIT_BYTES"`
	MemoryLimitBytes int64  `envconfig:"MEMORY_LIMIT_BYTES"`
	Workers          int    `envconfig:"WORKERS"`
	TempDir          string `envconfig:"TEMP_DIR"`

	MinIO MinIO `envconfig:"MINIO"`
	S3    S3    `envconfig:"S3"`
}

// Load reads and validates the configuration.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every enumerated setting.
func (c *Config) Validate() error {
	if _, err := loader.ParseFormat(c.VectorFormat); err != nil {
		return fmt.Errorf("config: %s_VECTOR_FORMAT: %w", Prefix, err)
	}
	if c.VectorLimit < 0 {
		return fmt.Errorf("config: %s_VECTOR_LIMIT must not be negative", Prefix)
	}
	if _, err := corpus.TokenizerByName(c.CorpusTokenizer); err != nil {
		return fmt.Errorf("config: %s_CORPUS_TOKENIZER: %w", Prefix, err)
	}
	if _, err := lookup.AggregateKeysByName(c.AggregateKeys); err != nil {
		return fmt.Errorf("config: %s_AGGREGATE_KEYS: %w", Prefix, err)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: %s_LOG_FORMAT must be text or json, got %q", Prefix, c.LogFormat)
	}
	return nil
}

// VectorLocation returns the vector resource location, defaulting to the
// GoogleNews model under $HOME.
func (c *Config) VectorLocation() (string, error) {
	return orHome(c.VectorPath, defaultVectorPath, "VECTOR_PATH")
}

// CorpusLocation returns the corpus directory, defaulting to the NLTK
// Gutenberg corpus under $HOME.
func (c *Config) CorpusLocation() (string, error) {
	return orHome(c.CorpusPath, defaultCorpusPath, "CORPUS_PATH")
}

func orHome(explicit, rel, name string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	home := os.Getenv("HOME")
	if home == "" {
		return "", fmt.Errorf("%w: neither %s_%s nor HOME is set", ErrMissingEnv, Prefix, name)
	}
	return filepath.Join(home, filepath.FromSlash(rel)), nil
}

// Format returns the parsed vector format.
func (c *Config) Format() loader.Format {
	f, _ := loader.ParseFormat(c.VectorFormat)
	return f
}

// Tokenizer returns the corpus tokenizer.
func (c *Config) Tokenizer() corpus.Tokenizer {
	t, _ := corpus.TokenizerByName(c.CorpusTokenizer)
	return t
}

// Keys returns the aggregate key preset.
func (c *Config) Keys() lookup.AggregateKeys {
	k, _ := lookup.AggregateKeysByName(c.AggregateKeys)
	return k
}

func (c *Config) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: %s_LOG_LEVEL: %w", Prefix, err)
	}
	return level, nil
}

// Logger builds the stderr logger.
func (c *Config) Logger() *lexfeat.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelWarn
	}
	if strings.EqualFold(c.LogFormat, "json") {
		return lexfeat.NewJSONLogger(level)
	}
	return lexfeat.NewTextLogger(level)
}

// Resources builds the load-time resource controller.
func (c *Config) Resources() *resource.Controller {
	workers := c.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return resource.NewController(resource.Config{
		MemoryLimitBytes:   c.MemoryLimitBytes,
		MaxWorkers:         int64(workers),
		IOLimitBytesPerSec: c.IOLimitBytes,
	})
}

// Resolver builds the location resolver.
func (c *Config) Resolver() *loader.Resolver {
	r := &loader.Resolver{
		MinIO: loader.MinIOConfig{
			Endpoint:  c.MinIO.Endpoint,
			AccessKey: c.MinIO.AccessKey,
			SecretKey: c.MinIO.SecretKey,
			Secure:    c.MinIO.Secure,
		},
	}
	if c.S3.Region != "" {
		r.S3 = append(r.S3, s3.WithRegion(c.S3.Region))
	}
	if c.S3.Endpoint != "" {
		r.S3 = append(r.S3, s3.WithEndpoint(c.S3.Endpoint))
	}
	return r
}

// LoaderOptions returns the options every load shares.
func (c *Config) LoaderOptions(rc *resource.Controller) []loader.Option {
	opts := []loader.Option{loader.WithResourceController(rc)}
	if c.TempDir != "" {
		opts = append(opts, loader.WithTempDir(c.TempDir))
	}
	return opts
}
