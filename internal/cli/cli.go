// Package cli wires configuration, loading and the oracle into the two
// binaries.
package cli

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hupe1980/lexfeat"
	"github.com/hupe1980/lexfeat/config"
	"github.com/hupe1980/lexfeat/loader"
	"github.com/hupe1980/lexfeat/lookup"
)

// Command loads one model and answers queries from stdin on stdout.
type Command func(ctx context.Context, env *Env) error

// Env is what a Command runs against.
type Env struct {
	Config  *config.Config
	Logger  *lexfeat.Logger
	Metrics *lexfeat.BasicMetricsCollector
	Stdin   io.Reader
	Stdout  io.Writer
}

// Main runs cmd against the process environment and returns the exit code.
func Main(cmd Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		lexfeat.NewLogger(nil).ErrorContext(ctx, "invalid configuration", "error", err)
		return 1
	}

	env := &Env{
		Config:  cfg,
		Logger:  cfg.Logger(),
		Metrics: &lexfeat.BasicMetricsCollector{},
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
	}
	err = cmd(ctx, env)
	env.Logger.DebugContext(ctx, "metrics", "stats", env.Metrics.GetStats())
	if err != nil {
		env.Logger.ErrorContext(ctx, "lexfeat failed", "error", err)
		return 1
	}
	return 0
}

// Vectorizer answers with word vectors.
func Vectorizer(ctx context.Context, env *Env) error {
	cfg := env.Config
	loc, err := cfg.VectorLocation()
	if err != nil {
		return err
	}

	start := time.Now()
	store, name, err := cfg.Resolver().ResolveFile(ctx, loc)
	if err != nil {
		return err
	}
	m, err := loader.LoadVectors(ctx, loader.VectorSource{
		Store:  store,
		Name:   name,
		Format: cfg.Format(),
		Limit:  cfg.VectorLimit,
		Table:  cfg.VectorTable,
	}, cfg.LoaderOptions(cfg.Resources())...)

	var entries, dim int
	if m != nil {
		entries, dim = m.Len(), m.Dim()
	}
	env.Metrics.RecordLoad("vector", entries, time.Since(start), err)
	env.Logger.LogLoad(ctx, "vector", loc, entries, dim, time.Since(start), err)
	if err != nil {
		return err
	}
	return answer(ctx, env, lookup.NewVectors(m))
}

// Frequency answers with corpus frequencies.
func Frequency(ctx context.Context, env *Env) error {
	cfg := env.Config
	loc, err := cfg.CorpusLocation()
	if err != nil {
		return err
	}

	start := time.Now()
	store, prefix, err := cfg.Resolver().ResolveDir(ctx, loc)
	if err != nil {
		return err
	}
	m, err := loader.LoadFrequencies(ctx, loader.CorpusSource{
		Store:     store,
		Prefix:    prefix,
		Files:     cfg.CorpusFiles,
		Tokenizer: cfg.Tokenizer(),
		NFC:       cfg.CorpusNFC,
	}, cfg.LoaderOptions(cfg.Resources())...)

	var entries int
	if m != nil {
		entries = int(m.VocabularySize())
	}
	env.Metrics.RecordLoad("frequency", entries, time.Since(start), err)
	env.Logger.LogLoad(ctx, "frequency", loc, entries, 0, time.Since(start), err)
	if err != nil {
		return err
	}
	return answer(ctx, env, lookup.NewFrequencies(m, cfg.Keys()))
}

func answer(ctx context.Context, env *Env, engine lookup.Engine) error {
	o := lexfeat.New(engine,
		lexfeat.WithLogger(env.Logger.WithKind(engine.Kind())),
		lexfeat.WithMetricsCollector(env.Metrics),
	)
	if env.Config.Serve {
		return o.Serve(ctx, env.Stdin, env.Stdout)
	}
	return o.Run(ctx, env.Stdin, env.Stdout)
}
