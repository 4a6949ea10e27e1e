package lexfeat

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/hupe1980/lexfeat/lookup"
	"github.com/hupe1980/lexfeat/query"
	"github.com/hupe1980/lexfeat/wire"
)

// Oracle answers query lines against one lookup engine.
// It holds no mutable state and is safe for concurrent use.
type Oracle struct {
	engine lookup.Engine
	opts   options
}

// New creates an Oracle over engine.
func New(engine lookup.Engine, optFns ...Option) *Oracle {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Oracle{engine: engine, opts: opts}
}

// Answer parses line, looks up every token and builds the response.
// Aggregate entries come first, then found tokens in first-occurrence order.
// A token repeated in line keeps its first position and its last value.
func (o *Oracle) Answer(line string) (*wire.Response, error) {
	return o.answer(context.Background(), line)
}

func (o *Oracle) answer(ctx context.Context, line string) (*wire.Response, error) {
	if o.engine == nil {
		return nil, ErrNilEngine
	}

	start := time.Now()
	tokens := query.Parse(line)
	results := o.engine.Lookup(tokens)
	aggregates := o.engine.Aggregates()

	resp, found, err := build(aggregates, results)
	o.opts.metricsCollector.RecordQuery(len(tokens), found, time.Since(start), err)
	o.opts.logger.LogQuery(ctx, len(tokens), found, err)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func build(aggregates []wire.Entry, results []lookup.Result) (*wire.Response, int, error) {
	resp := wire.NewResponse(len(aggregates) + len(results))
	for _, e := range aggregates {
		if err := resp.Set(e.Key, e.Value); err != nil {
			return nil, 0, err
		}
	}

	found := 0
	for _, r := range results {
		if !r.Found {
			continue
		}
		found++
		if err := resp.Set(r.Token.Raw, r.Value); err != nil {
			return nil, found, err
		}
	}
	return resp, found, nil
}

// Run answers exactly one line read from r and writes the response to w.
// On any error nothing is written.
func (o *Oracle) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := query.ReadLine(r)
	if err != nil {
		return err
	}
	resp, err := o.answer(ctx, line)
	if err != nil {
		return &QueryError{Line: 1, cause: err}
	}
	return wire.Write(w, resp, o.opts.codec)
}

// Serve answers every line of r in order until r is exhausted, ctx is
// canceled, or a line cannot be answered or written. Reaching the end of r
// is not an error, even before the first line.
//
// Cancellation is observed between lines; a blocked read is not interrupted.
func (o *Oracle) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	lr := query.NewLineReader(r)
	lines := 0
	err := func() error {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := lr.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return err
			}
			lines++

			resp, err := o.answer(ctx, line)
			if err != nil {
				return &QueryError{Line: lines, cause: err}
			}
			if err := wire.Write(w, resp, o.opts.codec); err != nil {
				return err
			}
		}
	}()
	o.opts.logger.LogServe(ctx, lines, err)
	return err
}
