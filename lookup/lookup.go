// Package lookup resolves parsed query tokens against a loaded model.
package lookup

import (
	"fmt"
	"strings"

	"github.com/hupe1980/lexfeat/model"
	"github.com/hupe1980/lexfeat/query"
	"github.com/hupe1980/lexfeat/wire"
)

// Result is the outcome of looking up one token.
// Value is only meaningful when Found is true.
type Result struct {
	Token query.Token
	Value any
	Found bool
}

// Engine resolves tokens against one immutable model.
// Implementations are safe for concurrent use.
type Engine interface {
	// Lookup returns one Result per token, in order.
	Lookup(tokens []query.Token) []Result

	// Aggregates returns the model-wide entries written ahead of the
	// per-token entries. Nil when the model has none.
	Aggregates() []wire.Entry

	// Kind names the model type ("vector" or "frequency").
	Kind() string
}

// Vectors looks tokens up in a vector model.
type Vectors struct {
	model *model.VectorModel
}

// NewVectors returns an engine over m.
func NewVectors(m *model.VectorModel) *Vectors {
	return &Vectors{model: m}
}

// Lookup implements Engine. Absent keys and zero-length vectors are not found.
func (v *Vectors) Lookup(tokens []query.Token) []Result {
	results := make([]Result, len(tokens))
	for i, tok := range tokens {
		results[i].Token = tok
		if vec, ok := v.model.Vector(tok.Key); ok && len(vec) > 0 {
			results[i].Value = vec
			results[i].Found = true
		}
	}
	return results
}

// Aggregates implements Engine. Vector models have none.
func (v *Vectors) Aggregates() []wire.Entry { return nil }

// Kind implements Engine.
func (v *Vectors) Kind() string { return "vector" }

// AggregateKeys names the two corpus-wide entries of a frequency response.
type AggregateKeys struct {
	Vocabulary string
	Total      string
}

var (
	// DefaultAggregateKeys is used unless configured otherwise.
	DefaultAggregateKeys = AggregateKeys{Vocabulary: "vocabulary_size", Total: "total_token_count"}

	// GraphsegAggregateKeys matches the segmenter's reader, which takes
	// total_count as the number of distinct words and corpus_size as the
	// number of running words.
	GraphsegAggregateKeys = AggregateKeys{Vocabulary: "total_count", Total: "corpus_size"}
)

// AggregateKeysByName returns a preset: "default" or "graphseg".
func AggregateKeysByName(name string) (AggregateKeys, error) {
	switch strings.ToLower(name) {
	case "", "default":
		return DefaultAggregateKeys, nil
	case "graphseg":
		return GraphsegAggregateKeys, nil
	default:
		return AggregateKeys{}, fmt.Errorf("lookup: unknown aggregate key preset %q", name)
	}
}

// Frequencies looks tokens up in a frequency model.
type Frequencies struct {
	model      *model.FrequencyModel
	aggregates []wire.Entry
}

// NewFrequencies returns an engine over m that reports aggregates under keys.
func NewFrequencies(m *model.FrequencyModel, keys AggregateKeys) *Frequencies {
	return &Frequencies{
		model: m,
		aggregates: []wire.Entry{
			{Key: keys.Vocabulary, Value: m.VocabularySize()},
			{Key: keys.Total, Value: m.TotalTokenCount()},
		},
	}
}

// Lookup implements Engine. Every non-empty token is found; unseen tokens
// count zero. The empty token produced by adjacent spaces is never found.
func (f *Frequencies) Lookup(tokens []query.Token) []Result {
	results := make([]Result, len(tokens))
	for i, tok := range tokens {
		results[i].Token = tok
		if tok.Key == "" {
			continue
		}
		results[i].Value = f.model.Count(tok.Key)
		results[i].Found = true
	}
	return results
}

// Aggregates implements Engine.
func (f *Frequencies) Aggregates() []wire.Entry { return f.aggregates }

// Kind implements Engine.
func (f *Frequencies) Kind() string { return "frequency" }
