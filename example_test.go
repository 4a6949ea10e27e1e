package lexfeat_test

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/hupe1980/lexfeat"
	"github.com/hupe1980/lexfeat/blobstore"
	"github.com/hupe1980/lexfeat/loader"
	"github.com/hupe1980/lexfeat/lookup"
	"github.com/hupe1980/lexfeat/model"
)

// Example_vectors answers a query against an in-memory vector model.
func Example_vectors() {
	m, err := model.NewVectorModel(2, map[string][]float32{
		"cat": {0.1, 0.2},
		"dog": {0.3, 0.4},
	})
	if err != nil {
		log.Fatal(err)
	}

	o := lexfeat.New(lookup.NewVectors(m))
	if err := o.Run(context.Background(), strings.NewReader("cat dog. fish\n"), os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output: {"cat":[0.1,0.2],"dog.":[0.3,0.4]}
}

// Example_frequencies counts a corpus and answers with token frequencies.
func Example_frequencies() {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	store.Put("gutenberg/austen-emma.txt", []byte("Emma Woodhouse, handsome, clever, and rich.\n"))

	m, err := loader.LoadFrequencies(ctx, loader.CorpusSource{
		Store:  store,
		Prefix: "gutenberg",
		Files:  []string{"austen-emma.txt"},
	})
	if err != nil {
		log.Fatal(err)
	}

	o := lexfeat.New(lookup.NewFrequencies(m, lookup.DefaultAggregateKeys))
	if err := o.Run(ctx, strings.NewReader("Emma , Knightley\n"), os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output: {"vocabulary_size":8,"total_token_count":10,"Emma":1,",":3,"Knightley":0}
}

// Example_serve answers several lines with one loaded model.
func Example_serve() {
	m, err := model.NewFrequencyModel(map[string]uint64{"a": 7, "b": 2, "c": 1})
	if err != nil {
		log.Fatal(err)
	}

	o := lexfeat.New(lookup.NewFrequencies(m, lookup.GraphsegAggregateKeys))
	if err := o.Serve(context.Background(), strings.NewReader("a b\nz\n"), os.Stdout); err != nil {
		log.Fatal(err)
	}
	// Output:
	// {"total_count":3,"corpus_size":10,"a":7,"b":2}
	// {"total_count":3,"corpus_size":10,"z":0}
}
