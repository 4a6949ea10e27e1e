// Command vectorizer reads one line of space-separated tokens from stdin and
// writes a JSON object mapping each token with a known word vector to that
// vector.
//
// The model is read from $LEXFEAT_VECTOR_PATH (default
// $HOME/graphseg-cpp/model/GoogleNews-vectors-negative300.bin), keeping the
// first $LEXFEAT_VECTOR_LIMIT entries (default 50000).
package main

import (
	"os"

	"github.com/hupe1980/lexfeat/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.Vectorizer))
}
