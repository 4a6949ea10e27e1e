// Command frequency reads one line of space-separated tokens from stdin and
// writes a JSON object holding the corpus vocabulary size, the corpus token
// count and the occurrence count of every token.
//
// The corpus is read from $LEXFEAT_CORPUS_PATH (default
// $HOME/nltk_data/corpora/gutenberg), files $LEXFEAT_CORPUS_FILES (default
// austen-emma.txt).
package main

import (
	"os"

	"github.com/hupe1980/lexfeat/internal/cli"
)

func main() {
	os.Exit(cli.Main(cli.Frequency))
}
