// cmd_train.go - Training eines Tokenizers
// Hauptfunktionen: TrainHandler, readCorpus, patternFromFlags
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bpe-go/bpe/corpus"
	"github.com/bpe-go/bpe/envconfig"
	"github.com/bpe-go/bpe/tokenizer"
)

// TrainHandler - Lernt Merges aus den Korpus-Dateien und speichert das Model
func TrainHandler(cmd *cobra.Command, args []string) error {
	vocabSize, _ := cmd.Flags().GetInt("vocab-size")
	verbose, _ := cmd.Flags().GetBool("verbose")
	prefix, _ := cmd.Flags().GetString("output")

	text, err := readCorpus(cmd, args)
	if err != nil {
		return err
	}

	progress := newProgressLine(os.Stderr, max(vocabSize-tokenizer.NumBaseTokens, 0))

	tr := tokenizer.Trainer{
		VocabSize: vocabSize,
		Pattern:   patternFromFlags(cmd),
		Verbose:   verbose,
		Workers:   int(envconfig.NumThreads()),
		OnMerge:   progress.update,
	}

	start := time.Now()
	tok, err := tr.Train(text)
	progress.done()
	if err != nil {
		return err
	}

	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if err := tok.SaveFile(prefix); err != nil {
		return err
	}

	slog.Debug("model saved", "prefix", prefix, "elapsed", time.Since(start))
	fmt.Fprintf(cmd.OutOrStdout(), "learned %d merges, vocabulary size %d\nwrote %s.model and %s.vocab\n",
		tok.Merges().Len(), tok.VocabSize(), prefix, prefix)
	return nil
}

// readCorpus - "-" steht fuer Standard-Input, alles andere sind Pfade
func readCorpus(cmd *cobra.Command, args []string) (string, error) {
	if !slices.Contains(args, "-") {
		return corpus.ReadPaths(args...)
	}

	var sb strings.Builder
	for _, arg := range args {
		var text string
		var err error
		if arg == "-" {
			text, err = corpus.Read(cmd.InOrStdin())
		} else {
			text, err = corpus.ReadPaths(arg)
		}
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}

// patternFromFlags - --gpt2 und --gpt4 sind Kurzformen fuer --pattern
func patternFromFlags(cmd *cobra.Command) string {
	if gpt2, _ := cmd.Flags().GetBool("gpt2"); gpt2 {
		return tokenizer.GPT2SplitPattern
	}
	if gpt4, _ := cmd.Flags().GetBool("gpt4"); gpt4 {
		return tokenizer.GPT4SplitPattern
	}
	pattern, _ := cmd.Flags().GetString("pattern")
	return pattern
}
