// train.go - Lernen der Merge-Regeln
//
// Enthaelt:
// - Train: Einstiegspunkt (Korpus, Zielgroesse, Muster, verbose)
// - Trainer: konfigurierbarer Trainingslauf mit Merge-Events
// - arena: veraenderliche Chunk-Folgen waehrend des Trainings
//
// Ablauf pro Iteration: Statistik -> haeufigstes Paar -> neue ID -> alle
// Chunks umschreiben. Abbruch, wenn kein Paar mehr als einmal vorkommt.

package tokenizer

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/bpe-go/bpe/logutil"
)

// MergeEvent describes one learned merge.
type MergeEvent struct {
	Pair  Pair
	ID    int
	Count int
	// Token is the byte sequence of the new symbol.
	Token []byte
}

// Trainer learns a tokenizer from a corpus.
type Trainer struct {
	// VocabSize is the target number of symbols, at least 256.
	VocabSize int
	// Pattern is the split pattern, see NewPretokenizer.
	Pattern string
	// Verbose logs every merge at INFO.
	Verbose bool
	// Workers bounds the goroutines used for pair counting; 0 means GOMAXPROCS.
	Workers int
	// OnMerge, if set, is called after each merge.
	OnMerge func(MergeEvent)
}

// Train learns up to vocabSize-256 merges from corpus.
func Train(corpus string, vocabSize int, pattern string, verbose bool) (*Tokenizer, error) {
	tr := Trainer{VocabSize: vocabSize, Pattern: pattern, Verbose: verbose}
	return tr.Train(corpus)
}

// Train runs the merge loop. It stops before reaching VocabSize when no pair
// occurs at least twice.
func (tr *Trainer) Train(corpus string) (*Tokenizer, error) {
	if tr.VocabSize < NumBaseTokens {
		return nil, configError("vocabulary size %d is below %d", tr.VocabSize, NumBaseTokens)
	}
	if corpus == "" {
		return nil, configError("empty corpus")
	}

	pre, err := NewPretokenizer(tr.Pattern)
	if err != nil {
		return nil, err
	}

	chunks, err := pre.Split(corpus)
	if err != nil {
		return nil, err
	}

	a := newArena(chunks)
	t := New(tr.Pattern)
	numMerges := tr.VocabSize - NumBaseTokens

	logger := slog.With("run", uuid.NewString())
	logger.Debug("training tokenizer", "chunks", len(chunks), "unique", len(a.chunks), "merges", numMerges)

	var lastPercent int
	for i := range numMerges {
		stats := countWeighted(a.chunks, a.weights, nil, tr.Workers)
		pair, count, ok := stats.Max()
		logutil.Trace("counted pairs", "merge", i, "distinct", stats.Len(), "best", count)
		if !ok || count < 2 {
			logger.Info("no pair occurs more than once, stopping early", "merges", i, "target", numMerges)
			break
		}

		id := NumBaseTokens + i
		a.apply(pair, id)
		if err := t.addMerge(pair, id); err != nil {
			return nil, err
		}

		token, _ := t.vocab.Bytes(id)
		if tr.Verbose {
			logger.Info("merging pair into a new token", "left", pair.Left, "right", pair.Right, "id", id, "count", count, "token", RenderToken(token))
		}
		if tr.OnMerge != nil {
			tr.OnMerge(MergeEvent{Pair: pair, ID: id, Count: count, Token: token})
		}

		if percent := (i + 1) * 100 / numMerges; percent > lastPercent {
			logger.Debug("progress", "percent", percent, "merges", i+1, "target", numMerges)
			lastPercent = percent
		}
	}

	logger.Debug("finished training", "merges", t.merges.Len(), "vocab_size", t.VocabSize())
	return t, nil
}

// arena holds the distinct chunks of the corpus as symbol ids together with
// their multiplicity. Chunks keep the order of their first occurrence, so
// weighted counting sees pairs in the same order as a scan over every chunk.
type arena struct {
	chunks  [][]int
	weights []int
}

func newArena(chunks []string) *arena {
	a := &arena{}
	seen := make(map[string]int, len(chunks))
	for _, c := range chunks {
		if i, ok := seen[c]; ok {
			a.weights[i]++
			continue
		}
		seen[c] = len(a.chunks)
		a.chunks = append(a.chunks, ByteIDs(c))
		a.weights = append(a.weights, 1)
	}
	return a
}

// apply rewrites every chunk in place, replacing p with id.
func (a *arena) apply(p Pair, id int) {
	for i, ids := range a.chunks {
		if len(ids) < 2 {
			continue
		}
		a.chunks[i] = mergeInPlace(ids, p, id)
	}
}
