// tokenizer.go - Tokenizer-Aggregat (Merge-Tabelle + Vokabular + Muster)
//
// Enthaelt:
// - Tokenizer: eingefrorenes Ergebnis des Trainings
// - MergeIDs: Anwendung einer Regel auf eine Symbolfolge
//
// Siehe auch: train.go (Lernen), encode.go, decode.go, model.go (Persistenz)

package tokenizer

import "slices"

// Tokenizer is a trained byte-level BPE model. It is immutable and safe for
// concurrent use once returned by Train or Load.
type Tokenizer struct {
	pattern string
	merges  *MergeTable
	vocab   *Vocabulary
}

// New returns a tokenizer without merges; it maps text to raw bytes.
func New(pattern string) *Tokenizer {
	return &Tokenizer{
		pattern: pattern,
		merges:  newMergeTable(),
		vocab:   newVocabulary(),
	}
}

// addMerge records p -> id in the merge table and the vocabulary.
func (t *Tokenizer) addMerge(p Pair, id int) error {
	if err := t.merges.add(p, id); err != nil {
		return err
	}
	t.vocab.add(p)
	return nil
}

// Pattern returns the split pattern the model was trained with.
func (t *Tokenizer) Pattern() string {
	return t.pattern
}

// VocabSize returns the number of symbol ids, 256 plus the number of merges.
func (t *Tokenizer) VocabSize() int {
	return t.vocab.Len()
}

// Merges returns the merge table.
func (t *Tokenizer) Merges() *MergeTable {
	return t.merges
}

// Vocabulary returns the id to bytes mapping.
func (t *Tokenizer) Vocabulary() *Vocabulary {
	return t.vocab
}

// MergeIDs replaces every non-overlapping occurrence of p in ids, scanning
// left to right, with id. A symbol produced by the replacement is not
// rescanned in the same pass. ids is not modified.
func MergeIDs(ids []int, p Pair, id int) []int {
	return mergeInPlace(slices.Clone(ids), p, id)
}

// mergeInPlace is MergeIDs writing into the backing array of ids.
func mergeInPlace(ids []int, p Pair, id int) []int {
	n := 0
	for i := 0; i < len(ids); {
		if i+1 < len(ids) && ids[i] == p.Left && ids[i+1] == p.Right {
			ids[n] = id
			i += 2
		} else {
			ids[n] = ids[i]
			i++
		}
		n++
	}
	return ids[:n]
}
