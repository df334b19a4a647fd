// vocab.go - Vokabular und Merge-Tabelle
//
// Enthaelt:
// - Merge: eine gelernte Regel (Paar -> neue ID)
// - MergeTable: geordnete Liste plus Lookup-Map
// - Vocabulary: ID -> Bytes, aus den Merges abgeleitet

package tokenizer

import "fmt"

// Merge is a learned rule: every occurrence of Pair becomes ID.
type Merge struct {
	Pair Pair
	ID   int
}

// MergeTable holds merges in creation order with a lookup by pair.
type MergeTable struct {
	list  []Merge
	index map[Pair]int
}

func newMergeTable() *MergeTable {
	return &MergeTable{index: make(map[Pair]int)}
}

// add appends the rule pair -> id. Ids must be created in sequence.
func (m *MergeTable) add(p Pair, id int) error {
	if want := NumBaseTokens + len(m.list); id != want {
		return fmt.Errorf("merge id %d out of sequence, expected %d", id, want)
	}
	if _, ok := m.index[p]; ok {
		return fmt.Errorf("duplicate merge (%d, %d)", p.Left, p.Right)
	}
	if p.Left < 0 || p.Right < 0 || p.Left >= id || p.Right >= id {
		return fmt.Errorf("merge (%d, %d) -> %d references an undefined symbol", p.Left, p.Right, id)
	}
	m.list = append(m.list, Merge{Pair: p, ID: id})
	m.index[p] = id
	return nil
}

// Lookup returns the id pair p merges into.
func (m *MergeTable) Lookup(p Pair) (int, bool) {
	id, ok := m.index[p]
	return id, ok
}

// Len returns the number of merges.
func (m *MergeTable) Len() int {
	return len(m.list)
}

// Merges returns a copy of the rules in creation order.
func (m *MergeTable) Merges() []Merge {
	out := make([]Merge, len(m.list))
	copy(out, m.list)
	return out
}

// Vocabulary maps every symbol id to the bytes it expands to.
type Vocabulary struct {
	tokens [][]byte
}

func newVocabulary() *Vocabulary {
	v := &Vocabulary{tokens: make([][]byte, NumBaseTokens)}
	for i := range v.tokens {
		v.tokens[i] = []byte{byte(i)}
	}
	return v
}

// add appends the entry for the next id as the concatenation of p's entries.
func (v *Vocabulary) add(p Pair) {
	left, right := v.tokens[p.Left], v.tokens[p.Right]
	b := make([]byte, 0, len(left)+len(right))
	b = append(b, left...)
	b = append(b, right...)
	v.tokens = append(v.tokens, b)
}

// Bytes returns the bytes for id. The slice must not be modified.
func (v *Vocabulary) Bytes(id int) ([]byte, bool) {
	if id < 0 || id >= len(v.tokens) {
		return nil, false
	}
	return v.tokens[id], true
}

// Len returns the number of entries, 256 plus one per merge.
func (v *Vocabulary) Len() int {
	return len(v.tokens)
}
