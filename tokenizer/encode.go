// encode.go - Text zu Token-IDs
//
// Enthaelt:
// - Encode: Bytes als ein einziger Chunk, Merges nach aufsteigender ID
// - encodeIDs: Heap/Linked-List Merge (gods binaryheap)
//
// Beim Encodieren wird bewusst keine Vorzerlegung angewendet.

package tokenizer

import (
	"cmp"

	"github.com/emirpasic/gods/v2/trees/binaryheap"
)

// Encode converts text to token ids. The UTF-8 bytes of text form a single
// chunk; the pre-tokenizer is not applied. Merges are applied in the order
// they were learned, each one everywhere it matches, until no adjacent pair
// has a merge.
func (t *Tokenizer) Encode(text string) []int {
	ids := ByteIDs(text)
	if len(ids) < 2 || t.merges.Len() == 0 {
		return ids
	}
	return t.encodeIDs(ids)
}

// mergeCandidate is an adjacent pair at pos that has a merge with id rank.
// verL and verR snapshot the slot versions so stale entries can be skipped.
type mergeCandidate struct {
	rank int
	pos  int
	verL int
	verR int
}

// compareCandidates orders by merge id, then position, so equal merges are
// applied left to right.
func compareCandidates(a, b mergeCandidate) int {
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	return cmp.Compare(a.pos, b.pos)
}

// encodeIDs merges ids in place. A merge only creates pairs that contain the
// new symbol, and those have larger ids than the merge that produced it, so
// popping candidates by (id, position) replays the learned order exactly.
func (t *Tokenizer) encodeIDs(ids []int) []int {
	n := len(ids)

	prev := make([]int, n)
	next := make([]int, n)
	version := make([]int, n)
	for i := range n {
		prev[i] = i - 1
		next[i] = i + 1
	}
	next[n-1] = -1

	h := binaryheap.NewWith[mergeCandidate](compareCandidates)

	push := func(i int) {
		if i < 0 {
			return
		}
		j := next[i]
		if j < 0 {
			return
		}
		if id, ok := t.merges.Lookup(Pair{ids[i], ids[j]}); ok {
			h.Push(mergeCandidate{rank: id, pos: i, verL: version[i], verR: version[j]})
		}
	}

	for i := 0; i < n-1; i++ {
		push(i)
	}

	for {
		c, ok := h.Pop()
		if !ok {
			break
		}

		i := c.pos
		j := next[i]
		if j < 0 || version[i] != c.verL || version[j] != c.verR {
			continue
		}

		// collapse j into i; slot 0 never dies
		ids[i] = c.rank
		nj := next[j]
		next[i] = nj
		if nj >= 0 {
			prev[nj] = i
		}
		prev[j], next[j] = -1, -1
		version[i]++
		version[j]++

		push(prev[i])
		push(i)
	}

	out := make([]int, 0, n)
	for i := 0; i >= 0; i = next[i] {
		out = append(out, ids[i])
	}
	return out
}
