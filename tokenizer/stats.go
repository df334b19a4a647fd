// stats.go - Paar-Statistiken ueber Chunks
//
// Enthaelt:
// - Pair: geordnetes Paar benachbarter Symbole
// - Stats: Zaehltabelle in Entdeckungsreihenfolge (go-ordered-map)
// - CountPairs / CountPairsParallel: Zaehlung pro Chunk, global aggregiert
//
// Paare ueber Chunk-Grenzen hinweg werden nie gezaehlt.

package tokenizer

import (
	"runtime"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the chunk count below which counting stays on the
// calling goroutine.
const parallelThreshold = 4096

// Pair is two adjacent symbols, left then right.
type Pair struct {
	Left  int
	Right int
}

// Stats maps pairs to occurrence counts. Enumeration follows the order in
// which pairs were first added.
type Stats struct {
	counts *orderedmap.OrderedMap[Pair, int]
}

// NewStats returns an empty table.
func NewStats() *Stats {
	return &Stats{counts: orderedmap.New[Pair, int]()}
}

// Get returns the count for p, zero if p was never added.
func (s *Stats) Get(p Pair) int {
	n, _ := s.counts.Get(p)
	return n
}

// Add increments the count for p by n, inserting p at the end of the
// enumeration order if it is new.
func (s *Stats) Add(p Pair, n int) {
	if e := s.counts.GetPair(p); e != nil {
		e.Value += n
		return
	}
	s.counts.Set(p, n)
}

// Len returns the number of distinct pairs.
func (s *Stats) Len() int {
	return s.counts.Len()
}

// Each calls fn for every pair in enumeration order until fn returns false.
func (s *Stats) Each(fn func(Pair, int) bool) {
	for e := s.counts.Oldest(); e != nil; e = e.Next() {
		if !fn(e.Key, e.Value) {
			return
		}
	}
}

// Max returns the pair with the highest count. Ties go to the pair that
// comes first in enumeration order. ok is false for an empty table.
func (s *Stats) Max() (best Pair, count int, ok bool) {
	for e := s.counts.Oldest(); e != nil; e = e.Next() {
		if !ok || e.Value > count {
			best, count, ok = e.Key, e.Value, true
		}
	}
	return best, count, ok
}

// merge adds every entry of other into s, preserving other's order for new
// pairs.
func (s *Stats) merge(other *Stats) {
	for e := other.counts.Oldest(); e != nil; e = e.Next() {
		s.Add(e.Key, e.Value)
	}
}

// addChunk counts the adjacent pairs of ids, each weighted by weight.
func (s *Stats) addChunk(ids []int, weight int) {
	for i := 0; i+1 < len(ids); i++ {
		s.Add(Pair{ids[i], ids[i+1]}, weight)
	}
}

// CountPairs counts adjacent pairs inside every chunk and accumulates them
// into stats. A nil stats starts a new table. The table is returned.
func CountPairs(chunks [][]int, stats *Stats) *Stats {
	if stats == nil {
		stats = NewStats()
	}
	for _, ids := range chunks {
		stats.addChunk(ids, 1)
	}
	return stats
}

// CountPairsParallel is CountPairs spread over up to workers goroutines. The
// result, including enumeration order, is identical to CountPairs. workers
// <= 0 uses GOMAXPROCS.
func CountPairsParallel(chunks [][]int, stats *Stats, workers int) *Stats {
	return countWeighted(chunks, nil, stats, workers)
}

// countWeighted counts pairs of chunks[i] with multiplicity weights[i], or 1
// when weights is nil. Chunks are split into contiguous ranges that are
// counted concurrently and folded in range order.
func countWeighted(chunks [][]int, weights []int, stats *Stats, workers int) *Stats {
	if stats == nil {
		stats = NewStats()
	}

	weight := func(i int) int {
		if weights == nil {
			return 1
		}
		return weights[i]
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(chunks) {
		workers = len(chunks)
	}

	if workers <= 1 || len(chunks) < parallelThreshold {
		for i, ids := range chunks {
			stats.addChunk(ids, weight(i))
		}
		return stats
	}

	per := (len(chunks) + workers - 1) / workers
	partials := make([]*Stats, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		start := w * per
		end := min(start+per, len(chunks))
		if start >= end {
			continue
		}

		g.Go(func() error {
			local := NewStats()
			for i := start; i < end; i++ {
				local.addChunk(chunks[i], weight(i))
			}
			partials[w] = local
			return nil
		})
	}
	g.Wait() //nolint:errcheck

	for _, p := range partials {
		if p != nil {
			stats.merge(p)
		}
	}
	return stats
}
