// stats_test.go - Tests fuer die Paar-Statistik
package tokenizer

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type statEntry struct {
	Pair  Pair
	Count int
}

func entries(s *Stats) []statEntry {
	var out []statEntry
	s.Each(func(p Pair, n int) bool {
		out = append(out, statEntry{p, n})
		return true
	})
	return out
}

func TestCountPairs(t *testing.T) {
	cases := []struct {
		name   string
		chunks [][]int
		want   []statEntry
	}{
		{
			name:   "single chunk",
			chunks: [][]int{{1, 2, 3, 1, 2}},
			want:   []statEntry{{Pair{1, 2}, 2}, {Pair{2, 3}, 1}, {Pair{3, 1}, 1}},
		},
		{
			name:   "overlapping run",
			chunks: [][]int{{7, 7, 7}},
			want:   []statEntry{{Pair{7, 7}, 2}},
		},
		{
			name:   "short chunks",
			chunks: [][]int{{}, {5}, nil},
			want:   nil,
		},
		{
			name:   "chunks are summed",
			chunks: [][]int{{1, 2}, {3, 4}, {1, 2}},
			want:   []statEntry{{Pair{1, 2}, 2}, {Pair{3, 4}, 1}},
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got := entries(CountPairs(tt.chunks, nil))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CountPairs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCountPairsChunkBoundary(t *testing.T) {
	// "ab" und "cd" stehen im Text nebeneinander, (b, c) darf nie auftauchen
	stats := CountPairs([][]int{ByteIDs("ab"), ByteIDs("cd")}, nil)

	if n := stats.Get(Pair{'b', 'c'}); n != 0 {
		t.Errorf("Paar (b, c) gezaehlt: %d, erwartet 0", n)
	}
	if stats.Len() != 2 {
		t.Errorf("Len() = %d, erwartet 2", stats.Len())
	}
}

func TestCountPairsAccumulates(t *testing.T) {
	stats := NewStats()
	stats.Add(Pair{9, 9}, 3)

	got := CountPairs([][]int{{1, 2, 9, 9}}, stats)
	if got != stats {
		t.Fatal("CountPairs returned a new table instead of the supplied one")
	}

	want := []statEntry{{Pair{9, 9}, 4}, {Pair{1, 2}, 1}, {Pair{2, 9}, 1}}
	if diff := cmp.Diff(want, entries(stats)); diff != "" {
		t.Errorf("accumulated stats mismatch (-want +got):\n%s", diff)
	}
}

func TestStatsGetOrZero(t *testing.T) {
	stats := NewStats()
	if n := stats.Get(Pair{1, 1}); n != 0 {
		t.Errorf("Get() on empty table = %d, erwartet 0", n)
	}
	if _, _, ok := stats.Max(); ok {
		t.Error("Max() on empty table reported a pair")
	}
}

func TestStatsMaxTieBreak(t *testing.T) {
	stats := NewStats()
	stats.Add(Pair{5, 6}, 1)
	stats.Add(Pair{3, 4}, 2)
	stats.Add(Pair{1, 2}, 2)
	stats.Add(Pair{5, 6}, 1)

	p, n, ok := stats.Max()
	if !ok {
		t.Fatal("Max() found nothing")
	}
	// alle drei haben Anzahl 2, (5, 6) wurde zuerst entdeckt
	if p != (Pair{5, 6}) || n != 2 {
		t.Errorf("Max() = %v/%d, erwartet {5 6}/2", p, n)
	}
}

func TestCountPairsParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	chunks := make([][]int, 3*parallelThreshold)
	for i := range chunks {
		ids := make([]int, rng.Intn(12))
		for j := range ids {
			ids[j] = rng.Intn(20)
		}
		chunks[i] = ids
	}

	want := entries(CountPairs(chunks, nil))
	for _, workers := range []int{2, 3, 7, 16} {
		got := entries(CountPairsParallel(chunks, nil, workers))
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("workers=%d: parallel counting differs (-seq +par):\n%s", workers, diff)
		}
	}
}

func TestCountWeighted(t *testing.T) {
	chunks := [][]int{{1, 2, 1, 2}, {2, 1}}

	got := entries(countWeighted(chunks, []int{3, 2}, nil, 1))
	want := []statEntry{{Pair{1, 2}, 6}, {Pair{2, 1}, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("weighted counts mismatch (-want +got):\n%s", diff)
	}
}
