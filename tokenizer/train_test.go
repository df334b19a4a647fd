// train_test.go - Tests fuer das Lernen der Merges
package tokenizer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleCorpus = `The quick brown fox jumps over the lazy dog. The dog sleeps, the fox runs!
Numbers like 12345 and 2024 appear twice: 12345, 2024. Don't panic; it's fine.
Über café naïve – 東京 and 東京 again, plus emoji 🙂🙂 and tabs	and   spaces.`

// referenceTrain learns merges by scanning every chunk on every iteration,
// without the weighted arena.
func referenceTrain(t *testing.T, corpus string, vocabSize int, pattern string) []Merge {
	t.Helper()

	pre, err := NewPretokenizer(pattern)
	if err != nil {
		t.Fatal(err)
	}
	parts, err := pre.Split(corpus)
	if err != nil {
		t.Fatal(err)
	}

	chunks := make([][]int, len(parts))
	for i, p := range parts {
		chunks[i] = ByteIDs(p)
	}

	var merges []Merge
	for i := 0; i < vocabSize-NumBaseTokens; i++ {
		pair, count, ok := CountPairs(chunks, nil).Max()
		if !ok || count < 2 {
			break
		}
		id := NumBaseTokens + i
		for c := range chunks {
			chunks[c] = MergeIDs(chunks[c], pair, id)
		}
		merges = append(merges, Merge{Pair: pair, ID: id})
	}
	return merges
}

func TestTrainRegressionFixture(t *testing.T) {
	tok, err := Train("aaabdaaabac", 259, "", false)
	if err != nil {
		t.Fatal(err)
	}

	want := []Merge{
		{Pair{'a', 'a'}, 256},
		{Pair{256, 'a'}, 257},
		{Pair{257, 'b'}, 258},
	}
	if diff := cmp.Diff(want, tok.Merges().Merges()); diff != "" {
		t.Errorf("merges mismatch (-want +got):\n%s", diff)
	}

	for id, s := range map[int]string{256: "aa", 257: "aaa", 258: "aaab"} {
		b, ok := tok.Vocabulary().Bytes(id)
		if !ok || string(b) != s {
			t.Errorf("vocab[%d] = %q, erwartet %q", id, b, s)
		}
	}
}

func TestTrainConfigErrors(t *testing.T) {
	cases := []struct {
		name      string
		corpus    string
		vocabSize int
		pattern   string
	}{
		{"vocab below 256", "hello", 255, ""},
		{"negative vocab", "hello", -1, ""},
		{"empty corpus", "", 300, ""},
		{"invalid pattern", "hello", 300, "("},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := Train(tt.corpus, tt.vocabSize, tt.pattern, false)
			if !errors.Is(err, ErrConfig) {
				t.Errorf("Train() error = %v, erwartet ErrConfig", err)
			}
			if tok != nil {
				t.Error("Train() returned a tokenizer alongside an error")
			}
		})
	}
}

func TestTrainMergeCount(t *testing.T) {
	cases := []struct {
		name      string
		corpus    string
		vocabSize int
		pattern   string
		want      int
	}{
		{"no merges requested", "aaaa", 256, "", 0},
		{"exact count", sampleCorpus, 256 + 20, GPT4SplitPattern, 20},
		{"all pairs unique", "abcd", 300, "", 0},
		{"runs out after one merge", "aaaa", 300, "", 1},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := Train(tt.corpus, tt.vocabSize, tt.pattern, false)
			if err != nil {
				t.Fatal(err)
			}
			if got := tok.Merges().Len(); got != tt.want {
				t.Errorf("merges = %d, erwartet %d", got, tt.want)
			}
			if tok.VocabSize() != NumBaseTokens+tok.Merges().Len() {
				t.Errorf("VocabSize() = %d, erwartet %d", tok.VocabSize(), NumBaseTokens+tok.Merges().Len())
			}
		})
	}
}

func TestTrainVocabularyInvariant(t *testing.T) {
	tok, err := Train(sampleCorpus, 400, GPT4SplitPattern, false)
	if err != nil {
		t.Fatal(err)
	}

	v := tok.Vocabulary()
	if v.Len() != NumBaseTokens+tok.Merges().Len() {
		t.Fatalf("len(vocab) = %d, merges = %d", v.Len(), tok.Merges().Len())
	}

	for i := range NumBaseTokens {
		b, _ := v.Bytes(i)
		if !bytes.Equal(b, []byte{byte(i)}) {
			t.Errorf("vocab[%d] = %v", i, b)
		}
	}

	for _, m := range tok.Merges().Merges() {
		left, _ := v.Bytes(m.Pair.Left)
		right, _ := v.Bytes(m.Pair.Right)
		got, _ := v.Bytes(m.ID)
		if want := append(append([]byte{}, left...), right...); !bytes.Equal(got, want) {
			t.Errorf("vocab[%d] = %q, erwartet %q", m.ID, got, want)
		}
	}
}

func TestTrainDeterministic(t *testing.T) {
	a, err := Train(sampleCorpus, 350, GPT4SplitPattern, false)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Train(sampleCorpus, 350, GPT4SplitPattern, false)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(a.Merges().Merges(), b.Merges().Merges()); diff != "" {
		t.Errorf("training is not deterministic (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(a.Vocabulary().tokens, b.Vocabulary().tokens); diff != "" {
		t.Errorf("vocabularies differ (-first +second):\n%s", diff)
	}
}

func TestTrainMatchesReference(t *testing.T) {
	corpus := strings.Repeat(sampleCorpus+"\n", 3)

	for _, pattern := range []string{"", GPT2SplitPattern, GPT4SplitPattern} {
		t.Run(pattern, func(t *testing.T) {
			tok, err := Train(corpus, 420, pattern, false)
			if err != nil {
				t.Fatal(err)
			}

			want := referenceTrain(t, corpus, 420, pattern)
			if diff := cmp.Diff(want, tok.Merges().Merges()); diff != "" {
				t.Errorf("merges differ from reference (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTrainParallelCounting(t *testing.T) {
	// genug verschiedene Chunks, damit parallel gezaehlt wird
	var sb strings.Builder
	for i := range 3 * parallelThreshold {
		sb.WriteString(" w")
		for n := i; n > 0; n /= 7 {
			sb.WriteByte(byte('a' + n%7))
		}
	}
	corpus := sb.String()

	seq := Trainer{VocabSize: 300, Pattern: GPT2SplitPattern, Workers: 1}
	par := Trainer{VocabSize: 300, Pattern: GPT2SplitPattern, Workers: 4}

	a, err := seq.Train(corpus)
	if err != nil {
		t.Fatal(err)
	}
	b, err := par.Train(corpus)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(a.Merges().Merges(), b.Merges().Merges()); diff != "" {
		t.Errorf("parallel training differs (-seq +par):\n%s", diff)
	}
}

func TestTrainChunkIsolation(t *testing.T) {
	var events []MergeEvent
	tr := Trainer{
		VocabSize: 300,
		Pattern:   `ab|cd`,
		OnMerge:   func(e MergeEvent) { events = append(events, e) },
	}

	tok, err := tr.Train("abcdabcdabcd")
	if err != nil {
		t.Fatal(err)
	}

	want := []MergeEvent{
		{Pair: Pair{'a', 'b'}, ID: 256, Count: 3, Token: []byte("ab")},
		{Pair: Pair{'c', 'd'}, ID: 257, Count: 3, Token: []byte("cd")},
	}
	if diff := cmp.Diff(want, events); diff != "" {
		t.Errorf("merge events mismatch (-want +got):\n%s", diff)
	}

	if _, ok := tok.Merges().Lookup(Pair{'b', 'c'}); ok {
		t.Error("pair (b, c) crosses a chunk boundary but was merged")
	}
}

func TestTrainVerbose(t *testing.T) {
	tok, err := Train("hello hello hello", 260, GPT2SplitPattern, true)
	if err != nil {
		t.Fatal(err)
	}
	if tok.Merges().Len() == 0 {
		t.Error("verbose training learned no merges")
	}
}
