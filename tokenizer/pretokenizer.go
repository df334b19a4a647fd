// pretokenizer.go - Zerlegung von Text in Chunks per Regex
//
// Enthaelt:
// - GPT2SplitPattern, GPT4SplitPattern: bekannte Split-Muster
// - Pretokenizer: kompiliertes Muster (regexp2), Split
//
// Chunk-Grenzen sind Barrieren fuer Merges, siehe stats.go und train.go.

package tokenizer

import (
	"log/slog"

	"github.com/dlclark/regexp2"
)

const (
	// GPT2SplitPattern is the pre-tokenizer pattern published with GPT-2.
	GPT2SplitPattern = `'(?:[sdmt]|ll|ve|re)| ?\p{L}+| ?\p{N}+| ?[^\s\p{L}\p{N}]+|\s+(?!\S)|\s+`

	// GPT4SplitPattern is the cl100k_base pattern. regexp2 has no possessive
	// quantifiers, so ?+ and ++ are written as atomic groups.
	GPT4SplitPattern = `'(?i:[sdmt]|ll|ve|re)|(?>[^\r\n\p{L}\p{N}]?)\p{L}+|\p{N}{1,3}| ?(?>[^\s\p{L}\p{N}]+)[\r\n]*|\s*[\r\n]|\s+(?!\S)|\s+`
)

// Pretokenizer splits text into chunks. The zero pattern keeps the whole
// text as a single chunk.
type Pretokenizer struct {
	pattern string
	re      *regexp2.Regexp
}

// NewPretokenizer compiles pattern. The pattern is handed to regexp2 as is.
func NewPretokenizer(pattern string) (*Pretokenizer, error) {
	p := &Pretokenizer{pattern: pattern}
	if pattern == "" {
		return p, nil
	}

	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, configError("failed to compile split pattern %q: %v", pattern, err)
	}
	p.re = re
	return p, nil
}

// Pattern returns the source pattern.
func (p *Pretokenizer) Pattern() string {
	return p.pattern
}

// Split returns the ordered chunks of text. Runs of characters the pattern
// does not match are kept as chunks of their own, so the chunks always
// concatenate back to text. Text is expected to be valid UTF-8.
func (p *Pretokenizer) Split(text string) ([]string, error) {
	if text == "" {
		return nil, nil
	}
	if p.re == nil {
		return []string{text}, nil
	}

	runes := []rune(text)
	var chunks []string
	var gaps, pos int

	m, err := p.re.FindRunesMatch(runes)
	for m != nil && err == nil {
		if m.Length > 0 {
			if m.Index > pos {
				chunks = append(chunks, string(runes[pos:m.Index]))
				gaps += m.Index - pos
			}
			chunks = append(chunks, m.String())
			pos = m.Index + m.Length
		}
		m, err = p.re.FindNextMatch(m)
	}
	if err != nil {
		return nil, err
	}

	if pos < len(runes) {
		chunks = append(chunks, string(runes[pos:]))
		gaps += len(runes) - pos
	}

	if gaps > 0 {
		slog.Debug("split pattern left characters unmatched", "pattern", p.pattern, "characters", gaps)
	}

	return chunks, nil
}
