// model.go - Speichern und Laden von Modellen
//
// Enthaelt:
// - Save / Load: Textformat "bpe v1", Muster, Merge-Tripel in Reihenfolge
// - SaveFile / LoadFile: .model und lesbare .vocab Datei
// - RenderToken: druckbare Darstellung eines Tokens
//
// Das Vokabular wird beim Laden ausschliesslich aus den Merges rekonstruiert.

package tokenizer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
)

const modelHeader = "bpe v1"

// Save writes the model: a header line, the quoted split pattern and one
// "left right id" line per merge in creation order.
func (t *Tokenizer) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, modelHeader)
	fmt.Fprintln(bw, strconv.Quote(t.pattern))
	for _, m := range t.merges.list {
		fmt.Fprintf(bw, "%d %d %d\n", m.Pair.Left, m.Pair.Right, m.ID)
	}
	return bw.Flush()
}

// Load reads a model written by Save.
func Load(r io.Reader) (*Tokenizer, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	line := 0
	nextLine := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++
		return strings.TrimRight(sc.Text(), "\r"), true
	}

	header, ok := nextLine()
	if !ok || header != modelHeader {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, configError("not a bpe model: missing %q header", modelHeader)
	}

	quoted, ok := nextLine()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, configError("line 2: missing split pattern")
	}
	pattern, err := strconv.Unquote(quoted)
	if err != nil {
		return nil, configError("line 2: invalid split pattern %s: %v", quoted, err)
	}
	if _, err := NewPretokenizer(pattern); err != nil {
		return nil, fmt.Errorf("line 2: %w", err)
	}

	t := New(pattern)
	for {
		s, ok := nextLine()
		if !ok {
			break
		}
		if strings.TrimSpace(s) == "" {
			continue
		}

		left, right, id, err := parseMerge(s)
		if err != nil {
			return nil, configError("line %d: invalid merge %q: %v", line, s, err)
		}
		if err := t.addMerge(Pair{left, right}, id); err != nil {
			return nil, configError("line %d: %v", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return t, nil
}

// parseMerge parses a "left right id" line.
func parseMerge(s string) (left, right, id int, err error) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("expected 3 fields, got %d", len(fields))
	}

	var n [3]int
	for i, f := range fields {
		if n[i], err = strconv.Atoi(f); err != nil {
			return 0, 0, 0, err
		}
	}
	return n[0], n[1], n[2], nil
}

// SaveFile writes prefix.model and prefix.vocab. Only the .model file can be
// loaded back; the .vocab file is for inspection.
func (t *Tokenizer) SaveFile(prefix string) error {
	if err := writeFile(prefix+".model", t.Save); err != nil {
		return err
	}
	return writeFile(prefix+".vocab", t.WriteVocab)
}

func writeFile(name string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if err := fn(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// LoadFile reads a .model file.
func LoadFile(name string) (*Tokenizer, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return t, nil
}

// WriteVocab writes one line per symbol id. Merged ids show their parts:
// "[left][right] -> [token] id". Base ids are written as "[token] id".
func (t *Tokenizer) WriteVocab(w io.Writer) error {
	parts := make(map[int]Pair, t.merges.Len())
	for _, m := range t.merges.list {
		parts[m.ID] = m.Pair
	}

	bw := bufio.NewWriter(w)
	for id, b := range t.vocab.tokens {
		s := RenderToken(b)
		if p, ok := parts[id]; ok {
			fmt.Fprintf(bw, "[%s][%s] -> [%s] %d\n", RenderToken(t.vocab.tokens[p.Left]), RenderToken(t.vocab.tokens[p.Right]), s, id)
		} else {
			fmt.Fprintf(bw, "[%s] %d\n", s, id)
		}
	}
	return bw.Flush()
}

// RenderToken returns a printable form of b. Invalid UTF-8 becomes U+FFFD and
// control or format characters are escaped as \uXXXX.
func RenderToken(b []byte) string {
	var sb strings.Builder
	for _, r := range decodeUTF8(b) {
		if unicode.In(r, unicode.C) {
			fmt.Fprintf(&sb, "\\u%04x", r)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
