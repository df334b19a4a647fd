// corpus.go - Einlesen von Trainingstexten
//
// Enthaelt:
// - Read: Liest einen Text und entfernt ein fuehrendes Byte Order Mark
// - ReadPaths: Liest Dateien und Verzeichnisse parallel in Argument-Reihenfolge
package corpus

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Read liest r vollstaendig. Ein UTF-8 BOM wird entfernt, UTF-16 mit BOM
// wird nach UTF-8 umgewandelt.
func Read(r io.Reader) (string, error) {
	tr := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	br := bufio.NewReader(transform.NewReader(r, tr))

	var sb strings.Builder
	if _, err := io.Copy(&sb, br); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// ReadPaths liest alle Dateien unter paths. Verzeichnisse werden rekursiv
// und lexikalisch sortiert durchlaufen. Das Ergebnis ist die Verkettung
// aller Dateien in dieser Reihenfolge.
func ReadPaths(paths ...string) (string, error) {
	files, err := expand(paths)
	if err != nil {
		return "", err
	}

	texts := make([]string, len(files))

	var g errgroup.Group
	g.SetLimit(max(runtime.GOMAXPROCS(0)-1, 1))
	for i, name := range files {
		g.Go(func() error {
			f, err := os.Open(name)
			if err != nil {
				return err
			}
			defer f.Close()

			text, err := Read(f)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", name, err)
			}

			texts[i] = text
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}

	var n int
	for _, text := range texts {
		n += len(text)
	}
	slog.Debug("corpus loaded", "files", len(files), "bytes", n)

	return strings.Join(texts, ""), nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		fi, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !fi.IsDir() {
			files = append(files, p)
			continue
		}

		// WalkDir liefert Eintraege lexikalisch sortiert
		if err := filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.Type().IsRegular() {
				files = append(files, path)
			}
			return nil
		}); err != nil {
			return nil, err
		}
	}

	return files, nil
}
