// corpus_test.go - Tests fuer das Einlesen von Trainingstexten
package corpus

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"utf8 bom", "\xef\xbb\xbfhello", "hello"},
		{"utf16le bom", "\xff\xfeh\x00i\x00", "hi"},
		{"empty", "", ""},
		{"multibyte", "東京 tower", "東京 tower"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Read() = %q, erwartet %q", got, tt.want)
			}
		})
	}
}

func TestReadPaths(t *testing.T) {
	dir := t.TempDir()

	write := func(name, content string) string {
		t.Helper()
		p := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
		return p
	}

	single := write("single.txt", "first ")
	write("books/b.txt", "bee ")
	write("books/a.txt", "\xef\xbb\xbfay ")
	write("books/nested/c.txt", "sea")

	got, err := ReadPaths(single, filepath.Join(dir, "books"))
	if err != nil {
		t.Fatal(err)
	}

	if want := "first ay bee sea"; got != want {
		t.Errorf("ReadPaths() = %q, erwartet %q", got, want)
	}
}

func TestReadPathsMissing(t *testing.T) {
	_, err := ReadPaths(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ReadPaths() error = %v, erwartet fs.ErrNotExist", err)
	}
}
