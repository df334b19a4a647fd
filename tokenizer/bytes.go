// bytes.go - Byte-Mapper: Text <-> UTF-8 Byte-IDs
//
// Enthaelt:
// - ByteIDs: Text zu Basis-IDs (0..255)
// - decodeUTF8: Bytes zu Text, ungueltige Teilfolgen werden zu U+FFFD (x/text)

package tokenizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

// NumBaseTokens is the number of single-byte symbols every vocabulary starts with.
const NumBaseTokens = 256

// ByteIDs returns the UTF-8 bytes of s as base symbol ids.
func ByteIDs(s string) []int {
	ids := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		ids[i] = int(s[i])
	}
	return ids
}

// decodeUTF8 converts b to a string. Each maximal ill-formed subsequence is
// replaced with a single U+FFFD.
func decodeUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	out, err := unicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}
