// decode.go - Token-IDs zu Text
//
// Enthaelt:
// - Decode: IDs zu Text, ungueltiges UTF-8 wird ersetzt
// - DecodeBytes: IDs zu rohen Bytes

package tokenizer

// DecodeBytes concatenates the vocabulary entries of ids. It fails with an
// *UnknownSymbolError before producing output if any id has no entry.
func (t *Tokenizer) DecodeBytes(ids []int) ([]byte, error) {
	total := 0
	for _, id := range ids {
		b, ok := t.vocab.Bytes(id)
		if !ok {
			return nil, &UnknownSymbolError{ID: id, VocabSize: t.vocab.Len()}
		}
		total += len(b)
	}

	out := make([]byte, 0, total)
	for _, id := range ids {
		b, _ := t.vocab.Bytes(id)
		out = append(out, b...)
	}
	return out, nil
}

// Decode converts ids back to text. Bytes that do not form valid UTF-8 are
// replaced with U+FFFD, one per byte.
func (t *Tokenizer) Decode(ids []int) (string, error) {
	b, err := t.DecodeBytes(ids)
	if err != nil {
		return "", err
	}
	return decodeUTF8(b), nil
}
