// decode_test.go - Tests fuer Decode und Round-Trip
package tokenizer

import (
	"errors"
	"testing"
)

func TestRoundTripASCIIWithoutMerges(t *testing.T) {
	tok := New("")

	var ascii []byte
	for b := range 128 {
		ascii = append(ascii, byte(b))
	}

	for _, text := range []string{"", "hello world", string(ascii)} {
		got, err := tok.Decode(tok.Encode(text))
		if err != nil {
			t.Fatal(err)
		}
		if got != text {
			t.Errorf("Decode(Encode(%q)) = %q", text, got)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []struct {
		name    string
		pattern string
	}{
		{"single chunk", ""},
		{"gpt2", GPT2SplitPattern},
		{"gpt4", GPT4SplitPattern},
	}

	texts := []string{
		"",
		"a",
		sampleCorpus,
		"completely unseen words: zyzzyva, quokka",
		"ｕｎｉｃｏｄｅ！ 🅤🅝🅘🅒🅞🅓🅔‽ 🇺‌🇳‌🇮‌🇨‌🇴‌🇩‌🇪!",
		"line one\r\nline two\n\n\ttabbed",
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			tok, err := Train(sampleCorpus, 450, tt.pattern, false)
			if err != nil {
				t.Fatal(err)
			}

			for _, text := range texts {
				got, err := tok.Decode(tok.Encode(text))
				if err != nil {
					t.Fatalf("Decode(Encode(%q)): %v", text, err)
				}
				if got != text {
					t.Errorf("Decode(Encode(%q)) = %q", text, got)
				}
			}
		})
	}
}

func TestDecodeUnknownSymbol(t *testing.T) {
	tok, err := Train("aaabdaaabac", 259, "", false)
	if err != nil {
		t.Fatal(err)
	}

	for _, id := range []int{tok.VocabSize(), tok.VocabSize() + 100, -1} {
		got, err := tok.Decode([]int{'a', id})
		if !errors.Is(err, ErrUnknownSymbol) {
			t.Errorf("Decode(%d) error = %v, erwartet ErrUnknownSymbol", id, err)
			continue
		}

		var use *UnknownSymbolError
		if !errors.As(err, &use) || use.ID != id {
			t.Errorf("Decode(%d) error = %#v, erwartet ID %d", id, err, id)
		}
		if got != "" {
			t.Errorf("Decode(%d) returned partial output %q", id, got)
		}
	}

	if _, err := tok.Decode([]int{tok.VocabSize() - 1}); err != nil {
		t.Errorf("Decode(last id) error = %v", err)
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	tok := New("")

	cases := []struct {
		name string
		ids  []int
		want string
	}{
		{"lone continuation byte", []int{0x80, 'a'}, "\ufffda"},
		{"invalid lead byte", []int{'a', 0xff, 'b'}, "a\ufffdb"},
		{"truncated sequence", []int{0xe2, 0x82}, "\ufffd"},
		{"truncated emoji", []int{0xf0, 0x9f, 0x98}, "\ufffd"},
		{"truncated then ascii", []int{0xf0, 0x9f, 'a'}, "\ufffda"},
		{"two invalid lead bytes", []int{0xff, 0xfe}, "\ufffd\ufffd"},
		{"lone continuation bytes", []int{0x80, 0x80}, "\ufffd\ufffd"},
		{"valid multibyte", []int{0xe2, 0x82, 0xac}, "€"},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tok.Decode(tt.ids)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Decode() = %q, erwartet %q", got, tt.want)
			}
		})
	}
}

func TestDecodeBytes(t *testing.T) {
	tok, err := Train("aaabdaaabac", 259, "", false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := tok.DecodeBytes([]int{258, 0xff})
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "aaab\xff" {
		t.Errorf("DecodeBytes() = %q", got)
	}
}

func TestDecodeSplitEmoji(t *testing.T) {
	tok, err := Train(sampleCorpus, 300, GPT4SplitPattern, false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := tok.Decode(ByteIDs("😄")[:3])
	if err != nil {
		t.Fatal(err)
	}
	if got != "\ufffd" {
		t.Errorf("Decode(erste 3 Bytes von U+1F604) = %q, erwartet %q", got, "\ufffd")
	}
}
