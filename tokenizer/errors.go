// errors.go - Fehlertypen des Tokenizers
//
// Enthaelt:
// - ErrConfig: ungueltige Trainings- oder Modellkonfiguration
// - ErrUnknownSymbol / UnknownSymbolError: Decode mit unbekannter Token-ID

package tokenizer

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is returned for an unusable training setup: a target
	// vocabulary below 256, an empty corpus, a pattern that does not compile
	// or a malformed model file.
	ErrConfig = errors.New("invalid tokenizer configuration")

	// ErrUnknownSymbol is matched by every *UnknownSymbolError.
	ErrUnknownSymbol = errors.New("unknown symbol")
)

// UnknownSymbolError reports an id that has no vocabulary entry.
type UnknownSymbolError struct {
	ID        int
	VocabSize int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %d (vocabulary has %d entries)", e.ID, e.VocabSize)
}

func (e *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfig, fmt.Sprintf(format, args...))
}
