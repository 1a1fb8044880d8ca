package crypto

import (
	"errors"
	"fmt"
)

// ErrEmptyKey is returned when a passphrase has no symbols.
var ErrEmptyKey = errors.New("key cannot be empty")

// Input names for InvalidSymbolError.Source.
const (
	SourceText = "text"
	SourceKey  = "key"
)

// InvalidSymbolError reports a character that is not in the alphabet.
type InvalidSymbolError struct {
	Symbol   rune
	Source   string // SourceText or SourceKey
	Position int    // rune index within Source
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("invalid symbol %q (U+%04X) in %s at position %d", e.Symbol, e.Symbol, e.Source, e.Position)
}

// IsInvalidSymbol reports whether err is or wraps an InvalidSymbolError.
func IsInvalidSymbol(err error) bool {
	var ise *InvalidSymbolError
	return errors.As(err, &ise)
}
