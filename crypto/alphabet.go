// Package crypto contains the extended Vigenère cipher engine: the symbol
// alphabet, the substitution table derived from it and the encode and decode
// transforms keyed by a passphrase.
package crypto

import "strings"

// Size is the number of symbols in the alphabet.
const Size = 192

// Alphabet is the ordered, immutable set of symbols the cipher can represent.
type Alphabet struct {
	symbols [Size]rune
	index   [256]int16 // code point -> position, -1 if not a member
}

// NewAlphabet builds the alphabet: printable Basic Latin (U+0020..U+007E),
// printable Latin-1 Supplement (U+00A1..U+00FF), then line feed and carriage
// return at positions 190 and 191.
func NewAlphabet() *Alphabet {
	a := new(Alphabet)
	for i := range a.index {
		a.index[i] = -1
	}

	n := 0
	add := func(r rune) {
		a.symbols[n] = r
		a.index[r] = int16(n)
		n++
	}
	for r := rune(0x20); r <= 0x7e; r++ {
		add(r)
	}
	for r := rune(0xa1); r <= 0xff; r++ {
		add(r)
	}
	add('\n')
	add('\r')

	return a
}

// Len returns the number of symbols.
func (a *Alphabet) Len() int { return Size }

// SymbolAt returns the symbol at position i. It panics if i is out of range.
func (a *Alphabet) SymbolAt(i int) rune {
	return a.symbols[i]
}

// IndexOf returns the position of r, and false if r is not in the alphabet.
func (a *Alphabet) IndexOf(r rune) (int, bool) {
	if r < 0 || int(r) >= len(a.index) {
		return 0, false
	}
	i := a.index[r]
	if i < 0 {
		return 0, false
	}
	return int(i), true
}

// Contains reports whether r is a member of the alphabet.
func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.IndexOf(r)
	return ok
}

// Symbols returns a copy of the symbols in order.
func (a *Alphabet) Symbols() []rune {
	out := make([]rune, Size)
	copy(out, a.symbols[:])
	return out
}

func (a *Alphabet) String() string {
	var b strings.Builder
	for _, r := range a.symbols {
		b.WriteRune(r)
	}
	return b.String()
}
