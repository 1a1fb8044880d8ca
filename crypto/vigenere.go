package crypto

// Vigenere binds a non-empty key to a substitution table. Key symbols are
// resolved only at the positions a text actually uses.
type Vigenere struct {
	table *Table
	key   []rune
}

// NewVigenere rejects an empty key.
func NewVigenere(key string, t *Table) (*Vigenere, error) {
	k := []rune(key)
	if len(k) == 0 {
		return nil, ErrEmptyKey
	}
	return &Vigenere{table: t, key: k}, nil
}

// keyAt returns the alphabet position of the expanded key symbol at i.
func (v *Vigenere) keyAt(expanded []rune, i int) (int, error) {
	ki, ok := v.table.Alphabet().IndexOf(expanded[i])
	if !ok {
		return 0, &InvalidSymbolError{Symbol: expanded[i], Source: SourceKey, Position: i % len(v.key)}
	}
	return ki, nil
}

// Encrypt substitutes each plaintext symbol with the table cell at
// row = key symbol, column = plaintext symbol.
func (v *Vigenere) Encrypt(plaintext string) (string, error) {
	a := v.table.Alphabet()
	msg := []rune(plaintext)
	key := ExpandKey(v.key, len(msg))

	out := make([]rune, len(msg))
	for i, r := range msg {
		mi, ok := a.IndexOf(r)
		if !ok {
			return "", &InvalidSymbolError{Symbol: r, Source: SourceText, Position: i}
		}
		ki, err := v.keyAt(key, i)
		if err != nil {
			return "", err
		}
		out[i] = v.table.At(ki, mi)
	}
	return string(out), nil
}

// Decrypt inverts Encrypt: (C - K) mod Size.
func (v *Vigenere) Decrypt(ciphertext string) (string, error) {
	a := v.table.Alphabet()
	msg := []rune(ciphertext)
	key := ExpandKey(v.key, len(msg))

	out := make([]rune, len(msg))
	for i, r := range msg {
		ei, ok := a.IndexOf(r)
		if !ok {
			return "", &InvalidSymbolError{Symbol: r, Source: SourceText, Position: i}
		}
		ki, err := v.keyAt(key, i)
		if err != nil {
			return "", err
		}
		out[i] = a.SymbolAt((ei - ki + Size) % Size)
	}
	return string(out), nil
}

// Encode encrypts text with key using t.
func Encode(text, key string, t *Table) (string, error) {
	v, err := NewVigenere(key, t)
	if err != nil {
		return "", err
	}
	return v.Encrypt(text)
}

// Decode decrypts text with key using t.
func Decode(text, key string, t *Table) (string, error) {
	v, err := NewVigenere(key, t)
	if err != nil {
		return "", err
	}
	return v.Decrypt(text)
}
