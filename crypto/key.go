package crypto

// ExpandKey repeats key cyclically from its first element until exactly n
// elements are produced, so out[i] == key[i%len(key)]. The result is always a
// fresh slice. It returns nil when key is empty.
func ExpandKey[T any](key []T, n int) []T {
	if len(key) == 0 {
		return nil
	}
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	for i := range out {
		out[i] = key[i%len(key)]
	}
	return out
}

// ValidateKey checks that key is non-empty and made only of alphabet
// symbols. Encode and Decode do not require this; they only look up the key
// symbols a text reaches.
func ValidateKey(key string, a *Alphabet) error {
	runes := []rune(key)
	if len(runes) == 0 {
		return ErrEmptyKey
	}
	for i, r := range runes {
		if !a.Contains(r) {
			return &InvalidSymbolError{Symbol: r, Source: SourceKey, Position: i}
		}
	}
	return nil
}
