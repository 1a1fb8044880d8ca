package crypto

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var table = NewTable(NewAlphabet())

func TestEncodeScenario(t *testing.T) {
	a := table.Alphabet()
	k, _ := a.IndexOf('K')
	e, _ := a.IndexOf('E')
	ai, _ := a.IndexOf('A')
	bi, _ := a.IndexOf('B')
	want := string([]rune{a.SymbolAt((k + ai) % Size), a.SymbolAt((e + bi) % Size)})

	got, err := Encode("AB", "KEY", table)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	plain, err := Decode(got, "KEY", table)
	require.NoError(t, err)
	assert.Equal(t, "AB", plain)
}

func TestEncodeWraps(t *testing.T) {
	// '\r' is the last symbol; shifting by '!' (index 1) wraps to ' '.
	got, err := Encode("\r", "!", table)
	require.NoError(t, err)
	assert.Equal(t, " ", got)

	plain, err := Decode(" ", "!", table)
	require.NoError(t, err)
	assert.Equal(t, "\r", plain)
}

func TestIdentityKey(t *testing.T) {
	// ' ' is index 0, so a key of spaces leaves text unchanged.
	got, err := Encode("Hello, World!", " ", table)
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", got)
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		text string
		key  string
	}{
		{"", "key"},
		{"Hello, World!", "KEY"},
		{"Real-Time Vigenère Cipher", "°¡! RüST íS CóÓL ¡!°"},
		{"line one\r\nline two\n", "x"},
		{"short", "a key much longer than the text"},
		{"ÀÁÂÃÄÅÆÇÈÉ ÿþý", "~"},
	}

	for _, tt := range tests {
		enc, err := Encode(tt.text, tt.key, table)
		require.NoError(t, err, "encode %q", tt.text)
		assert.Equal(t, len([]rune(tt.text)), len([]rune(enc)))

		dec, err := Decode(enc, tt.key, table)
		require.NoError(t, err, "decode %q", enc)
		assert.Equal(t, tt.text, dec)
	}
}

func TestRoundTripRandom(t *testing.T) {
	a := table.Alphabet()
	rng := rand.New(rand.NewSource(1))
	randText := func(n int) string {
		out := make([]rune, n)
		for i := range out {
			out[i] = a.SymbolAt(rng.Intn(Size))
		}
		return string(out)
	}

	for i := 0; i < 200; i++ {
		text := randText(rng.Intn(300))
		key := randText(1 + rng.Intn(40))

		enc, err := Encode(text, key, table)
		require.NoError(t, err)
		dec, err := Decode(enc, key, table)
		require.NoError(t, err)
		require.Equal(t, text, dec)
	}
}

func TestKeyLengthIndependence(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog."
	for _, key := range []string{"K", "KEY", "°¡! RüST"} {
		once, err := Encode(text, key, table)
		require.NoError(t, err)
		twice, err := Encode(text, key+key, table)
		require.NoError(t, err)
		assert.Equal(t, once, twice, "key %q", key)
	}
}

func TestEncodeInvalidSymbol(t *testing.T) {
	tests := []struct {
		text   string
		key    string
		symbol rune
		source string
		pos    int
	}{
		{"e\u0007llo", "key", '\u0007', SourceText, 1},
		{"hello", "k\u0007y", '\u0007', SourceKey, 1},
		{"tab\there", "key", '\t', SourceText, 3},
		{"euro €", "key", '€', SourceText, 5},
		{"okay", "key\u00a0", '\u00a0', SourceKey, 3},
	}

	for _, tt := range tests {
		out, err := Encode(tt.text, tt.key, table)
		assert.Empty(t, out)

		var ise *InvalidSymbolError
		require.True(t, errors.As(err, &ise), "Encode(%q, %q) err = %v", tt.text, tt.key, err)
		assert.Equal(t, tt.symbol, ise.Symbol)
		assert.Equal(t, tt.source, ise.Source)
		assert.Equal(t, tt.pos, ise.Position)
	}
}

func TestDecodeInvalidSymbol(t *testing.T) {
	out, err := Decode("abc\u0007", "key", table)
	assert.Empty(t, out)

	var ise *InvalidSymbolError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, '\u0007', ise.Symbol)
	assert.Equal(t, SourceText, ise.Source)
	assert.Equal(t, 3, ise.Position)

	_, err = Decode("abc", "\u0000", table)
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, SourceKey, ise.Source)
}

func TestKeyResolvedPerPosition(t *testing.T) {
	// Key symbols past the end of the text are never looked up.
	enc, err := Encode("A", "A\a", table)
	require.NoError(t, err)
	want, err := Encode("A", "A", table)
	require.NoError(t, err)
	assert.Equal(t, want, enc)

	dec, err := Decode(enc, "A\a", table)
	require.NoError(t, err)
	assert.Equal(t, "A", dec)

	for _, fn := range []func(string, string, *Table) (string, error){Encode, Decode} {
		out, err := fn("", "\a", table)
		require.NoError(t, err)
		assert.Empty(t, out)
	}
}

func TestTextSymbolCheckedBeforeKey(t *testing.T) {
	for _, fn := range []func(string, string, *Table) (string, error){Encode, Decode} {
		_, err := fn("\a", "K\a", table)
		var ise *InvalidSymbolError
		require.True(t, errors.As(err, &ise))
		assert.Equal(t, SourceText, ise.Source)
		assert.Equal(t, 0, ise.Position)

		// The second text position reaches the invalid key symbol.
		_, err = fn("AB", "K\a", table)
		require.True(t, errors.As(err, &ise))
		assert.Equal(t, SourceKey, ise.Source)
		assert.Equal(t, '\a', ise.Symbol)
		assert.Equal(t, 1, ise.Position)
	}
}

func TestInvalidUTF8(t *testing.T) {
	_, err := Encode("ab\xffcd", "key", table)
	var ise *InvalidSymbolError
	require.True(t, errors.As(err, &ise))
	assert.Equal(t, '\uFFFD', ise.Symbol)
}

func TestEmptyKey(t *testing.T) {
	_, err := Encode("abc", "", table)
	assert.ErrorIs(t, err, ErrEmptyKey)
	_, err = Decode("", "", table)
	assert.ErrorIs(t, err, ErrEmptyKey)

	_, err = NewVigenere("", table)
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestIsInvalidSymbol(t *testing.T) {
	_, err := Encode("\u0001", "k", table)
	assert.True(t, IsInvalidSymbol(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsInvalidSymbol(ErrEmptyKey))
	assert.Contains(t, err.Error(), "U+0001")
}

func TestVigenereReuse(t *testing.T) {
	v, err := NewVigenere("KEY", table)
	require.NoError(t, err)

	msgs := []string{"first", "second message", strings.Repeat("z", 1000)}
	for _, m := range msgs {
		enc, err := v.Encrypt(m)
		require.NoError(t, err)
		dec, err := v.Decrypt(enc)
		require.NoError(t, err)
		assert.Equal(t, m, dec)
	}
}

func TestConcurrentUse(t *testing.T) {
	done := make(chan error, 16)
	for i := 0; i < cap(done); i++ {
		go func(i int) {
			text := fmt.Sprintf("message number %d", i)
			enc, err := Encode(text, "shared", table)
			if err != nil {
				done <- err
				return
			}
			dec, err := Decode(enc, "shared", table)
			if err == nil && dec != text {
				err = fmt.Errorf("got %q, want %q", dec, text)
			}
			done <- err
		}(i)
	}
	for i := 0; i < cap(done); i++ {
		assert.NoError(t, <-done)
	}
}
