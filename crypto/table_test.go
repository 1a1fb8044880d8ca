package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableIdentityRow(t *testing.T) {
	a := NewAlphabet()
	tbl := NewTable(a)

	assert.Equal(t, a.Symbols(), tbl.Row(0))
	assert.Same(t, a, tbl.Alphabet())
}

func TestTableClosedForm(t *testing.T) {
	a := NewAlphabet()
	tbl := NewTable(a)

	for _, rc := range [][2]int{{0, 0}, {1, 0}, {0, 191}, {1, 191}, {100, 100}, {191, 191}} {
		r, c := rc[0], rc[1]
		assert.Equal(t, a.SymbolAt((r+c)%Size), tbl.At(r, c), "cell [%d][%d]", r, c)
	}
}

func TestTableBijection(t *testing.T) {
	tbl := NewTable(NewAlphabet())

	for i := 0; i < Size; i++ {
		row := make(map[rune]bool, Size)
		col := make(map[rune]bool, Size)
		for j := 0; j < Size; j++ {
			row[tbl.At(i, j)] = true
			col[tbl.At(j, i)] = true
		}
		require.Len(t, row, Size, "row %d", i)
		require.Len(t, col, Size, "column %d", i)
	}
}

func TestTableRowIsCopy(t *testing.T) {
	tbl := NewTable(NewAlphabet())
	row := tbl.Row(3)
	row[0] = 'x'
	assert.NotEqual(t, 'x', tbl.At(3, 0))
}
