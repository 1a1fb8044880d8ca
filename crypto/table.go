package crypto

// Table is the tabula recta: row r is the alphabet rotated left by r
// positions. It is never modified after NewTable returns and may be shared
// across goroutines.
type Table struct {
	alphabet *Alphabet
	cells    [Size][Size]rune
}

// NewTable derives the substitution table from a, with
// cells[r][c] = a[(r+c) mod Size].
func NewTable(a *Alphabet) *Table {
	t := &Table{alphabet: a}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			t.cells[r][c] = a.SymbolAt((r + c) % Size)
		}
	}
	return t
}

// Alphabet returns the alphabet the table was built from.
func (t *Table) Alphabet() *Alphabet { return t.alphabet }

// At returns the symbol at the given row and column.
func (t *Table) At(row, col int) rune {
	return t.cells[row][col]
}

// Row returns a copy of row r.
func (t *Table) Row(r int) []rune {
	out := make([]rune, Size)
	copy(out, t.cells[r][:])
	return out
}
