package engine

// RowFull reports whether every cell of row y is occupied.
func (b *Board) RowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, c := range b.rows[y] {
		if c == Empty {
			return false
		}
	}
	return true
}

// removeRow deletes row y, shifts every row above it down by one and empties
// the top row.
func (b *Board) removeRow(y int) {
	removed := b.rows[y]
	copy(b.rows[y:], b.rows[y+1:])
	clear(removed)
	b.rows[b.height-1] = removed
}

// ClearFullRows removes every full row and returns how many were removed.
// Rows are scanned bottom-up; after a removal the same index is examined
// again because the row above has shifted into it.
func (b *Board) ClearFullRows() int {
	cleared := 0
	y := 0
	for y < b.height {
		if b.RowFull(y) {
			b.removeRow(y)
			cleared++
			continue
		}
		y++
	}
	return cleared
}
