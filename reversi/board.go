package reversi

import "strings"

// Board is the 8x8 grid indexed [row][col]. It is a value type: assigning or
// returning a Board copies every square, which is what makes snapshots safe to hand out.
type Board [BoardSize][BoardSize]Cell

// NewBoard returns a board with the four starting discs in the centre
func NewBoard() Board {
	var b Board
	mid := BoardSize / 2
	b[mid-1][mid-1], b[mid][mid] = Black, Black
	b[mid-1][mid], b[mid][mid-1] = White, White

	return b
}

// At returns the cell at (row, col), or Empty when the position is off the board.
func (b *Board) At(row, col int) Cell {
	if !IsValidPosition(row, col) {
		return Empty
	}

	return b[row][col]
}

// Count returns how many squares hold c.
func (b *Board) Count(c Cell) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b[row][col] == c {
				n++
			}
		}
	}

	return n
}

// Render draws the board as text with column letters across the top and
// one-based row numbers down the side.
func (b *Board) Render(black, white, empty rune) string {
	return b.RenderFunc(func(_, _ int, c Cell) rune {
		switch c {
		case Black:
			return black
		case White:
			return white
		}
		return empty
	})
}

// RenderFunc is Render with the symbol for each square chosen by symbol.
func (b *Board) RenderFunc(symbol func(row, col int, c Cell) rune) string {
	var sb strings.Builder
	sb.WriteString("  ")
	for col := 0; col < BoardSize; col++ {
		sb.WriteRune('A' + rune(col))
		if col < BoardSize-1 {
			sb.WriteByte(' ')
		}
	}
	sb.WriteByte('\n')

	for row := 0; row < BoardSize; row++ {
		sb.WriteRune('1' + rune(row))
		for col := 0; col < BoardSize; col++ {
			sb.WriteByte(' ')
			sb.WriteRune(symbol(row, col, b[row][col]))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (b Board) String() string {
	return b.Render('B', 'W', '.')
}
