// Package reversi implements the rules of Reversi (Othello) on the standard 8x8 board.
package reversi

import "fmt"

// Cell is the content of a single square. Black and White double as the players.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

const BoardSize = 8

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	}

	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Opponent returns the opponent of the given player
func Opponent(player Cell) Cell {
	switch player {
	case Black:
		return White
	case White:
		return Black
	}

	return Empty
}

// Direction is a compass offset walked while looking for flip lines.
type Direction struct {
	DRow, DCol int
}

// Directions for checking valid moves, in the order they are scanned.
var directions = [8]Direction{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Position is a square on the board, zero-based from the top-left corner.
type Position struct {
	Row, Col int
}

// String renders the position as a column letter followed by a one-based row, e.g. "D3".
func (p Position) String() string {
	if !IsValidPosition(p.Row, p.Col) {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}

	return fmt.Sprintf("%c%d", 'A'+rune(p.Col), p.Row+1)
}
