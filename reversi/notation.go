package reversi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrBadNotation is returned when a coordinate cannot be parsed.
var ErrBadNotation = errors.New("bad coordinate")

// ParsePosition converts a column letter and a one-based row into a Position.
// "D3", "d3" and "D 3" all name row 2, column 3.
func ParsePosition(s string) (Position, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Position{}, fmt.Errorf("%w: empty input", ErrBadNotation)
	}

	letter := unicode.ToUpper(rune(s[0]))
	if letter < 'A' || letter >= 'A'+BoardSize {
		return Position{}, fmt.Errorf("%w: column %q not in A-H", ErrBadNotation, s[:1])
	}

	row, err := strconv.Atoi(strings.TrimSpace(s[1:]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: row in %q", ErrBadNotation, s)
	}
	if row < 1 || row > BoardSize {
		return Position{}, fmt.Errorf("%w: row %d not in 1-%d", ErrBadNotation, row, BoardSize)
	}

	return Position{Row: row - 1, Col: int(letter - 'A')}, nil
}
