package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/havfo/reversi/reversi"
)

// InputSource reads squares from a line-oriented stream.
type InputSource struct {
	scanner *bufio.Scanner
}

func NewInputSource(r io.Reader) *InputSource {
	return &InputSource{scanner: bufio.NewScanner(r)}
}

// Next reads one line and parses it as a square. Unparseable lines return an
// error wrapping reversi.ErrBadNotation; the end of input returns io.EOF.
func (in *InputSource) Next() (reversi.Position, error) {
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return reversi.Position{}, fmt.Errorf("read input: %w", err)
		}
		return reversi.Position{}, io.EOF
	}
	return reversi.ParsePosition(in.scanner.Text())
}

// IsBadInput reports whether err came from a line that could not be parsed.
func IsBadInput(err error) bool {
	return errors.Is(err, reversi.ErrBadNotation)
}
