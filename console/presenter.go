// Package console plays reversi over a plain text stream: the board is printed
// after every move and squares are read one line at a time.
package console

import (
	"fmt"
	"io"

	"github.com/havfo/reversi/config"
	"github.com/havfo/reversi/i18n"
	"github.com/havfo/reversi/reversi"
	"github.com/havfo/reversi/session"
)

// Presenter writes game state to a text stream.
type Presenter struct {
	w         io.Writer
	msg       i18n.Messages
	symbols   config.ConfigSymbols
	showHints bool
}

func NewPresenter(w io.Writer, msg i18n.Messages, cfg *config.Config) *Presenter {
	return &Presenter{
		w:         w,
		msg:       msg,
		symbols:   cfg.Theme.Symbols,
		showHints: cfg.ShowHints,
	}
}

// Render prints the board, the score line and, unless the game is over, whose turn it is.
func (p *Presenter) Render(st session.State) {
	hints := p.showHints && !st.Ended
	fmt.Fprint(p.w, st.Board.RenderFunc(func(row, col int, c reversi.Cell) rune {
		switch c {
		case reversi.Black:
			return p.symbols.BlackDisc
		case reversi.White:
			return p.symbols.WhiteDisc
		}
		if hints && st.IsLegal(reversi.Position{Row: row, Col: col}) {
			return p.symbols.Hint
		}
		return p.symbols.EmptySquare
	}))
	fmt.Fprintf(p.w, p.msg.Score+"\n", p.msg.PlayerBlack, st.Black, p.msg.PlayerWhite, st.White)
	if !st.Ended {
		fmt.Fprintf(p.w, p.msg.Turn+"\n", p.PlayerName(st.Current))
	}
}

// Passed announces that the player who would have moved next was skipped.
func (p *Presenter) Passed(st session.State) {
	fmt.Fprintf(p.w, p.msg.Passed+"\n", p.PlayerName(reversi.Opponent(st.Current)))
}

// Result prints the final board and the outcome.
func (p *Presenter) Result(st session.State) {
	p.Render(st)
	fmt.Fprintln(p.w, p.msg.GameOver)
	if w := st.Winner(); w != reversi.Empty {
		fmt.Fprintf(p.w, p.msg.Winner+"\n", p.PlayerName(w))
	} else {
		fmt.Fprintln(p.w, p.msg.Draw)
	}
}

func (p *Presenter) Println(s string) {
	fmt.Fprintln(p.w, s)
}

func (p *Presenter) Prompt() {
	fmt.Fprint(p.w, p.msg.Prompt)
}

func (p *Presenter) PlayerName(c reversi.Cell) string {
	if c == reversi.White {
		return p.msg.PlayerWhite
	}
	return p.msg.PlayerBlack
}
