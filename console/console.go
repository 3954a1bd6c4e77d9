package console

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/havfo/reversi/i18n"
	"github.com/havfo/reversi/session"
)

// Game drives one session from an InputSource to a Presenter until the game ends.
type Game struct {
	sess *session.Session
	in   *InputSource
	out  *Presenter
	msg  i18n.Messages
}

func NewGame(sess *session.Session, in *InputSource, out *Presenter, msg i18n.Messages) *Game {
	return &Game{sess: sess, in: in, out: out, msg: msg}
}

// Run plays until the game ends or the input runs out. Running out of input
// mid-game is not an error.
func (g *Game) Run() error {
	st := g.sess.State()
	for !st.Ended {
		g.out.Render(st)
		g.out.Prompt()

		next, err := g.readMove()
		if errors.Is(err, io.EOF) {
			log.Info().Str("session", g.sess.ID).Msg("input closed before game end")
			return nil
		}
		if err != nil {
			return err
		}
		st = next
		if st.Passed && !st.Ended {
			g.out.Passed(st)
		}
	}
	g.out.Result(st)
	return nil
}

// readMove keeps prompting until a move is accepted.
func (g *Game) readMove() (session.State, error) {
	for {
		pos, err := g.in.Next()
		if IsBadInput(err) {
			g.out.Println(g.msg.BadInput)
			g.out.Prompt()
			continue
		}
		if err != nil {
			return session.State{}, err
		}

		st, err := g.sess.Play(pos)
		if errors.Is(err, session.ErrRejected) {
			g.out.Println(g.msg.Illegal)
			g.out.Prompt()
			continue
		}
		return st, err
	}
}
