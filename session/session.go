// Package session serializes access to a single reversi game and reports
// what happened on each move to registered observers.
package session

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/havfo/reversi/reversi"
)

// Errors returned by Play.
var (
	ErrGameOver = errors.New("game over")
	ErrRejected = errors.New("move rejected")
)

// EventKind says what a move did to the flow of the game.
type EventKind int

const (
	// EventMoved is a normal move after which the opponent is to play.
	EventMoved EventKind = iota
	// EventPassed is a move after which the opponent had no reply and was skipped.
	EventPassed
	// EventEnded is a move after which neither player can move.
	EventEnded
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventMoved:
		return "moved"
	case EventPassed:
		return "passed"
	case EventEnded:
		return "ended"
	case EventReset:
		return "reset"
	}
	return "unknown"
}

// State is a read-only snapshot of the game. Callers may keep it; later moves do not touch it.
type State struct {
	Board      reversi.Board
	Current    reversi.Cell
	Black      int
	White      int
	Passed     bool
	Ended      bool
	Moves      int
	LegalMoves []reversi.Position
}

// Winner returns the colour with more discs, or Empty for a tie.
func (s State) Winner() reversi.Cell {
	switch {
	case s.Black > s.White:
		return reversi.Black
	case s.White > s.Black:
		return reversi.White
	}
	return reversi.Empty
}

// IsLegal reports whether p is among the legal moves in this snapshot.
func (s State) IsLegal(p reversi.Position) bool {
	for _, m := range s.LegalMoves {
		if m == p {
			return true
		}
	}
	return false
}

// Event is delivered to observers after every accepted move and reset.
type Event struct {
	Kind   EventKind
	Player reversi.Cell     // who moved; Empty for a reset
	Pos    reversi.Position // where; zero for a reset
	Flips  int
	State  State
}

// Session owns one game. All mutation goes through its mutex so a move's
// placement and flips are observed as one step.
type Session struct {
	ID string

	mu        sync.Mutex
	game      *reversi.Game
	log       zerolog.Logger
	observers []func(Event)
}

// New creates a session with a fresh game.
func New(logger zerolog.Logger) *Session {
	return newSession(reversi.NewGame(), logger)
}

// NewFromGame wraps an existing game, e.g. one built from a custom position.
func NewFromGame(g *reversi.Game, logger zerolog.Logger) *Session {
	return newSession(g, logger)
}

func newSession(g *reversi.Game, logger zerolog.Logger) *Session {
	id := uuid.NewString()
	s := &Session{
		ID:   id,
		game: g,
		log:  logger.With().Str("session", id).Logger(),
	}
	s.log.Info().Msg("session started")
	return s
}

// OnEvent registers a callback. Callbacks run on the goroutine that made the
// move, after the session lock has been released.
func (s *Session) OnEvent(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// State returns a snapshot of the current game.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// Play attempts a move for whoever is to play.
func (s *Session) Play(pos reversi.Position) (State, error) {
	s.mu.Lock()
	if s.game.Ended() {
		st := s.stateLocked()
		s.mu.Unlock()
		return st, ErrGameOver
	}

	player := s.game.CurrentPlayer()
	flips := len(s.game.Flips(pos.Row, pos.Col))
	if !s.game.AttemptMove(pos.Row, pos.Col) {
		st := s.stateLocked()
		s.mu.Unlock()
		s.log.Debug().Stringer("player", player).Int("row", pos.Row).Int("col", pos.Col).Msg("move rejected")
		return st, ErrRejected
	}

	st := s.stateLocked()
	ev := Event{Kind: EventMoved, Player: player, Pos: pos, Flips: flips, State: st}
	switch {
	case st.Ended:
		ev.Kind = EventEnded
	case st.Passed:
		ev.Kind = EventPassed
	}
	observers := s.copyObserversLocked()
	s.mu.Unlock()

	s.log.Info().
		Stringer("player", player).
		Str("pos", pos.String()).
		Int("flips", flips).
		Int("black", st.Black).
		Int("white", st.White).
		Msg("move played")
	switch ev.Kind {
	case EventPassed:
		s.log.Info().Stringer("skipped", reversi.Opponent(st.Current)).Msg("turn passed")
	case EventEnded:
		s.log.Info().Stringer("winner", st.Winner()).Int("black", st.Black).Int("white", st.White).Msg("game ended")
	}

	notify(observers, ev)
	return st, nil
}

// Reset starts a new game in the same session.
func (s *Session) Reset() State {
	s.mu.Lock()
	s.game.Reset()
	st := s.stateLocked()
	observers := s.copyObserversLocked()
	s.mu.Unlock()

	s.log.Info().Msg("game reset")
	notify(observers, Event{Kind: EventReset, State: st})
	return st
}

func (s *Session) stateLocked() State {
	black, white := s.game.Score()
	return State{
		Board:      s.game.Board(),
		Current:    s.game.CurrentPlayer(),
		Black:      black,
		White:      white,
		Passed:     s.game.HasPassed(),
		Ended:      s.game.Ended(),
		Moves:      s.game.MoveCount(),
		LegalMoves: s.game.LegalMoves(),
	}
}

func (s *Session) copyObserversLocked() []func(Event) {
	out := make([]func(Event), len(s.observers))
	copy(out, s.observers)
	return out
}

func notify(observers []func(Event), ev Event) {
	for _, fn := range observers {
		fn(ev)
	}
}
