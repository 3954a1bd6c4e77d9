package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/havfo/reversi/config"
	"github.com/havfo/reversi/i18n"
	"github.com/havfo/reversi/reversi"
	"github.com/havfo/reversi/session"
)

func newTestGame(t *testing.T, input string, lang string, hints bool) (*Game, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig
	cfg.ShowHints = hints
	msg := i18n.For(lang)
	var out bytes.Buffer
	sess := session.New(zerolog.Nop())
	return NewGame(sess, NewInputSource(strings.NewReader(input)), NewPresenter(&out, msg, &cfg), msg), &out
}

func TestRenderInitialWithHints(t *testing.T) {
	cfg := config.DefaultConfig
	var out bytes.Buffer
	p := NewPresenter(&out, i18n.For("en"), &cfg)
	p.Render(session.New(zerolog.Nop()).State())

	want := "  A B C D E F G H\n" +
		"1 · · · · · · · ·\n" +
		"2 · · · · · · · ·\n" +
		"3 · · · · * · · ·\n" +
		"4 · · · ● ○ * · ·\n" +
		"5 · · * ○ ● · · ·\n" +
		"6 · · · * · · · ·\n" +
		"7 · · · · · · · ·\n" +
		"8 · · · · · · · ·\n" +
		"Black: 2  White: 2\n" +
		"Black to move.\n"
	if got := out.String(); got != want {
		t.Fatalf("Render() =\n%s\nwant\n%s", got, want)
	}
}

func TestInputSource(t *testing.T) {
	in := NewInputSource(strings.NewReader("D3\nnonsense\n"))
	pos, err := in.Next()
	if err != nil || pos != (reversi.Position{Row: 2, Col: 3}) {
		t.Fatalf("Next() = %v, %v", pos, err)
	}
	if _, err := in.Next(); !IsBadInput(err) {
		t.Fatalf("expected bad input error, got %v", err)
	}
	if _, err := in.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestRunRepromptsOnBadAndIllegalInput(t *testing.T) {
	g, out := newTestGame(t, "Z9\nA1\nD6\n", "en", false)
	if err := g.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	text := out.String()
	for _, want := range []string{
		"Please enter a column A-H and a row 1-8.",
		"You can't place a disc there.",
		"Black: 4  White: 1",
		"White to move.",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "Game over.") {
		t.Fatalf("game should not be over:\n%s", text)
	}
}

func TestRunLocalizedMessages(t *testing.T) {
	g, out := newTestGame(t, "A1\n", "ja", false)
	if err := g.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	text := out.String()
	for _, want := range []string{"石を置く位置を入力してください", "そこには置けないよ", "黒の番です"} {
		if !strings.Contains(text, want) {
			t.Fatalf("output missing %q:\n%s", want, text)
		}
	}
}

func TestRunPlaysToTheEnd(t *testing.T) {
	// Script a whole game on a separate engine, then feed it through the console.
	ref := reversi.NewGame()
	var lines []string
	passes := 0
	for !ref.Ended() {
		moves := ref.LegalMoves()
		m := moves[len(moves)/2]
		lines = append(lines, strings.ToLower(m.String()))
		ref.AttemptMove(m.Row, m.Col)
		if ref.HasPassed() && !ref.Ended() {
			passes++
		}
	}

	g, out := newTestGame(t, strings.Join(lines, "\n")+"\n", "en", true)
	if err := g.Run(); err != nil {
		t.Fatalf("Run error: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "Game over.") {
		t.Fatalf("expected game over:\n%s", text)
	}
	black, white := ref.Score()
	var result string
	switch {
	case black > white:
		result = "Black wins!"
	case white > black:
		result = "White wins!"
	default:
		result = "It's a draw."
	}
	if !strings.Contains(text, result) {
		t.Fatalf("expected %q in output", result)
	}
	if got := strings.Count(text, "has no legal move and passes."); got != passes {
		t.Fatalf("announced %d passes, reference game had %d", got, passes)
	}
	if strings.Contains(text, "You can't place a disc there.") {
		t.Fatalf("scripted moves should all be legal")
	}
}
