// Package ui is the interactive terminal front-end: a start form, a selectable
// board and a game-over dialog, all drawn with tview.
package ui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"

	"github.com/havfo/reversi/config"
	"github.com/havfo/reversi/i18n"
	"github.com/havfo/reversi/reversi"
	"github.com/havfo/reversi/session"
)

const (
	pageSetup = "setup"
	pageGame  = "game"
	pageOver  = "over"
)

// App wires one session to the terminal.
type App struct {
	app       *tview.Application
	pages     *tview.Pages
	sess      *session.Session
	cfg       *config.Config
	msg       i18n.Messages
	showHints bool

	boardTable *tview.Table
	scoreBox   *tview.TextView
	hint       *tview.TextView
	notice     string
}

// New builds every screen up front; nothing is drawn until Run.
func New(sess *session.Session, cfg *config.Config, msg i18n.Messages) *App {
	a := &App{
		app:       tview.NewApplication(),
		pages:     tview.NewPages(),
		sess:      sess,
		cfg:       cfg,
		msg:       msg,
		showHints: cfg.ShowHints,
	}

	a.pages.AddPage(pageSetup, a.buildStartScreen(), true, true)
	a.pages.AddPage(pageGame, a.buildGameView(), true, false)
	a.app.SetRoot(a.pages, true)

	sess.OnEvent(a.handleEvent)

	return a
}

// Run shows the start screen and blocks until the player quits.
func (a *App) Run() error {
	return a.app.Run()
}

// StartGame skips the start screen.
func (a *App) StartGame() {
	a.startGame()
}

func (a *App) buildStartScreen() tview.Primitive {
	form := tview.NewForm()
	form.
		AddCheckbox(a.msg.ShowHints, a.showHints, func(checked bool) {
			a.showHints = checked
		}).
		AddButton(a.msg.StartGame, func() {
			a.sess.Reset()
			a.startGame()
		}).
		AddButton(a.msg.Quit, func() {
			a.app.Stop()
		})
	form.SetBorder(true).SetTitle(" " + a.msg.Title + " ").SetTitleAlign(tview.AlignCenter)

	return form
}

func (a *App) buildGameView() tview.Primitive {
	lineColor := tcell.PaletteColor(a.cfg.Theme.Colors.LineColor)

	a.boardTable = tview.NewTable()
	a.boardTable.SetSelectable(true, true)
	a.boardTable.SetFixed(1, 1)
	a.boardTable.SetBorder(true)
	a.boardTable.SetTitleAlign(tview.AlignLeft)
	a.boardTable.SetTitleColor(lineColor)
	a.boardTable.SetBorderColor(lineColor)
	a.boardTable.SetBorders(a.cfg.Theme.DrawBorders)
	a.boardTable.SetBordersColor(lineColor)
	a.boardTable.SetSelectedStyle(tcell.StyleDefault.Background(tcell.PaletteColor(a.cfg.Theme.Colors.CursorColorBG)))

	// Column letters and row numbers sit in the fixed first row and column.
	a.boardTable.SetCell(0, 0, tview.NewTableCell("").SetSelectable(false))
	for i := 0; i < reversi.BoardSize; i++ {
		a.boardTable.SetCell(0, i+1, tview.NewTableCell(string(rune('A'+i))).
			SetAlign(tview.AlignCenter).SetSelectable(false))
		a.boardTable.SetCell(i+1, 0, tview.NewTableCell(fmt.Sprintf("%d", i+1)).
			SetAlign(tview.AlignCenter).SetSelectable(false))
	}

	a.boardTable.SetSelectedFunc(func(row, column int) {
		a.play(reversi.Position{Row: row - 1, Col: column - 1})
	})
	a.boardTable.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() != tcell.KeyRune {
			return event
		}
		switch event.Rune() {
		case 'q':
			a.app.Stop()
			return nil
		case 'n':
			a.sess.Reset()
			return nil
		}
		return event
	})

	a.scoreBox = tview.NewTextView()
	a.scoreBox.SetBorder(true)
	a.scoreBox.SetTitle(" Score ")

	a.hint = tview.NewTextView()
	a.hint.SetText("  " + a.msg.Controls)

	boardRow := tview.NewFlex().
		AddItem(a.boardTable, 0, 1, true).
		AddItem(a.scoreBox, 30, 1, false)

	return tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(boardRow, 0, 1, true).
		AddItem(a.hint, 1, 0, false)
}

func (a *App) startGame() {
	a.notice = ""
	a.pages.RemovePage(pageOver)
	a.pages.SwitchToPage(pageGame)
	a.boardTable.Select(reversi.BoardSize/2, reversi.BoardSize/2)
	a.app.SetFocus(a.boardTable)
	a.refresh(a.sess.State())
}

// play is called when the player presses enter on a square.
func (a *App) play(pos reversi.Position) {
	st, err := a.sess.Play(pos)
	switch {
	case errors.Is(err, session.ErrRejected):
		a.notice = a.msg.Illegal
		a.refresh(st)
	case err != nil:
		log.Debug().Err(err).Str("pos", pos.String()).Msg("move ignored")
	}
}

// handleEvent runs after every accepted move or reset.
func (a *App) handleEvent(ev session.Event) {
	switch ev.Kind {
	case session.EventPassed:
		a.notice = fmt.Sprintf(a.msg.Passed, a.playerName(reversi.Opponent(ev.State.Current)))
	case session.EventReset:
		a.notice = ""
		a.pages.RemovePage(pageOver)
		a.pages.SwitchToPage(pageGame)
		a.app.SetFocus(a.boardTable)
	default:
		a.notice = ""
	}

	a.refresh(ev.State)

	if ev.Kind == session.EventEnded {
		a.showGameOver(ev.State)
	}
}

func (a *App) refresh(st session.State) {
	for row := 0; row < reversi.BoardSize; row++ {
		for col := 0; col < reversi.BoardSize; col++ {
			a.boardTable.SetCell(row+1, col+1, a.boardCell(st, row, col))
		}
	}

	if st.Ended {
		a.boardTable.SetTitle(fmt.Sprintf(" %s - %s ", a.msg.Title, a.msg.GameOver))
	} else {
		a.boardTable.SetTitle(fmt.Sprintf(" %s - %s ", a.msg.Title, fmt.Sprintf(a.msg.Turn, a.playerName(st.Current))))
	}

	text := fmt.Sprintf(a.msg.Score, a.msg.PlayerBlack, st.Black, a.msg.PlayerWhite, st.White)
	if a.notice != "" {
		text += "\n\n" + a.notice
	}
	a.scoreBox.SetText(text)
}

func (a *App) boardCell(st session.State, row, col int) *tview.TableCell {
	colors := a.cfg.Theme.Colors
	cell := tview.NewTableCell(a.pieceSymbol(st.Board[row][col]))
	cell.SetAlign(tview.AlignCenter)
	cell.SetBackgroundColor(tcell.PaletteColor(colors.BoardColor))

	switch st.Board[row][col] {
	case reversi.Black:
		cell.SetTextColor(tcell.PaletteColor(colors.BlackColor))
	case reversi.White:
		cell.SetTextColor(tcell.PaletteColor(colors.WhiteColor))
	default:
		if a.showHints && !st.Ended && st.IsLegal(reversi.Position{Row: row, Col: col}) {
			// Highlight valid moves
			cell.SetText(fmt.Sprintf(" %c ", a.cfg.Theme.Symbols.Hint))
			cell.SetTextColor(tcell.PaletteColor(colors.HintColor))
		}
	}

	return cell
}

func (a *App) showGameOver(st session.State) {
	result := a.msg.Draw
	if w := st.Winner(); w != reversi.Empty {
		result = fmt.Sprintf(a.msg.Winner, a.playerName(w))
	}

	modal := tview.NewModal().
		SetText(fmt.Sprintf("%s\n%s\n%s", a.msg.GameOver, result,
			fmt.Sprintf(a.msg.Score, a.msg.PlayerBlack, st.Black, a.msg.PlayerWhite, st.White))).
		AddButtons([]string{a.msg.NewGame, a.msg.Quit}).
		SetDoneFunc(func(buttonIndex int, buttonLabel string) {
			if buttonIndex == 0 {
				a.sess.Reset()
			} else {
				a.app.Stop()
			}
		})

	a.pages.AddPage(pageOver, modal, false, true)
	a.app.SetFocus(modal)
}

func (a *App) pieceSymbol(piece reversi.Cell) string {
	s := a.cfg.Theme.Symbols
	switch piece {
	case reversi.Black:
		return fmt.Sprintf(" %c ", s.BlackDisc)
	case reversi.White:
		return fmt.Sprintf(" %c ", s.WhiteDisc)
	default:
		return fmt.Sprintf(" %c ", s.EmptySquare)
	}
}

func (a *App) playerName(c reversi.Cell) string {
	if c == reversi.White {
		return a.msg.PlayerWhite
	}

	return a.msg.PlayerBlack
}
