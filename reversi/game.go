package reversi

// Game represents the game state
type Game struct {
	board     Board
	current   Cell
	ended     bool
	passed    bool
	moveCount int
}

// NewGame initializes a new game with the starting position
func NewGame() *Game {
	g := &Game{}
	g.Reset()

	return g
}

// NewGameFromBoard starts from an arbitrary position with the given player to move.
// Pass and end flags are not evaluated until ResolveTurn or the next move.
func NewGameFromBoard(b Board, current Cell) *Game {
	if current != White {
		current = Black
	}

	return &Game{
		board:   b,
		current: current,
	}
}

// Reset resets the game state to the initial state
func (g *Game) Reset() {
	g.board = NewBoard()
	g.current = Black
	g.ended = false
	g.passed = false
	g.moveCount = 0
}

// IsValidPosition reports whether (row, col) lies on the board.
func IsValidPosition(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// Distance counts the steps between two squares lying on one of the eight scan
// lines: the row delta when the rows differ, otherwise the column delta.
func Distance(r1, c1, r2, c2 int) int {
	dr := abs(r1 - r2)
	if dr > 0 {
		return dr
	}

	return abs(c1 - c2)
}

// IsPlayable reports whether the current player may place a disc at (row, col),
// together with every direction in which the placement would flip discs.
func (g *Game) IsPlayable(row, col int) (bool, []Direction) {
	dirs := g.flipLines(row, col, g.current)

	return len(dirs) > 0, dirs
}

// flipLines returns the directions from (row, col) that bracket at least one
// opposing disc with a disc of player.
func (g *Game) flipLines(row, col int, player Cell) []Direction {
	if !IsValidPosition(row, col) || g.board[row][col] != Empty {
		return nil
	}
	opponent := Opponent(player)

	var dirs []Direction
	for _, dir := range directions {
		r, c := row+dir.DRow, col+dir.DCol
		for IsValidPosition(r, c) && g.board[r][c] == opponent {
			r += dir.DRow
			c += dir.DCol
		}

		if IsValidPosition(r, c) && Distance(row, col, r, c) > 1 && g.board[r][c] == player {
			dirs = append(dirs, dir)
		}
	}

	return dirs
}

// AttemptMove places a disc for the current player and flips every bracketed
// line. An illegal move returns false and leaves the game untouched.
func (g *Game) AttemptMove(row, col int) bool {
	ok, dirs := g.IsPlayable(row, col)
	if !ok {
		return false
	}

	player := g.current
	opponent := Opponent(player)
	g.board[row][col] = player

	for _, dir := range dirs {
		r, c := row+dir.DRow, col+dir.DCol
		for g.board[r][c] == opponent {
			g.board[r][c] = player
			r += dir.DRow
			c += dir.DCol
		}
	}

	g.moveCount++
	g.switchTurn()
	g.ResolveTurn()

	return true
}

// ResolveTurn settles whose turn it is. If the player to move has no legal
// move the turn passes back to the opponent; if neither side can move the game ends.
func (g *Game) ResolveTurn() {
	if g.hasMoves(g.current) {
		g.passed = false
		g.ended = false

		return
	}

	g.switchTurn()
	g.passed = true
	if !g.hasMoves(g.current) {
		g.ended = true
	}
}

// switchTurn switches the current player
func (g *Game) switchTurn() {
	g.current = Opponent(g.current)
}

func (g *Game) hasMoves(player Cell) bool {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if len(g.flipLines(row, col, player)) > 0 {
				return true
			}
		}
	}

	return false
}

// Flips returns the discs that would change colour if the current player
// played at (row, col). It is empty for an illegal move.
func (g *Game) Flips(row, col int) []Position {
	var flips []Position
	opponent := Opponent(g.current)

	for _, dir := range g.flipLines(row, col, g.current) {
		r, c := row+dir.DRow, col+dir.DCol
		for g.board[r][c] == opponent {
			flips = append(flips, Position{Row: r, Col: c})
			r += dir.DRow
			c += dir.DCol
		}
	}

	return flips
}

// LegalMoves returns the current player's legal moves in row-major order
func (g *Game) LegalMoves() []Position {
	var moves []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if ok, _ := g.IsPlayable(row, col); ok {
				moves = append(moves, Position{Row: row, Col: col})
			}
		}
	}

	return moves
}

// PositionsOf lists the squares holding c in row-major order.
func (g *Game) PositionsOf(c Cell) []Position {
	var positions []Position
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if g.board[row][col] == c {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}

	return positions
}

func (g *Game) ScoreOf(c Cell) int {
	return g.board.Count(c)
}

// Score returns the disc counts for black and white
func (g *Game) Score() (int, int) {
	return g.ScoreOf(Black), g.ScoreOf(White)
}

// Winner returns the player with more discs, or Empty for a tie.
func (g *Game) Winner() Cell {
	black, white := g.Score()
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	}

	return Empty
}

// Board returns a copy of the board.
func (g *Game) Board() Board {
	return g.board
}

func (g *Game) CurrentPlayer() Cell {
	return g.current
}

func (g *Game) Ended() bool {
	return g.ended
}

// HasPassed reports whether the last turn change skipped a player with no moves.
func (g *Game) HasPassed() bool {
	return g.passed
}

// MoveCount is the number of discs placed since the start of the game.
func (g *Game) MoveCount() int {
	return g.moveCount
}

// Helper function to get absolute value
func abs(a int) int {
	if a < 0 {
		return -a
	}

	return a
}
