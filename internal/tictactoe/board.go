package tictactoe

import (
	"strconv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	// five marks is the fewest that can complete a line
	minTurnsToWin = 5
	maxTurns      = entity.BoardSize
)

type renderer interface {
	Render(frame entity.Frame)
}

// Board holds one game: the grid, whose turn it is and how the grid is shown.
type Board struct {
	grid          [entity.BoardSize]entity.Cell
	currentPlayer entity.Player
	turn          int
	state         entity.BoardState
	layout        entity.Layout
	colorize      bool

	renderer renderer
}

// NewBoard - creates an empty numbered board with X to move.
func NewBoard(renderer renderer) *Board {
	return &Board{
		currentPlayer: entity.PlayerX,
		turn:          1,
		state:         entity.StatePlaying,
		layout:        entity.LayoutNumbered,
		renderer:      renderer,
	}
}

// Mark - places the current player's mark on the 1-based cell named by selector.
// It reports false and leaves the grid untouched when the selector is not a
// number, is off the board or names an occupied cell.
func (that *Board) Mark(selector string) bool {
	if that.state.IsTerminal() {
		return false
	}

	number, err := strconv.Atoi(selector)
	if err != nil {
		return false
	}

	index := number - 1
	if index < 0 || index >= len(that.grid) {
		return false
	}

	if !that.grid[index].IsEmpty() {
		return false
	}

	that.grid[index] = that.currentPlayer.Mark()

	return true
}

// NextTurn - hands the move to the other player.
func (that *Board) NextTurn() {
	that.currentPlayer = that.currentPlayer.Opponent()
	that.turn++
}

// CheckWinner - looks for a completed line of the player who just moved.
// A full board without such a line ends the game in a draw.
func (that *Board) CheckWinner() (entity.Player, bool) {
	if that.turn < minTurnsToWin {
		return 0, false
	}

	for _, line := range entity.WinLines {
		if that.matchLine(line) {
			that.state = entity.StateWin
			return that.currentPlayer, true
		}
	}

	if that.turn == maxTurns {
		that.state = entity.StateDraw
	}

	return 0, false
}

// ToggleLayout - switches empty cells between position numbers and blanks and redraws.
func (that *Board) ToggleLayout() {
	that.layout = that.layout.Toggle()
	that.Draw()
}

// ToggleColor - switches mark highlighting and redraws.
func (that *Board) ToggleColor() {
	that.colorize = !that.colorize
	that.Draw()
}

// Draw - hands the current frame to the renderer.
func (that *Board) Draw() {
	if that.renderer == nil {
		return
	}

	that.renderer.Render(that.Frame())
}

// Frame - returns a copy of everything needed to display the board.
func (that *Board) Frame() entity.Frame {
	return entity.Frame{
		Cells:    that.grid,
		Layout:   that.layout,
		Colorize: that.colorize,
	}
}

func (that *Board) Cells() [entity.BoardSize]entity.Cell {
	return that.grid
}

func (that *Board) CurrentPlayer() entity.Player {
	return that.currentPlayer
}

func (that *Board) Turn() int {
	return that.turn
}

func (that *Board) State() entity.BoardState {
	return that.state
}

func (that *Board) Layout() entity.Layout {
	return that.layout
}

func (that *Board) Colorize() bool {
	return that.colorize
}

func (that *Board) matchLine(line [3]int) bool {
	mark := that.currentPlayer.Mark()

	return that.grid[line[0]] == mark && that.grid[line[1]] == mark && that.grid[line[2]] == mark
}
