package entity

import "strconv"

// BoardSize is the number of cells on the grid.
const BoardSize = 9

// Cell is the content of one board position.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// IsEmpty - reports whether nobody has marked the cell yet.
func (that Cell) IsEmpty() bool {
	return that == CellEmpty
}

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return ""
	}
}

// BoardState is the lifecycle of a single game. Win and Draw are terminal.
type BoardState uint8

const (
	StatePlaying BoardState = iota
	StateWin
	StateDraw
)

// IsTerminal - reports whether the game has ended.
func (that BoardState) IsTerminal() bool {
	return that == StateWin || that == StateDraw
}

func (that BoardState) String() string {
	switch that {
	case StatePlaying:
		return "playing"
	case StateWin:
		return "win"
	case StateDraw:
		return "draw"
	default:
		return "unknown"
	}
}

// Layout controls what an empty cell shows. It never affects occupancy.
type Layout uint8

const (
	LayoutNumbered Layout = iota
	LayoutBlank
)

// Toggle - returns the other layout.
func (that Layout) Toggle() Layout {
	if that == LayoutNumbered {
		return LayoutBlank
	}
	return LayoutNumbered
}

// Label - returns the text shown for the cell at index under this layout.
func (that Layout) Label(index int, cell Cell) string {
	if !cell.IsEmpty() {
		return cell.String()
	}

	if that == LayoutNumbered {
		return strconv.Itoa(index + 1)
	}

	return " "
}

func (that Layout) String() string {
	if that == LayoutBlank {
		return "blank"
	}
	return "numbered"
}

// Frame is everything a renderer needs to draw the board.
type Frame struct {
	Cells    [BoardSize]Cell
	Layout   Layout
	Colorize bool
}

// Label - returns the display text of the cell at index.
func (that Frame) Label(index int) string {
	return that.Layout.Label(index, that.Cells[index])
}

// WinLines are the rows, columns and diagonals that win when uniformly marked.
var WinLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}
