package entity

// Player is the side whose mark goes on the board.
type Player uint8

const (
	PlayerX Player = iota + 1
	PlayerO
)

// Opponent - returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

// Mark - returns the cell value this player places.
func (that Player) Mark() Cell {
	if that == PlayerX {
		return CellX
	}
	return CellO
}

func (that Player) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return "?"
	}
}
