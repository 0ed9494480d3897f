package usecase

const (
	gameTitle     = "Tic-Tac-Toe"
	gameStartInfo = `
Get three in a row, across, down or diagonally, to win.

  1-9                  mark that cell
  l, toggle_layout     show or hide the cell numbers
  c, toggle_color      highlight X and O
  r, restart, reset    start over
  q, quit, exit        leave the game
`
	gameStartPrompt = "Press enter to start..."

	turnPrompt      = "%s's turn: "
	playAgainPrompt = "Play again? (y/n): "

	InvalidMoveInfo = "Invalid move. Pick an open cell from 1 to 9."
	winInfo         = "%s wins!"
	drawInfo        = "Nobody wins. Cat's game!"
)
