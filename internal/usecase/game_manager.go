package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
)

type inputSource interface {
	ReadLine() (string, error)
}

type screen interface {
	Render(frame entity.Frame)
	Banner(title, text string)
	Prompt(message string)
	Notice(lines ...string)
}

// GameManager runs the prompt loop: it reads commands, applies them to the
// board and starts new games until the player quits.
type GameManager struct {
	logger *slog.Logger
	input  inputSource
	screen screen

	board *tictactoe.Board
	games int
}

func NewGameManager(logger *slog.Logger, input inputSource, screen screen) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),
		input:  input,
		screen: screen,
	}
}

// Run - shows the start screen and plays games until the player quits.
// Quitting returns nil; running out of input returns apperror.ErrInputClosed.
func (that *GameManager) Run(ctx context.Context) error {
	if err := that.showMenu(ctx); err != nil {
		return that.finish(err)
	}

	for {
		err := that.playGame(ctx)
		if err == nil {
			err = that.checkPlayAgain(ctx)
		}

		if err != nil {
			return that.finish(err)
		}
	}
}

// Board - returns the board of the current game, nil before the first one.
func (that *GameManager) Board() *tictactoe.Board {
	return that.board
}

func (that *GameManager) showMenu(ctx context.Context) error {
	that.screen.Banner(gameTitle, gameStartInfo)
	that.screen.Prompt(gameStartPrompt)

	// any answer starts the game
	if _, err := that.readLine(ctx); err != nil {
		return err
	}

	return nil
}

// playGame - plays one board until somebody wins or the grid fills up.
func (that *GameManager) playGame(ctx context.Context) error {
	that.newBoard()

	for that.board.State() == entity.StatePlaying {
		line, command, err := that.prompt(ctx, fmt.Sprintf(turnPrompt, that.board.CurrentPlayer()))
		if err != nil {
			return err
		}

		switch command {
		case CommandRestart:
			that.logger.Info("game restarted", "turn", that.board.Turn())
			that.newBoard()
		case CommandToggleLayout:
			that.board.ToggleLayout()
		case CommandToggleColor:
			that.board.ToggleColor()
		default:
			that.makeMove(line)
		}
	}

	return nil
}

func (that *GameManager) makeMove(selector string) {
	log := that.logger.With("method", "makeMove", "player", that.board.CurrentPlayer().String(), "turn", that.board.Turn())

	if !that.board.Mark(selector) {
		log.Debug("invalid move", "selector", selector)
		that.screen.Notice(InvalidMoveInfo)

		return
	}

	log.Debug("move accepted", "selector", selector)
	that.board.Draw()

	if winner, ok := that.board.CheckWinner(); ok {
		log.Info("game won", "winner", winner.String())
		that.screen.Notice("", fmt.Sprintf(winInfo, winner))

		return
	}

	if that.board.State() == entity.StateDraw {
		log.Info("game drawn")
		that.screen.Notice("", drawInfo)

		return
	}

	that.board.NextTurn()
}

// checkPlayAgain - asks until the answer is yes or no. A restart command
// counts as yes.
func (that *GameManager) checkPlayAgain(ctx context.Context) error {
	for {
		line, command, err := that.prompt(ctx, playAgainPrompt)
		if err != nil {
			return err
		}

		if command == CommandRestart {
			return nil
		}

		switch ParseAnswer(line) {
		case AnswerYes:
			return nil
		case AnswerNo:
			return apperror.ErrQuit
		case AnswerUnknown:
		}
	}
}

// prompt - shows message and reads until the line is not empty. Quit
// commands are turned into apperror.ErrQuit.
func (that *GameManager) prompt(ctx context.Context, message string) (string, Command, error) {
	for {
		that.screen.Prompt(message)

		line, err := that.readLine(ctx)
		if err != nil {
			return "", CommandEmpty, err
		}

		switch command := ParseCommand(line); command {
		case CommandEmpty:
			continue
		case CommandQuit:
			return line, command, apperror.ErrQuit
		default:
			return line, command, nil
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine - waits for the next line or for ctx to end. A read abandoned on
// cancellation is never resumed; the caller stops reading after that.
func (that *GameManager) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("game interrupted: %w", err)
	}

	results := make(chan readResult, 1)
	go func() {
		line, err := that.input.ReadLine()
		results <- readResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("game interrupted: %w", ctx.Err())
	case result := <-results:
		if result.err != nil {
			return "", fmt.Errorf("failed to read input: %w", result.err)
		}

		return result.line, nil
	}
}

func (that *GameManager) newBoard() {
	that.board = tictactoe.NewBoard(that.screen)
	that.games++

	that.logger.Info("game started", "game", that.games)
	that.board.Draw()
}

func (that *GameManager) finish(err error) error {
	log := that.logger.With("method", "finish")

	switch {
	case errors.Is(err, apperror.ErrQuit):
		log.Info("player quit", "games", that.games)
		return nil
	case errors.Is(err, apperror.ErrInputClosed):
		log.Info("input closed", "games", that.games)
	case errors.Is(err, context.Canceled):
		log.Info("game interrupted", "games", that.games)
	default:
		log.Error("game loop stopped", "error", err)
	}

	return err
}
