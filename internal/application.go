package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/console"
	"github.com/rocketscienceinc/tictactoe-cli/internal/usecase"
)

// RunApp - runs the game on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	received := make(chan os.Signal, 1)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			received <- sig
			cancel()
		case <-ctx.Done():
		}
	}()

	screen, err := newScreen(conf.Display)
	if err != nil {
		return fmt.Errorf("could not set up the screen: %w", err)
	}

	gameManager := usecase.NewGameManager(logger, console.NewInput(os.Stdin), screen)

	log.Debug("Starting game")

	if err = gameManager.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			select {
			case sig := <-received:
				return &apperror.SignalError{Signal: sig}
			default:
			}
		}

		return fmt.Errorf("game stopped: %w", err)
	}

	return nil
}

func newScreen(display config.Display) (*console.Screen, error) {
	profile, err := console.ParseProfile(display.ColorProfile, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("invalid color profile: %w", err)
	}

	clearScreen, err := display.ShouldClear(console.IsTerminal(os.Stdout))
	if err != nil {
		return nil, fmt.Errorf("invalid clear screen mode: %w", err)
	}

	palette := console.DefaultPalette()
	if display.StylesPath != "" {
		if palette, err = console.LoadPalette(display.StylesPath); err != nil {
			return nil, fmt.Errorf("could not load styles: %w", err)
		}
	}

	return console.NewScreen(os.Stdout, console.Options{
		Profile:     profile,
		ClearScreen: clearScreen,
		Palette:     palette,
	}), nil
}
