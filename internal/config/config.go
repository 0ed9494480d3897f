package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type Config struct {
	LogLevel string  `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"warn"`
	LogFile  string  `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:""`
	Display  Display `yaml:"display"`
}

// Clear screen modes. "auto" clears only when stdout is a terminal.
const (
	ClearAuto   = "auto"
	ClearAlways = "always"
	ClearNever  = "never"
)

type Display struct {
	ColorProfile string `yaml:"color-profile" env:"TICTACTOE_COLOR_PROFILE" env-default:"auto"`
	ClearScreen  string `yaml:"clear-screen" env:"TICTACTOE_CLEAR_SCREEN" env-default:"auto"`
	StylesPath   string `yaml:"styles-path" env:"TICTACTOE_STYLES_PATH" env-default:""`
}

// MustLoad - load configuration from the config file at path, or from the
// environment alone when there is no such file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

// Load - same as MustLoad but returns the error.
func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}

		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to load config from environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// SlogLevel - maps LogLevel to a slog level.
func (that *Config) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(that.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning", "":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, fmt.Errorf("%w: %s", apperror.ErrUnknownLogLevel, that.LogLevel)
	}
}

// ShouldClear - decides whether the terminal is wiped before each render.
func (that *Display) ShouldClear(isTerminal bool) (bool, error) {
	switch strings.ToLower(that.ClearScreen) {
	case ClearAuto, "":
		return isTerminal, nil
	case ClearAlways:
		return true, nil
	case ClearNever:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %s", apperror.ErrUnknownClearMode, that.ClearScreen)
	}
}
