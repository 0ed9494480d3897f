package console

import (
	"bytes"
	"os"
	"testing"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const numberedGrid = `
   |   |   
 1 | 2 | 3 
___|___|___
   |   |   
 4 | 5 | 6 
___|___|___
   |   |   
 7 | 8 | 9 
   |   |   

`

func newTestScreen(profile termenv.Profile) (*Screen, *bytes.Buffer) {
	var buf bytes.Buffer

	return NewScreen(&buf, Options{Profile: profile, Palette: DefaultPalette()}), &buf
}

func TestScreen_Render(t *testing.T) {
	t.Run("Draws an empty numbered grid", func(t *testing.T) {
		// Given: a plain screen
		screen, buf := newTestScreen(termenv.Ascii)

		// When: rendering a fresh board
		screen.Render(entity.Frame{})

		// Then: every cell shows its position
		assert.Equal(t, numberedGrid, buf.String())
	})

	t.Run("Blank layout hides positions but keeps marks", func(t *testing.T) {
		// Given: a plain screen
		screen, buf := newTestScreen(termenv.Ascii)
		frame := entity.Frame{Layout: entity.LayoutBlank}
		frame.Cells[0] = entity.CellX
		frame.Cells[8] = entity.CellO

		// When: rendering
		screen.Render(frame)

		// Then: only the marks are visible
		assert.Contains(t, buf.String(), " X |   |   \n")
		assert.Contains(t, buf.String(), "   |   | O \n")
		assert.NotContains(t, buf.String(), "5")
	})

	t.Run("Colorizes marks only", func(t *testing.T) {
		// Given: a 256 color screen
		screen, buf := newTestScreen(termenv.ANSI256)
		frame := entity.Frame{Colorize: true}
		frame.Cells[0] = entity.CellX
		frame.Cells[1] = entity.CellO

		// When: rendering with highlighting on
		screen.Render(frame)

		// Then: X and O carry distinct colors and empty cells stay plain
		out := buf.String()
		assert.Contains(t, out, " \x1b[38;5;160mX\x1b[0m | \x1b[38;5;26mO\x1b[0m | 3 \n")
		assert.Contains(t, out, " 4 | 5 | 6 \n")
	})

	t.Run("Stays plain while highlighting is off", func(t *testing.T) {
		// Given: a 256 color screen
		screen, buf := newTestScreen(termenv.ANSI256)
		frame := entity.Frame{}
		frame.Cells[4] = entity.CellX

		// When: rendering with highlighting off
		screen.Render(frame)

		// Then: no escape codes are written
		assert.NotContains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), " 4 | X | 6 \n")
	})

	t.Run("Falls back to plain marks without color support", func(t *testing.T) {
		// Given: a screen without color support
		screen, buf := newTestScreen(termenv.Ascii)
		frame := entity.Frame{Colorize: true}
		frame.Cells[2] = entity.CellO

		// When: rendering with highlighting on
		screen.Render(frame)

		// Then: the mark is written as a plain character
		assert.NotContains(t, buf.String(), "\x1b[")
		assert.Contains(t, buf.String(), " 1 | 2 | O \n")
	})
}

func TestScreen_Text(t *testing.T) {
	t.Run("Prompt keeps the cursor on the line", func(t *testing.T) {
		screen, buf := newTestScreen(termenv.Ascii)

		screen.Prompt("X's turn: ")

		assert.Equal(t, "X's turn: ", buf.String())
	})

	t.Run("Notice prints one line each", func(t *testing.T) {
		screen, buf := newTestScreen(termenv.Ascii)

		screen.Notice("", "X wins!")

		assert.Equal(t, "\nX wins!\n", buf.String())
	})

	t.Run("Banner boxes the title", func(t *testing.T) {
		screen, buf := newTestScreen(termenv.Ascii)

		screen.Banner("Tic-Tac-Toe", "press enter")

		assert.Contains(t, buf.String(), "Tic-Tac-Toe")
		assert.Contains(t, buf.String(), "╭")
		assert.Contains(t, buf.String(), "press enter\n")
	})

	t.Run("Clears only when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		screen := NewScreen(&buf, Options{Profile: termenv.ANSI, ClearScreen: true, Palette: DefaultPalette()})

		screen.Clear()
		assert.Contains(t, buf.String(), "\x1b[2J")

		quiet, quietBuf := newTestScreen(termenv.ANSI)
		quiet.Clear()
		assert.Empty(t, quietBuf.String())
	})
}

func TestParseProfile(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		for name, expected := range map[string]termenv.Profile{
			"truecolor": termenv.TrueColor,
			"ANSI256":   termenv.ANSI256,
			"ansi":      termenv.ANSI,
			"none":      termenv.Ascii,
		} {
			profile, err := ParseProfile(name, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, expected, profile, name)
		}
	})

	t.Run("Auto on a non terminal means no color", func(t *testing.T) {
		t.Setenv("CLICOLOR_FORCE", "0")

		profile, err := ParseProfile("auto", &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, termenv.Ascii, profile)
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseProfile("sepia", &bytes.Buffer{})
		require.ErrorIs(t, err, apperror.ErrUnknownColor)
	})
}

func TestPalette(t *testing.T) {
	t.Run("Embedded defaults", func(t *testing.T) {
		palette := DefaultPalette()

		assert.Equal(t, "160", palette.PlayerX)
		assert.Equal(t, "26", palette.PlayerO)
		assert.NotEmpty(t, palette.Title)
	})

	t.Run("File overrides only what it sets", func(t *testing.T) {
		// Given: a styles file that only changes O
		path := t.TempDir() + "/styles.yaml"
		require.NoError(t, os.WriteFile(path, []byte("player-o: \"#00ff00\"\n"), 0o600))

		// When: loading it
		palette, err := LoadPalette(path)

		// Then: O changed and X kept its default
		require.NoError(t, err)
		assert.Equal(t, "#00ff00", palette.PlayerO)
		assert.Equal(t, "160", palette.PlayerX)
	})

	t.Run("Broken file", func(t *testing.T) {
		path := t.TempDir() + "/styles.yaml"
		require.NoError(t, os.WriteFile(path, []byte("player-x: [\n"), 0o600))

		_, err := LoadPalette(path)

		require.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadPalette(t.TempDir() + "/nope.yaml")

		require.Error(t, err)
	})
}
