package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	gridSpacer  = "   |   |   "
	gridDivider = "___|___|___"
)

// Options configure a Screen.
type Options struct {
	Profile     termenv.Profile
	ClearScreen bool
	Palette     Palette
}

// Screen draws the board and prints prompts and notices.
type Screen struct {
	output  *termenv.Output
	banner  lipgloss.Style
	palette Palette
	clear   bool
}

func NewScreen(w io.Writer, opts Options) *Screen {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(opts.Profile))
	renderer.SetColorProfile(opts.Profile)

	return &Screen{
		output: termenv.NewOutput(w, termenv.WithProfile(opts.Profile)),
		banner: renderer.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(opts.Palette.Title)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(opts.Palette.Title)).
			Padding(0, 2),
		palette: opts.Palette,
		clear:   opts.ClearScreen,
	}
}

// Clear - wipes the terminal when clearing is enabled.
func (that *Screen) Clear() {
	if that.clear {
		that.output.ClearScreen()
	}
}

// Banner - clears the terminal and shows the title box followed by text.
func (that *Screen) Banner(title, text string) {
	that.Clear()
	fmt.Fprintln(that.output, that.banner.Render(title))
	fmt.Fprintln(that.output, text)
}

// Render - clears the terminal and draws the grid.
func (that *Screen) Render(frame entity.Frame) {
	that.Clear()
	fmt.Fprint(that.output, that.grid(frame))
}

// Prompt - prints message and leaves the cursor on the same line.
func (that *Screen) Prompt(message string) {
	fmt.Fprint(that.output, message)
}

// Notice - prints each line on its own.
func (that *Screen) Notice(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(that.output, line)
	}
}

func (that *Screen) grid(frame entity.Frame) string {
	var b strings.Builder

	b.WriteString("\n")
	for row := range 3 {
		b.WriteString(gridSpacer + "\n")
		fmt.Fprintf(&b, " %s | %s | %s \n",
			that.cell(frame, row*3),
			that.cell(frame, row*3+1),
			that.cell(frame, row*3+2),
		)

		if row < 2 {
			b.WriteString(gridDivider + "\n")
		}
	}
	b.WriteString(gridSpacer + "\n\n")

	return b.String()
}

func (that *Screen) cell(frame entity.Frame, index int) string {
	label := frame.Label(index)
	if !frame.Colorize || that.output.Profile == termenv.Ascii {
		return label
	}

	switch frame.Cells[index] {
	case entity.CellX:
		return that.output.String(label).Foreground(that.output.Color(that.palette.PlayerX)).String()
	case entity.CellO:
		return that.output.String(label).Foreground(that.output.Color(that.palette.PlayerO)).String()
	default:
		return label
	}
}

// ParseProfile - maps a color profile name to a termenv profile. "auto"
// detects what w supports and honours NO_COLOR.
func ParseProfile(name string, w io.Writer) (termenv.Profile, error) {
	switch strings.ToLower(name) {
	case "auto", "":
		return termenv.NewOutput(w).EnvColorProfile(), nil
	case "truecolor":
		return termenv.TrueColor, nil
	case "ansi256":
		return termenv.ANSI256, nil
	case "ansi":
		return termenv.ANSI, nil
	case "none", "ascii":
		return termenv.Ascii, nil
	default:
		return termenv.Ascii, fmt.Errorf("%w: %s", apperror.ErrUnknownColor, name)
	}
}

// IsTerminal - reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
