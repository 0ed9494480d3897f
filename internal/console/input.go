package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// Input reads player answers one line at a time.
type Input struct {
	reader *bufio.Reader
}

func NewInput(r io.Reader) *Input {
	return &Input{
		reader: bufio.NewReader(r),
	}
}

// ReadLine - returns the next line with surrounding whitespace removed.
// Running out of input yields apperror.ErrInputClosed.
func (that *Input) ReadLine() (string, error) {
	line, err := that.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read line: %w", err)
		}

		// last line without a trailing newline
		if line != "" {
			return strings.TrimSpace(line), nil
		}

		return "", apperror.ErrInputClosed
	}

	return strings.TrimSpace(line), nil
}
