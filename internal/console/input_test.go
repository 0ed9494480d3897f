package console

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInput_ReadLine(t *testing.T) {
	t.Run("Trims every line", func(t *testing.T) {
		// Given: input with padding, empty lines and a CRLF ending
		input := NewInput(strings.NewReader("  5 \n\n\tq\r\n"))

		// Then: lines come back trimmed, one at a time
		for _, expected := range []string{"5", "", "q"} {
			line, err := input.ReadLine()
			require.NoError(t, err)
			assert.Equal(t, expected, line)
		}
	})

	t.Run("Returns the last line without a newline", func(t *testing.T) {
		// Given: input that ends without a newline
		input := NewInput(strings.NewReader("restart"))

		// When: reading twice
		line, err := input.ReadLine()
		require.NoError(t, err)
		assert.Equal(t, "restart", line)

		_, err = input.ReadLine()

		// Then: the second read reports closed input
		require.ErrorIs(t, err, apperror.ErrInputClosed)
	})

	t.Run("Wraps read failures", func(t *testing.T) {
		// Given: a reader that fails
		failure := errors.New("device gone")
		input := NewInput(iotest.ErrReader(failure))

		// When: reading
		_, err := input.ReadLine()

		// Then: the failure is propagated and is not mistaken for closed input
		require.ErrorIs(t, err, failure)
		assert.NotErrorIs(t, err, apperror.ErrInputClosed)
	})
}
