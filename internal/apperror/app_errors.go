package apperror

import (
	"errors"
	"fmt"
	"os"
	"syscall"
)

var (
	ErrInputClosed      = errors.New("input closed")
	ErrQuit             = errors.New("player quit")
	ErrUnknownColor     = errors.New("unknown color profile")
	ErrUnknownClearMode = errors.New("unknown clear screen mode")
	ErrUnknownLogLevel  = errors.New("unknown log level")
)

// SignalError reports that the run was stopped by a signal.
type SignalError struct {
	Signal os.Signal
}

func (that *SignalError) Error() string {
	return fmt.Sprintf("interrupted by %s", that.Signal)
}

// ExitCode - returns the shell convention 128 + signal number.
func (that *SignalError) ExitCode() int {
	if sig, ok := that.Signal.(syscall.Signal); ok {
		return 128 + int(sig)
	}
	return 1
}
