package usecase

import "strings"

// Command is what a line typed at the move prompt asks for.
type Command uint8

const (
	CommandEmpty Command = iota
	CommandQuit
	CommandRestart
	CommandToggleLayout
	CommandToggleColor
	CommandMove
)

func (that Command) String() string {
	switch that {
	case CommandEmpty:
		return "empty"
	case CommandQuit:
		return "quit"
	case CommandRestart:
		return "restart"
	case CommandToggleLayout:
		return "toggle_layout"
	case CommandToggleColor:
		return "toggle_color"
	default:
		return "move"
	}
}

// ParseCommand - classifies a trimmed input line. Keywords are case-insensitive;
// anything unrecognised is a move attempt.
func ParseCommand(line string) Command {
	switch strings.ToLower(line) {
	case "":
		return CommandEmpty
	case "q", "quit", "exit":
		return CommandQuit
	case "r", "restart", "reset":
		return CommandRestart
	case "l", "toggle_layout":
		return CommandToggleLayout
	case "c", "toggle_color":
		return CommandToggleColor
	default:
		return CommandMove
	}
}

// Answer is a reply to the play-again question.
type Answer uint8

const (
	AnswerUnknown Answer = iota
	AnswerYes
	AnswerNo
)

// ParseAnswer - classifies a reply to the play-again question.
func ParseAnswer(line string) Answer {
	switch strings.ToLower(line) {
	case "y", "yes":
		return AnswerYes
	case "n", "no":
		return AnswerNo
	default:
		return AnswerUnknown
	}
}
