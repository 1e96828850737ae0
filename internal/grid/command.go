package grid

import "fmt"

// Command names a positional movement on the grid.
type Command string

// The full command set. Keep commandRules in sync.
const (
	Prev        Command = "prev"
	Next        Command = "next"
	Up          Command = "up"
	Down        Command = "down"
	Left        Command = "left"
	Right       Command = "right"
	First       Command = "first"
	Last        Command = "last"
	StartOfLine Command = "startOfLine"
	EndOfLine   Command = "endOfLine"
	PageUp      Command = "pageUp"
	PageDown    Command = "pageDown"
)

var allCommands = []Command{
	Prev, Next, Up, Down, Left, Right,
	First, Last, StartOfLine, EndOfLine, PageUp, PageDown,
}

// commandRules maps each command to its Stepper rule.
var commandRules = map[Command]func(*Stepper, int) int{
	Prev:        (*Stepper).Prev,
	Next:        (*Stepper).Next,
	Up:          (*Stepper).Up,
	Down:        (*Stepper).Down,
	Left:        (*Stepper).Left,
	Right:       (*Stepper).Right,
	First:       func(s *Stepper, _ int) int { return s.First() },
	Last:        func(s *Stepper, _ int) int { return s.Last() },
	StartOfLine: (*Stepper).StartOfLine,
	EndOfLine:   (*Stepper).EndOfLine,
	PageUp:      (*Stepper).PageUp,
	PageDown:    (*Stepper).PageDown,
}

// Commands returns every command in declaration order.
func Commands() []Command {
	out := make([]Command, len(allCommands))
	copy(out, allCommands)
	return out
}

// Valid reports whether c is one of the known commands.
func (c Command) Valid() bool {
	_, ok := commandRules[c]
	return ok
}

// IsCommand reports whether v names a command. It accepts any value so that
// callers holding an untyped argument can test it; only strings and Commands
// can match.
func IsCommand(v any) bool {
	_, ok := asCommand(v)
	return ok
}

// ParseCommand converts s into a Command.
func ParseCommand(s string) (Command, error) {
	c := Command(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown command %q (valid: %v)", s, allCommands)
	}
	return c, nil
}

func asCommand(v any) (Command, bool) {
	var c Command
	switch v := v.(type) {
	case Command:
		c = v
	case string:
		c = Command(v)
	default:
		return "", false
	}
	return c, c.Valid()
}
