package command

import (
	"errors"
	"fmt"
	"strconv"
)

// Dispatch errors
var (
	ErrArity          = errors.New("wrong number of arguments")
	ErrBadArgument    = errors.New("invalid argument")
	ErrDuplicateVerb  = errors.New("verb already registered")
	ErrInvalidCommand = errors.New("invalid command")
)

// Result tells the caller what to do after a command ran.
type Result uint8

const (
	// ResultNone means keep running.
	ResultNone Result = iota
	// ResultQuit means leave the input loop.
	ResultQuit
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Target is the application state commands act on.
type Target interface {
	// ScrollUp scrolls the focused page up.
	ScrollUp()
	// ScrollDown scrolls the focused page down.
	ScrollDown()
	// SetFocPage focuses page i. Out-of-range indexes are ignored.
	SetFocPage(i int)
	// SwitchNextPage focuses the next page, wrapping around.
	SwitchNextPage()
	// SwitchPrevPage focuses the previous page, wrapping around.
	SwitchPrevPage()
	// Render redraws the screen.
	Render() error
}

// ArgType defines the type of a command argument.
type ArgType uint8

const (
	// ArgUnsigned is a non-negative decimal integer.
	ArgUnsigned ArgType = iota
	// ArgString is taken verbatim.
	ArgString
)

// String returns a string representation of the argument type.
func (t ArgType) String() string {
	switch t {
	case ArgUnsigned:
		return "unsigned"
	case ArgString:
		return "string"
	default:
		return "unknown"
	}
}

// Arg defines a positional command argument.
type Arg struct {
	// Name is the argument identifier used in usage text.
	Name string

	// Type is the argument type.
	Type ArgType
}

// Parse converts a raw token into the argument's value.
// ArgUnsigned yields an int.
func (a Arg) Parse(raw string) (any, error) {
	switch a.Type {
	case ArgUnsigned:
		n, err := strconv.ParseUint(raw, 10, strconv.IntSize-1)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be an unsigned integer, got %q", ErrBadArgument, a.Name, raw)
		}
		return int(n), nil
	case ArgString:
		return raw, nil
	default:
		return nil, fmt.Errorf("%w: %s has unknown type %s", ErrBadArgument, a.Name, a.Type)
	}
}

// Handler executes a command with parsed arguments.
type Handler func(t Target, args []any) (Result, error)

// Command is a verb the dispatcher understands.
type Command struct {
	// Verb is the first token of the command line (e.g., "scroll_down").
	Verb string

	// Description explains the command.
	Description string

	// Args lists the positional arguments. Their count is the arity.
	Args []Arg

	// Handler executes the command.
	Handler Handler
}

// Validate checks that the command is well-formed.
func (c *Command) Validate() error {
	if c.Verb == "" {
		return fmt.Errorf("%w: empty verb", ErrInvalidCommand)
	}
	if c.Handler == nil {
		return fmt.Errorf("%w: %s has no handler", ErrInvalidCommand, c.Verb)
	}
	return nil
}

// Usage returns the command synopsis, e.g. "switch_page <index>".
func (c *Command) Usage() string {
	usage := c.Verb
	for _, a := range c.Args {
		usage += " <" + a.Name + ">"
	}
	return usage
}

// parseArgs checks arity and converts every token.
func (c *Command) parseArgs(tokens []string) ([]any, error) {
	if len(tokens) != len(c.Args) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d (usage: %s)", ErrArity, c.Verb, len(c.Args), len(tokens), c.Usage())
	}
	out := make([]any, len(tokens))
	for i, raw := range tokens {
		v, err := c.Args[i].Parse(raw)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
