package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dshills/ravana/internal/logging"
)

// Registry maps verbs to commands and dispatches command lines.
type Registry struct {
	commands map[string]*Command
	log      *logging.Logger
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]*Command),
		log:      logging.Component("dispatcher"),
	}
}

// Default returns a registry holding the built-in commands.
func Default() *Registry {
	r := NewRegistry()
	for _, cmd := range builtins() {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a command. Verbs must be unique.
func (r *Registry) Register(cmd *Command) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if _, ok := r.commands[cmd.Verb]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateVerb, cmd.Verb)
	}
	r.commands[cmd.Verb] = cmd
	return nil
}

// Get returns the command for a verb, or nil.
func (r *Registry) Get(verb string) *Command {
	return r.commands[verb]
}

// Has reports whether a verb is registered.
func (r *Registry) Has(verb string) bool {
	_, ok := r.commands[verb]
	return ok
}

// Verbs returns all registered verbs, sorted.
func (r *Registry) Verbs() []string {
	out := make([]string, 0, len(r.commands))
	for v := range r.commands {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Exec tokenizes line on whitespace and runs the command named by the
// first token. Empty lines and unknown verbs do nothing.
func (r *Registry) Exec(t Target, line string) (Result, error) {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return ResultNone, nil
	}

	cmd, ok := r.commands[tokens[0]]
	if !ok {
		r.log.Warn("unknown command %q", tokens[0])
		return ResultNone, nil
	}

	args, err := cmd.parseArgs(tokens[1:])
	if err != nil {
		return ResultNone, err
	}

	r.log.Debug("exec %s %v", cmd.Verb, args)
	return cmd.Handler(t, args)
}
