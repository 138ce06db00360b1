// Package mode maps a command line flag to the operation it runs.
package mode

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

var (
	ErrArgumentCount = errors.New("unexpected amount of flags, you can use only 0 or 1")
	ErrUnknownFlag   = errors.New("unknown flag")
	ErrNoDefaultMode = errors.New("no default mode is registered")
	ErrNoHandler     = errors.New("mode has no handler")
)

// UnknownFlagError holds the flag that matched no registered mode
type UnknownFlagError struct {
	Flag string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("%s '%s'", ErrUnknownFlag, e.Flag)
}

func (e *UnknownFlagError) Unwrap() error {
	return ErrUnknownFlag
}

//go:generate mockgen -source=registry.go -destination=../mocks/mode/mock_handler.go -package=mock_mode Handler

type Handler interface {
	Handle(ctx context.Context) error
}

// HandlerFunc adapts a function to a Handler
type HandlerFunc func(ctx context.Context) error

func (f HandlerFunc) Handle(ctx context.Context) error {
	return f(ctx)
}

// Mode is an operation selected by its short or long flag
type Mode struct {
	Short       string
	Long        string
	Description string
	// Default modes run when no flag is given
	Default bool
	Handler Handler
}

func (m Mode) matches(flag string) bool {
	if flag == "" {
		return false
	}
	return flag == m.Short || flag == m.Long
}

// Registry keeps modes in registration order.
// Lookups return the first match.
type Registry struct {
	modes []Mode
}

func NewRegistry(modes ...Mode) *Registry {
	registry := &Registry{}
	for _, m := range modes {
		registry.Register(m)
	}
	return registry
}

func (registry *Registry) Register(m Mode) {
	registry.modes = append(registry.modes, m)
}

func (registry *Registry) Modes() []Mode {
	return registry.modes
}

// Lookup finds the mode of a flag. Flags are compared case-sensitively.
func (registry *Registry) Lookup(flag string) (Mode, bool) {
	for _, m := range registry.modes {
		if m.matches(flag) {
			return m, true
		}
	}
	return Mode{}, false
}

func (registry *Registry) defaultMode() (Mode, bool) {
	for _, m := range registry.modes {
		if m.Default {
			return m, true
		}
	}
	return Mode{}, false
}

// Dispatch runs the mode selected by args, which must hold zero or one flag
func (registry *Registry) Dispatch(ctx context.Context, args []string) error {
	var (
		selected Mode
		ok       bool
	)
	switch len(args) {
	case 0:
		selected, ok = registry.defaultMode()
		if !ok {
			return ErrNoDefaultMode
		}
	case 1:
		selected, ok = registry.Lookup(args[0])
		if !ok {
			return &UnknownFlagError{Flag: args[0]}
		}
	default:
		return fmt.Errorf("%w: got %d", ErrArgumentCount, len(args))
	}

	if selected.Handler == nil {
		return fmt.Errorf("%w: %s", ErrNoHandler, selected.Long)
	}
	return selected.Handler.Handle(ctx)
}

// Usage lists the flags of every registered mode
func (registry *Registry) Usage() string {
	flags := pflag.NewFlagSet("modes", pflag.ContinueOnError)
	flags.SortFlags = false
	for _, m := range registry.modes {
		name := strings.TrimPrefix(m.Long, "--")
		shorthand := strings.TrimPrefix(m.Short, "-")
		// pflag panics on redefined names and on long shorthands
		if name == "" || flags.Lookup(name) != nil {
			continue
		}
		if len(shorthand) != 1 || flags.ShorthandLookup(shorthand) != nil {
			shorthand = ""
		}

		description := m.Description
		if m.Default {
			description += " (default when no flag is given)"
		}
		flags.BoolP(name, shorthand, false, description)
	}
	return flags.FlagUsages()
}
