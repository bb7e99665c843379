package config

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound indicates that a config file named with --config
	// does not exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrValidationFailed matches every *ValidationError.
	ErrValidationFailed = errors.New("invalid setting")

	// ErrNoHome indicates that neither a state nor a home directory is
	// known.
	ErrNoHome = errors.New("cannot determine home directory")
)

// Problem classifies a rejected setting.
type Problem uint8

const (
	// ProblemUnknownSetting is a key no setting answers to.
	ProblemUnknownSetting Problem = iota + 1
	// ProblemBadColor is a colour not written as #RRGGBB.
	ProblemBadColor
)

// String returns the problem description used in error messages.
func (p Problem) String() string {
	switch p {
	case ProblemUnknownSetting:
		return "unknown setting"
	case ProblemBadColor:
		return "expected #RRGGBB"
	default:
		return fmt.Sprintf("Problem(%d)", uint8(p))
	}
}

// ValidationError rejects one setting. Several are combined with
// errors.Join.
type ValidationError struct {
	// Setting is the dotted TOML key, e.g. "tui.theme.highlight-fg".
	Setting string
	Problem Problem
	// Value is the rejected value, if there was one.
	Value any
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: %s", e.Setting, e.Problem)
	}
	return fmt.Sprintf("%s = %q: %s", e.Setting, fmt.Sprint(e.Value), e.Problem)
}

// Is makes errors.Is(err, ErrValidationFailed) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}
