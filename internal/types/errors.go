// Package types defines custom error types for numrange.
package types

import (
	"errors"
	"fmt"
)

// ErrInvalidToken indicates a non-empty token that is not a base-10 integer
type ErrInvalidToken struct {
	Token string
	Err   error
}

func (e ErrInvalidToken) Error() string {
	return fmt.Sprintf("invalid number format: '%s'", e.Token)
}

func (e ErrInvalidToken) Unwrap() error {
	return e.Err
}

// ErrInvalidRange indicates a summary item that cannot be expanded
type ErrInvalidRange struct {
	Item   string
	Reason string
}

func (e ErrInvalidRange) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid range: '%s'", e.Item)
	}
	return fmt.Sprintf("invalid range '%s': %s", e.Item, e.Reason)
}

// ErrEmptyInput is returned in strict mode when the input holds no numbers
var ErrEmptyInput = errors.New("input contains no numbers")

// ErrConfigInvalid indicates a configuration error
type ErrConfigInvalid struct {
	Path   string
	Reason string
}

func (e ErrConfigInvalid) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid config: %s", e.Reason)
	}
	return fmt.Sprintf("invalid config %s: %s", e.Path, e.Reason)
}

// ErrConfigExists indicates init would overwrite an existing config file
type ErrConfigExists struct {
	Path string
}

func (e ErrConfigExists) Error() string {
	return fmt.Sprintf("config already exists: %s (use --force to overwrite)", e.Path)
}

// ErrUnknownFormat indicates an unsupported output format
type ErrUnknownFormat struct {
	Format string
}

func (e ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown output format: %s", e.Format)
}
