// Package apperr carries user-facing failure messages. Each error prints only
// its message and unwraps to a kind sentinel for errors.Is checks.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
)

type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

func New(kind error, msg string) error {
	return &Error{Kind: kind, Msg: msg}
}

func Invalid(msg string) error {
	return New(ErrInvalidInput, msg)
}

func Invalidf(format string, args ...any) error {
	return New(ErrInvalidInput, fmt.Sprintf(format, args...))
}
