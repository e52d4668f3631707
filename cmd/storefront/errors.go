package main

import (
	"errors"
	"flag"

	"github.com/dwikikusuma/storefront/pkg/apperr"
)

const (
	exitFailure = 1
	exitUsage   = 2
	exitAuth    = 3
)

// usageError is a malformed command line.
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func exitCode(err error) int {
	var ue usageError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ue), errors.Is(err, flag.ErrHelp), errors.Is(err, apperr.ErrInvalidInput):
		return exitUsage
	case errors.Is(err, apperr.ErrNotAuthenticated), errors.Is(err, apperr.ErrForbidden):
		return exitAuth
	}
	return exitFailure
}
