package cmd

import (
	"errors"

	"github.com/opmodel/bundler/internal/cmdutil"
	oerrors "github.com/opmodel/bundler/internal/errors"
)

// ExitCodeFromError determines the appropriate exit code for an error.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *oerrors.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Source errors are checked first: they may also wrap ErrNotFound
	// from the file system.
	switch {
	case errors.Is(err, oerrors.ErrSourceUnreadable):
		return ExitSourceError
	case errors.Is(err, oerrors.ErrValidation):
		return ExitValidationError
	case errors.Is(err, oerrors.ErrNotFound):
		return ExitNotFound
	default:
		return ExitGeneralError
	}
}

// reportError prints err once and returns it wrapped with its exit code,
// marked as printed so main does not repeat it.
func reportError(msg string, err error) error {
	cmdutil.PrintError(msg, err)
	return &oerrors.ExitError{Code: ExitCodeFromError(err), Err: err, Printed: true}
}
