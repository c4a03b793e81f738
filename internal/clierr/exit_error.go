// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clierr maps pkg/baseline's error taxonomy onto process exit
// codes for the cmd/baseline CLI. The core library itself never calls
// os.Exit or depends on this package.
package clierr

import (
	"errors"
	"fmt"

	"github.com/bartekus/baseline/pkg/baseline"
)

// Exit codes, one per taxonomy member plus a catch-all.
const (
	ExitOK                     = 0
	ExitGeneric                = 1
	ExitInvalidPath            = 10
	ExitMissingCompatRecord    = 11
	ExitMissingBrowserSupport  = 12
	ExitUnknownVersion         = 13
	ExitNoCurrentRelease       = 14
	ExitBrowserReleaseMismatch = 15
)

// ExitCoder is an error that carries an explicit process exit code.
type ExitCoder interface {
	error
	ExitCode() int
}

// exitError wraps a cause with an explicit exit code.
type exitError struct {
	code  int
	cause error
}

func (e *exitError) Error() string { return e.cause.Error() }
func (e *exitError) ExitCode() int { return e.code }
func (e *exitError) Unwrap() error { return e.cause }

// Wrap classifies a pkg/baseline error into an ExitCoder, choosing a code
// based on its concrete type. Unrecognized errors get ExitGeneric.
func Wrap(err error) error {
	if err == nil {
		return nil
	}

	var invalidPath *baseline.InvalidPathError
	var missingCompat *baseline.MissingCompatRecordError
	var missingSupport *baseline.MissingBrowserSupportError
	var unknownVersion *baseline.UnknownVersionError
	var noCurrent *baseline.NoCurrentReleaseError
	var mismatch *baseline.BrowserReleaseMismatchError

	switch {
	case errors.As(err, &invalidPath):
		return &exitError{code: ExitInvalidPath, cause: err}
	case errors.As(err, &missingCompat):
		return &exitError{code: ExitMissingCompatRecord, cause: err}
	case errors.As(err, &missingSupport):
		return &exitError{code: ExitMissingBrowserSupport, cause: err}
	case errors.As(err, &unknownVersion):
		return &exitError{code: ExitUnknownVersion, cause: err}
	case errors.As(err, &noCurrent):
		return &exitError{code: ExitNoCurrentRelease, cause: err}
	case errors.As(err, &mismatch):
		return &exitError{code: ExitBrowserReleaseMismatch, cause: err}
	default:
		return &exitError{code: ExitGeneric, cause: err}
	}
}

// ExitCodeOf extracts an exit code from any error, defaulting to
// ExitGeneric. Keeps main() dumb, the same way cortex's
// clierr.ExitCodeOf does.
func ExitCodeOf(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}
	return ExitGeneric
}

// Newf builds a generic-exit-code error, for CLI-level failures that
// don't originate from pkg/baseline (bad flags, unreadable files).
func Newf(format string, args ...any) error {
	return &exitError{code: ExitGeneric, cause: fmt.Errorf(format, args...)}
}
