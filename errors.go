package geoip

import (
	"errors"
	"fmt"
)

// Root causes shared by the error types below. Use errors.Is to test
// for them through OpenError, TypeOpenError and InfoError.
var (
	// ErrInvalidPath - the path cannot be encoded for the native open
	// call (it contains a NUL byte).
	ErrInvalidPath = errors.New("path contains a NUL byte")

	// ErrOpenFailed - the native open call returned no resource.
	ErrOpenFailed = errors.New("cannot open database")

	// ErrCharset - the post-open charset configuration call failed.
	ErrCharset = errors.New("cannot set charset to UTF-8")

	// ErrNoInfo - the native database info call returned no buffer.
	ErrNoInfo = errors.New("no database info available")

	// ErrBadEncoding - a native buffer failed UTF-8 validation.
	ErrBadEncoding = errors.New("invalid UTF-8 sequence")
)

// OpenError - failure to open a database from a filesystem path
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("geoip: open %q: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// TypeOpenError - failure to open the installed database for an
// edition code
type TypeOpenError struct {
	Type DBType
	Err  error
}

func (e *TypeOpenError) Error() string {
	return fmt.Sprintf("geoip: open edition %d: %v", int(e.Type), e.Err)
}

func (e *TypeOpenError) Unwrap() error { return e.Err }

// InfoError - failure to read the database build/version string
type InfoError struct {
	Err error
}

func (e *InfoError) Error() string {
	return fmt.Sprintf("geoip: database info: %v", e.Err)
}

func (e *InfoError) Unwrap() error { return e.Err }
