// Package errors provides the error kinds shared by the workflow stores.
//
// Base errors are sentinel values; structured errors wrap them with the
// context of the failed operation. Every structured error implements
// Unwrap, so errors.Is and errors.As from the standard library work
// through any depth of wrapping.
//
// # Error Types
//
// Base errors (sentinel errors):
//   - ErrNotFound - lookup or query yielded no match, or a path is missing
//   - ErrIO - underlying I/O failure
//   - ErrParse - a workflow document could not be decoded
//   - ErrGit - a git operation failed
//   - ErrInvalid - validation failed
//
// Wrapped error types (add context):
//   - WorkflowError{Op, Err, ID} - workflow lookup/query errors
//   - PathError{Op, Path, Err} - directory load errors
//   - GitError{Op, Err, Cmd} - git command errors
//   - ConfigError{Path, Err} - configuration errors
//
// # Usage
//
//	return errors.NotFound("get", name)
//
//	if errors.IsNotFound(err) {
//	    // fall through to the next source
//	}
package errors

import (
	"errors"
	"fmt"
	"io/fs"
)

// Base error types (sentinel errors).
var (
	// ErrNotFound indicates a workflow or path was not found.
	ErrNotFound = baseError("not found")

	// ErrIO indicates a file I/O error.
	ErrIO = baseError("I/O error")

	// ErrParse indicates a workflow document could not be decoded.
	ErrParse = baseError("parse error")

	// ErrGit indicates a git operation failed.
	ErrGit = baseError("git operation failed")

	// ErrInvalid indicates validation failed.
	ErrInvalid = baseError("invalid")
)

// baseError is a sentinel kind. Being a string, two kinds with the same
// text compare equal.
type baseError string

func (e baseError) Error() string { return string(e) }

// WorkflowError is returned by store lookups and queries.
type WorkflowError struct {
	// Op is the operation being performed (e.g., "get", "query").
	Op string
	// Err is the underlying error.
	Err error
	// ID is the workflow name or query string (optional).
	ID string
}

func (e *WorkflowError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("workflow %s %q: %s", e.Op, e.ID, e.Err)
	}
	return fmt.Sprintf("workflow %s: %s", e.Op, e.Err)
}

func (e *WorkflowError) Unwrap() error { return e.Err }

// PathError represents a failure to read a filesystem location.
type PathError struct {
	// Op is the operation being performed (e.g., "load", "refresh").
	Op string
	// Path is the filesystem path that could not be read.
	Path string
	// Err is the underlying error. It wraps ErrNotFound or ErrIO.
	Err error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// GitError is returned when the git binary exits with an error.
type GitError struct {
	// Op is the git operation being performed (e.g., "clone").
	Op string
	// Err is the underlying error.
	Err error
	// Cmd is the full git command that was executed (optional).
	Cmd string
}

func (e *GitError) Error() string {
	if e.Cmd != "" {
		return fmt.Sprintf("git %s: %s\n  cmd: %s", e.Op, e.Err, e.Cmd)
	}
	return fmt.Sprintf("git %s: %s", e.Op, e.Err)
}

func (e *GitError) Unwrap() error { return e.Err }

// ConfigError is returned when a config file cannot be read, decoded or
// validated.
type ConfigError struct {
	// Path is the configuration file path (optional).
	Path string
	// Err is the underlying error.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config %s: %s", e.Path, e.Err)
	}
	return fmt.Sprintf("config: %s", e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// NotFound returns a WorkflowError wrapping ErrNotFound for the given
// operation and identifier.
func NotFound(op, id string) error {
	return &WorkflowError{Op: op, Err: ErrNotFound, ID: id}
}

// Path classifies a filesystem error as ErrNotFound or ErrIO and wraps it
// with the operation and path. The original cause stays in the chain.
func Path(op, path string, cause error) error {
	kind := ErrIO
	if errors.Is(cause, fs.ErrNotExist) {
		kind = ErrNotFound
	}
	return &PathError{Op: op, Path: path, Err: &causeError{kind: kind, cause: cause}}
}

// causeError pairs a sentinel kind with the error that produced it.
type causeError struct {
	kind  baseError
	cause error
}

func (e *causeError) Error() string   { return fmt.Sprintf("%s: %s", e.kind, e.cause) }
func (e *causeError) Unwrap() []error { return []error{e.kind, e.cause} }

// Parse wraps a decoding failure so that IsParse reports true.
func Parse(cause error) error {
	return &causeError{kind: ErrParse, cause: cause}
}

// Wrap prefixes err with op. It returns nil when err is nil.
func Wrap(err error, op string) error {
	if err == nil {
		return nil
	}
	return &opError{op: op, err: err}
}

type opError struct {
	op  string
	err error
}

func (e *opError) Error() string { return e.op + ": " + e.err.Error() }
func (e *opError) Unwrap() error { return e.err }

// IsNotFound reports whether a workflow, query match or path was missing.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsIO reports whether err came from a failed filesystem operation.
func IsIO(err error) bool { return errors.Is(err, ErrIO) }

// IsParse reports whether a document failed to decode.
func IsParse(err error) bool { return errors.Is(err, ErrParse) }

// IsGit reports whether a git command failed.
func IsGit(err error) bool { return errors.Is(err, ErrGit) }

// IsInvalid reports whether err is a validation failure.
func IsInvalid(err error) bool { return errors.Is(err, ErrInvalid) }

// AsWorkflowError returns the first *WorkflowError in err's chain.
func AsWorkflowError(err error) (*WorkflowError, bool) { return as[*WorkflowError](err) }

// AsPathError returns the first *PathError in err's chain.
func AsPathError(err error) (*PathError, bool) { return as[*PathError](err) }

// AsGitError returns the first *GitError in err's chain.
func AsGitError(err error) (*GitError, bool) { return as[*GitError](err) }

// AsConfigError returns the first *ConfigError in err's chain.
func AsConfigError(err error) (*ConfigError, bool) { return as[*ConfigError](err) }

func as[T error](err error) (T, bool) {
	var target T
	ok := errors.As(err, &target)
	return target, ok
}
