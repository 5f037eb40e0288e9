// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package errors

import (
	"errors"
	"fmt"
)

// Code identifies the category of a failure so that callers, and in particular
// process exit handling, can branch on it without matching error strings.
type Code int

const (
	// CodeOK is the code of a nil error.
	CodeOK Code = iota
	// CodeInvalidArgument is returned for empty identifiers or nil arguments.
	CodeInvalidArgument
	// CodeTypeMismatch is returned when a candidate does not conform to the container's extension type.
	CodeTypeMismatch
	// CodeNotFound is returned when a lookup does not match any extension.
	CodeNotFound
	// CodeUnexpected is returned for any failure not covered by the other codes.
	CodeUnexpected
)

// String returns the code name
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeInvalidArgument:
		return "InvalidArgument"
	case CodeTypeMismatch:
		return "TypeMismatch"
	case CodeNotFound:
		return "NotFound"
	case CodeUnexpected:
		return "Unexpected"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is an error carrying a Code.
type Error struct {
	code    Code
	message string
	// kind is the sentinel this error belongs to when it is not itself a sentinel
	kind *Error
}

// enforce compilation error
var _ error = (*Error)(nil)

func newError(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

// Error implements the standard error interface
func (e *Error) Error() string {
	return e.message
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Unwrap returns the sentinel the error derives from, if any
func (e *Error) Unwrap() error {
	if e.kind == nil {
		return nil
	}
	return e.kind
}

var (
	// ErrInvalidArgument is returned when an identifier is empty or a required argument is nil.
	ErrInvalidArgument = newError(CodeInvalidArgument, "invalid argument")

	// ErrTypeMismatch is returned when a candidate extension is not an instance of the
	// extension type the container is constrained to.
	ErrTypeMismatch = newError(CodeTypeMismatch, "extension type mismatch")

	// ErrNotFound is returned when no extension matches the requested identifier.
	ErrNotFound = newError(CodeNotFound, "extension not found")

	// ErrEmpty is returned when a lookup is made against a container without any extension.
	// It belongs to the NotFound category: errors.Is(ErrEmpty, ErrNotFound) holds.
	ErrEmpty = &Error{code: CodeNotFound, message: "no extensions registered", kind: ErrNotFound}

	// ErrUnexpected is the category of every failure not anticipated by the other errors.
	ErrUnexpected = newError(CodeUnexpected, "unexpected error")
)

// NewErrInvalidArgument formats an ErrInvalidArgument with the given reason.
func NewErrInvalidArgument(reason string) error {
	return fmt.Errorf("%s: %w", reason, ErrInvalidArgument)
}

// NewErrTypeMismatch formats an ErrTypeMismatch with the offending and the expected type names.
func NewErrTypeMismatch(got, want string) error {
	return fmt.Errorf("extension of type=(%s) is not a %s: %w", got, want, ErrTypeMismatch)
}

// NewErrNotFound formats an ErrNotFound with the given extension id.
func NewErrNotFound(id string) error {
	return fmt.Errorf("(extension=%s) %w", id, ErrNotFound)
}

// NewErrEmpty formats an ErrEmpty with the name of the empty container.
func NewErrEmpty(container string) error {
	return fmt.Errorf("container=(%s) %w", container, ErrEmpty)
}

// UnexpectedError wraps a failure that none of the error categories anticipated.
// The underlying error is kept intact and reachable through errors.Unwrap.
type UnexpectedError struct {
	err error
}

// enforce compilation error
var _ error = (*UnexpectedError)(nil)

// NewUnexpectedError returns an instance of UnexpectedError
func NewUnexpectedError(err error) *UnexpectedError {
	return &UnexpectedError{err: err}
}

// Error implements the standard error interface
func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error: %v", e.err)
}

// Unwrap returns the wrapped errors, including the ErrUnexpected category.
func (e *UnexpectedError) Unwrap() []error {
	return []error{ErrUnexpected, e.err}
}

// CodeOf returns the Code carried by err.
// A nil error yields CodeOK and an error outside of this taxonomy yields CodeUnexpected.
func CodeOf(err error) Code {
	if err == nil {
		return CodeOK
	}

	var unexpected *UnexpectedError
	if errors.As(err, &unexpected) {
		return CodeUnexpected
	}

	var coded *Error
	if errors.As(err, &coded) {
		return coded.Code()
	}
	return CodeUnexpected
}

// ExitCode maps err to a process exit status.
func ExitCode(err error) int {
	return int(CodeOf(err))
}
