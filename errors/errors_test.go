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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrors(t *testing.T) {
	t.Run("With invalid argument", func(t *testing.T) {
		err := NewErrInvalidArgument("extension id is required")
		require.EqualError(t, err, "extension id is required: invalid argument")
		assert.ErrorIs(t, err, ErrInvalidArgument)
		assert.Equal(t, CodeInvalidArgument, CodeOf(err))
	})
	t.Run("With type mismatch", func(t *testing.T) {
		err := NewErrTypeMismatch("*main.cache", "*main.plugin")
		assert.ErrorIs(t, err, ErrTypeMismatch)
		assert.Equal(t, CodeTypeMismatch, CodeOf(err))
		assert.Contains(t, err.Error(), "*main.cache")
	})
	t.Run("With not found", func(t *testing.T) {
		err := NewErrNotFound("auth")
		require.EqualError(t, err, "(extension=auth) extension not found")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NotErrorIs(t, err, ErrEmpty)
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})
	t.Run("With empty", func(t *testing.T) {
		err := NewErrEmpty("root")
		require.EqualError(t, err, "container=(root) no extensions registered")
		assert.ErrorIs(t, err, ErrEmpty)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeNotFound, CodeOf(err))
	})
	t.Run("With unexpected", func(t *testing.T) {
		cause := errors.New("something went wrong")
		err := NewUnexpectedError(cause)
		require.EqualError(t, err, "unexpected error: something went wrong")
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, ErrUnexpected)
		assert.Equal(t, CodeUnexpected, CodeOf(err))
	})
	t.Run("With unexpected wrapping a coded error", func(t *testing.T) {
		err := NewUnexpectedError(NewErrNotFound("auth"))
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, CodeUnexpected, CodeOf(err))
	})
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, CodeOK, CodeOf(nil))
	assert.Equal(t, CodeUnexpected, CodeOf(errors.New("foreign")))
	assert.Equal(t, CodeNotFound, CodeOf(fmt.Errorf("lookup failed: %w", ErrNotFound)))
}

func TestExitCode(t *testing.T) {
	assert.Zero(t, ExitCode(nil))
	assert.Equal(t, 1, ExitCode(ErrInvalidArgument))
	assert.Equal(t, 2, ExitCode(ErrTypeMismatch))
	assert.Equal(t, 3, ExitCode(ErrEmpty))
	assert.Equal(t, 4, ExitCode(errors.New("boom")))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "OK", CodeOK.String())
	assert.Equal(t, "InvalidArgument", CodeInvalidArgument.String())
	assert.Equal(t, "TypeMismatch", CodeTypeMismatch.String())
	assert.Equal(t, "NotFound", CodeNotFound.String())
	assert.Equal(t, "Unexpected", CodeUnexpected.String())
	assert.Equal(t, "Code(42)", Code(42).String())
}
