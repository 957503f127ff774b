/*
 * MIT License
 *
 * Copyright (c) 2026 spantree contributors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package errors_test

import (
	"strings"
	"testing"

	"github.com/nabbar/spantree/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CarriesCodeAndMessage(t *testing.T) {
	err := errors.New(errors.CodeProtocol, "malformed line")

	require.Error(t, err)
	assert.True(t, err.IsCode(errors.CodeProtocol))
	assert.False(t, err.IsCode(errors.CodeAuth))
	assert.Equal(t, errors.CodeProtocol, err.Code())
	assert.True(t, strings.Contains(err.Error(), "protocol error"))
	assert.True(t, strings.Contains(err.Error(), "malformed line"))
}

func TestNew_UnknownCodeOmitsPrefix(t *testing.T) {
	err := errors.New(errors.UnknownError, "plain failure")

	assert.Equal(t, "plain failure", err.Error())
}

func TestWrap_NilCauseBehavesLikeNew(t *testing.T) {
	err := errors.Wrap(errors.CodeTransport, "write failed", nil)

	assert.False(t, err.HasParent())
	assert.True(t, err.IsCode(errors.CodeTransport))
}

func TestWrap_PreservesParentAndHasCode(t *testing.T) {
	cause := errors.New(errors.CodeAuth, "bad password")
	err := errors.Wrap(errors.CodeProtocol, "handshake aborted", cause)

	require.True(t, err.HasParent())
	assert.True(t, err.HasCode(errors.CodeProtocol))
	assert.True(t, err.HasCode(errors.CodeAuth))
	assert.False(t, err.HasCode(errors.CodeTimeout))
}

func TestGet_UnwrapsThroughStandardErrorsIs(t *testing.T) {
	err := errors.New(errors.CodeConfig, "missing bind address")

	got := errors.Get(err)
	require.NotNil(t, got)
	assert.Equal(t, errors.CodeConfig, got.Code())

	assert.False(t, errors.Is(nil))
}

func TestHas_FalseForPlainError(t *testing.T) {
	plain := assertError("boom")

	assert.False(t, errors.Has(plain, errors.CodeProtocol))
}

func TestContainsString_WalksParentChain(t *testing.T) {
	cause := errors.New(errors.CodeAuth, "password mismatch for leaf")
	err := errors.Wrap(errors.CodeProtocol, "rejecting SERVER", cause)

	assert.True(t, errors.ContainsString(err, "password mismatch"))
	assert.False(t, errors.ContainsString(err, "unrelated"))
}

func TestMap_VisitsSelfThenParents(t *testing.T) {
	root := errors.New(errors.CodeTimeout, "no SERVER within budget")
	mid := errors.Wrap(errors.CodeProtocol, "closing socket", root)

	var seen []errors.CodeError
	mid.Map(func(e error) bool {
		if ce := errors.Get(e); ce != nil {
			seen = append(seen, ce.Code())
		}
		return true
	})

	require.Len(t, seen, 2)
	assert.Equal(t, errors.CodeProtocol, seen[0])
	assert.Equal(t, errors.CodeTimeout, seen[1])
}

func TestTrace_NonEmpty(t *testing.T) {
	err := errors.New(errors.CodeProtocol, "malformed line")

	assert.NotEmpty(t, err.Trace())
	assert.Contains(t, err.Trace(), "#")
}

func TestCodeError_StringKnownAndUnknown(t *testing.T) {
	assert.Equal(t, "protocol error", errors.CodeProtocol.String())
	assert.Equal(t, "authentication failure", errors.CodeAuth.String())
	assert.Equal(t, "unknown error", errors.UnknownError.String())
	assert.Contains(t, errors.CodeError(9999).String(), "9999")
}

type plainError string

func (p plainError) Error() string { return string(p) }

func assertError(msg string) error {
	return plainError(msg)
}
