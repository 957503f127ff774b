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

// Package errors provides error codes, stack trace capture and parent/child
// chaining on top of the standard error interface.
//
// The spanning-tree link core uses this to classify session failures
// (protocol, auth, timeout, transport, config, duplicate-name) by code
// instead of matching on message strings.
//
// Example usage:
//
//	err := errors.New(CodeProtocol, "malformed line")
//	if e := errors.Get(err); e != nil && e.HasCode(CodeProtocol) {
//	    // close the session
//	}
package errors

import (
	"errors"
	"strings"
)

// FuncMap is a callback used to walk an error and its parent chain.
// Returning false stops the walk early.
type FuncMap func(e error) bool

// Error extends the standard error with a numeric code, parent chaining
// and stack trace capture.
type Error interface {
	error

	// IsCode reports whether this error's own code equals code.
	IsCode(code CodeError) bool
	// HasCode reports whether this error or any of its parents carries code.
	HasCode(code CodeError) bool
	// Code returns this error's own code.
	Code() CodeError

	// Add appends non-nil errors as parents of this error.
	Add(parent ...error)
	// HasParent reports whether this error has at least one parent.
	HasParent() bool
	// Map visits this error then its parents depth-first, stopping early
	// if fct returns false.
	Map(fct FuncMap) bool

	// Unwrap exposes the parent chain to errors.Is / errors.As.
	Unwrap() []error

	// Trace returns "file#line" captured when the error was created.
	Trace() string
}

// Is reports whether e is (or wraps) an Error.
func Is(e error) bool {
	var err Error
	return errors.As(e, &err)
}

// Get returns e as an Error if it is (or wraps) one, nil otherwise.
func Get(e error) Error {
	var err Error
	if errors.As(e, &err) {
		return err
	}
	return nil
}

// Has reports whether e is an Error carrying code, directly or via a parent.
func Has(e error, code CodeError) bool {
	if err := Get(e); err == nil {
		return false
	} else {
		return err.HasCode(code)
	}
}

// ContainsString reports whether e's message, or any parent's, contains s.
func ContainsString(e error, s string) bool {
	if e == nil {
		return false
	} else if err := Get(e); err != nil {
		found := false
		err.Map(func(p error) bool {
			if strings.Contains(p.Error(), s) {
				found = true
				return false
			}
			return true
		})
		return found
	}
	return strings.Contains(e.Error(), s)
}

// New creates an Error with the given code, message and optional parents.
func New(code CodeError, message string, parent ...error) Error {
	p := make([]error, 0, len(parent))
	for _, e := range parent {
		if e != nil {
			p = append(p, e)
		}
	}

	return &ers{
		c: code,
		m: message,
		p: p,
		t: getFrame(),
	}
}

// Wrap wraps a plain error into an Error with code, preserving it as a parent.
func Wrap(code CodeError, message string, cause error) Error {
	if cause == nil {
		return New(code, message)
	}
	return New(code, message, cause)
}
