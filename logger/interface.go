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

// Package logger provides structured, level-based logging backed by logrus.
//
// The link core uses it to record session lifecycle events (connect,
// authenticate, burst, timeout, close) with link-name and remote-address
// fields attached, instead of matching on ad hoc message strings.
package logger

import "io"

// Logger is a structured, level-filtered logger. It implements
// io.WriteCloser so it can be handed to anything expecting a plain writer.
type Logger interface {
	io.WriteCloser

	SetOutput(w io.Writer)

	SetLevel(lvl Level)
	GetLevel() Level

	SetFields(f Fields)
	GetFields() Fields

	// Clone duplicates the logger with its own level value and field
	// set, sharing the underlying logrus backend. Since the backend is
	// shared, SetLevel on either logger also sets the backend's
	// threshold, which filters the entries of both; GetLevel still
	// reports each logger's own value.
	Clone() Logger

	Debug(message string, data interface{})
	Info(message string, data interface{})
	Warning(message string, data interface{})
	Error(message string, data interface{}, err ...error)
	Fatal(message string, data interface{}, err ...error)
	Panic(message string, data interface{}, err ...error)

	// Entry returns an Entry for callers that need to attach fields before
	// logging it.
	Entry(lvl Level, message string) *Entry

	// CheckError logs at lvlKO if err is non-nil, at lvlOK otherwise, and
	// reports whether an error was present.
	CheckError(lvlKO, lvlOK Level, message string, err ...error) bool
}
