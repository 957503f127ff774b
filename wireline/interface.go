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

// Package wireline frames a byte stream into newline-terminated lines
// without owning the stream itself: bytes are pushed in as they arrive
// off the wire, lines are pulled out as they become complete. This
// keeps the framer testable on plain byte slices, independent of the
// socket it will actually run over.
package wireline

// Framer accumulates bytes fed to it and yields complete lines as they
// arrive. It is not safe for concurrent use; a link session owns one
// Framer per connection and feeds it from its single reader goroutine.
type Framer interface {
	// Feed appends p to the internal buffer.
	Feed(p []byte)

	// Next drains and returns the next complete line, with its
	// delimiter removed. A trailing '\r' is also stripped. ok is false
	// if the buffer holds no complete line yet; line is then empty.
	Next() (line []byte, ok bool)

	// Buffered returns the number of bytes currently held, including any
	// complete lines that Next has not drained yet.
	Buffered() int
}

// New returns an empty Framer.
func New() Framer {
	return &framer{}
}
