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

// Package message tokenizes a single framed line into a source prefix,
// a command and its parameters, following the same leading-colon rules
// used for the trailing parameter and the optional prefix.
package message

import "github.com/nabbar/spantree/errors"

// Message is a parsed line: an optional Prefix, a Command, and its
// Params in order. The last Param may be a trailing parameter (it was
// introduced by ':' and may contain embedded spaces); that does not
// change how it is stored here, only how it was read off the wire.
type Message struct {
	Prefix  string
	Command string
	Params  []string
}

// Parse tokenizes line, which must not include its terminating
// delimiter. It returns a CodeProtocol error if line carries a prefix
// with no following command.
func Parse(line string) (Message, error) {
	return parse(line)
}

var ErrMalformed = errors.New(errors.CodeProtocol, "message: prefix with no command")
