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

package errors

import "strconv"

// CodeError is a numeric error classification, similar in spirit to an
// HTTP status code, attached to every Error this package returns.
type CodeError uint16

// UnknownError is the zero-value code: no specific classification.
const UnknownError CodeError = 0

// Error kinds used by the spanning-tree link core (see §7 of the core
// specification). Each corresponds to one of: a malformed line or
// illegal state transition, a failed credential check, an expired
// handshake, a socket read/write failure, a bad or missing configuration
// entry, and a name collision surfaced during burst merge.
const (
	// CodeProtocol marks a malformed line or an illegal state transition.
	// The session sends ERROR and closes.
	CodeProtocol CodeError = iota + 400

	// CodeAuth marks an unknown server name or a password mismatch during
	// the handshake. The session sends "ERROR :Invalid credentials" and closes.
	CodeAuth

	// CodeTimeout marks a handshake that did not complete within budget.
	// The session closes without sending ERROR.
	CodeTimeout

	// CodeTransport marks a socket read or write failure. The session
	// closes and its subtree is removed from the tree.
	CodeTransport

	// CodeConfig marks a bind failure or an unparseable configuration
	// entry. The affected link or listener is simply absent.
	CodeConfig

	// CodeDuplicateName marks a burst or announcement naming a server
	// already present in the tree. Treated as CodeProtocol on that session.
	CodeDuplicateName
)

func (c CodeError) Uint16() uint16 {
	return uint16(c)
}

func (c CodeError) String() string {
	switch c {
	case CodeProtocol:
		return "protocol error"
	case CodeAuth:
		return "authentication failure"
	case CodeTimeout:
		return "timeout"
	case CodeTransport:
		return "transport error"
	case CodeConfig:
		return "configuration error"
	case CodeDuplicateName:
		return "duplicate server name"
	case UnknownError:
		return "unknown error"
	default:
		return "code " + strconv.Itoa(int(c))
	}
}
