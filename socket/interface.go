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

// Package socket defines the shared transport contract that the TCP
// listener (socket/server/tcp) and dialer (socket/client/tcp) build on:
// a persistent, bidirectional Context per connection and a Handler
// invoked once per accepted or dialed connection for its whole lifetime.
//
// This differs from a typical request/response socket handler: a link
// session stays open for as long as the remote server is linked, so
// Handler does not return until the connection is done.
package socket

import (
	"context"
	"net"
)

// Context is a net.Conn paired with the context.Context passed to the
// server's Listen or the client's Connect, so a Handler can watch that
// context. Canceling it does not close the connection.
type Context interface {
	net.Conn

	Context() context.Context
}

// Handler is invoked once per connection, for the connection's entire
// lifetime. It owns closing c when it returns.
type Handler func(c Context)

// Server is a long-lived listener accepting connections and dispatching
// each to a Handler on its own goroutine.
type Server interface {
	// RegisterServer sets the listen address. It must be called before Listen.
	RegisterServer(address string) error

	// Listen starts accepting connections. It blocks until ctx is
	// canceled or Shutdown is called.
	Listen(ctx context.Context) error

	// Shutdown stops accepting new connections and waits until Listen
	// has returned or ctx expires. Connections already open are left to
	// their Handlers; Shutdown does not close them.
	Shutdown(ctx context.Context) error

	IsRunning() bool
	IsGone() bool
	OpenConnections() int64

	// Done is closed once Listen has returned.
	Done() <-chan struct{}
}

// Client dials a single outbound connection.
type Client interface {
	Connect(ctx context.Context) (Context, error)
}
