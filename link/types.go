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

// Package link implements the per-connection Link Session state machine:
// the handshake, the burst exchange that follows it, and steady-state
// line dispatch for one peer socket.
//
// A Session is the capability trait the surrounding event loop drives:
// OnConnected, OnData, OnTimeout and OnClose correspond to the four
// callback points a polymorphic socket would override in a
// single-threaded reactor. Here they are plain methods guarded by an
// internal mutex, since each Session instead runs on its own goroutine.
package link

import (
	"time"

	"github.com/nabbar/spantree/duration"
)

// Role is the part a Session plays in a connection.
type Role uint8

const (
	RoleListener Role = iota
	RoleOutbound
	RoleInbound
)

func (r Role) String() string {
	switch r {
	case RoleListener:
		return "listener"
	case RoleOutbound:
		return "outbound"
	case RoleInbound:
		return "inbound"
	default:
		return "unknown"
	}
}

// State is a Session's position in the handshake state machine.
type State uint8

const (
	StateListener State = iota
	StateConnecting
	StateWaitAuth1
	StateWaitAuth2
	StateConnected
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateListener:
		return "listener"
	case StateConnecting:
		return "connecting"
	case StateWaitAuth1:
		return "wait-auth-1"
	case StateWaitAuth2:
		return "wait-auth-2"
	case StateConnected:
		return "connected"
	case StateClosed:
		return "closed"
	default:
		return "unknown"
	}
}

// LinkBlock is a static configuration record authorizing one peer
// relationship.
type LinkBlock struct {
	Name     string
	IPAddr   string
	Port     uint16
	SendPass string
	RecvPass string
}

// Identity is the local server's own name, description and (optionally
// already known) version, sent during the handshake and the burst.
type Identity struct {
	Name        string
	Description string
	Version     string
}

// DefaultMaxLineLength bounds a session's read buffer; exceeding it is
// a protocol error rather than an unbounded allocation.
const DefaultMaxLineLength = 8192

// DefaultHandshakeTimeout is how long a session may spend short of
// Connected before it is closed.
const DefaultHandshakeTimeout = 10 * time.Second

// Config tunes a Session's handshake budget and line-length cap.
type Config struct {
	HandshakeTimeout duration.Duration
	MaxLineLength    int
}

func (c Config) withDefaults() Config {
	if c.HandshakeTimeout <= 0 {
		c.HandshakeTimeout = duration.Duration(DefaultHandshakeTimeout)
	}
	if c.MaxLineLength <= 0 {
		c.MaxLineLength = DefaultMaxLineLength
	}
	return c
}

// BlockLookup resolves a server name to its LinkBlock, the single
// collaborator a Session needs to check handshake credentials and find
// the send-pass for an outbound offer.
type BlockLookup func(name string) (LinkBlock, bool)

// Callbacks is the capability trait a Session implements; it is the Go
// analogue of the socket method overrides a single-threaded reactor
// would dispatch to.
type Callbacks interface {
	OnConnected()
	OnData(p []byte)
	OnTimeout()
	OnClose()
}
