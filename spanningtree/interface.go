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

// Package spanningtree is the Link Manager: it binds listener sockets,
// dials outbound links, owns the root server tree and the table of
// configured LinkBlocks, and exposes the small operator command surface
// (LINKS, MAP, LUSERS, SQUIT) that sits above a single link session.
package spanningtree

import (
	"context"

	"github.com/nabbar/spantree/confsrc"
	"github.com/nabbar/spantree/duration"
	"github.com/nabbar/spantree/errors"
	"github.com/nabbar/spantree/link"
	"github.com/nabbar/spantree/logger"
	"github.com/nabbar/spantree/treenode"
)

// ErrUnknownLink is returned by Connect and SQuit when no LinkBlock (or
// no live session) matches the given name.
var ErrUnknownLink = errors.New(errors.CodeConfig, "spanningtree: unknown link")

// ErrNotDirectLink is returned by SQuit when name exists in the tree but
// is not a direct child of the local root.
var ErrNotDirectLink = errors.New(errors.CodeProtocol, "spanningtree: no direct link to given server")

// Config configures a Manager's bind address, local identity and the
// per-session handshake budget shared by every link it manages.
type Config struct {
	BindAddress      string
	Identity         link.Identity
	HandshakeTimeout duration.Duration
	MaxLineLength    int
}

func (c Config) sessionConfig() link.Config {
	return link.Config{
		HandshakeTimeout: c.HandshakeTimeout,
		MaxLineLength:    c.MaxLineLength,
	}
}

// LinkSummary is one row of a LINKS reply: a direct child of the root.
type LinkSummary struct {
	Name        string
	Description string
	HopCount    int
}

// MapEntry is one row of a MAP reply: a node at a given depth.
type MapEntry struct {
	Name  string
	Depth int
}

// LUsersSummary is the aggregate counters reported by LUSERS. Tracking
// end-user clients and opers is outside this core's scope, so
// UserCount and OperCount only ever reflect what each node has reported
// of itself through SetLocalUsers; a peer that never calls it
// contributes zero.
type LUsersSummary struct {
	UserCount   uint32
	OperCount   uint32
	LinkCount   int
	ServerCount int
}

// Manager binds a listener, dials outbound links described by
// confsrc.Reader, and owns the tree and session table that result.
type Manager interface {
	// Init reads "bind" and "link" blocks from r into the Manager's
	// LinkBlock table and its list of listener addresses. It does not
	// open any socket.
	Init(r confsrc.Reader) error

	// Start starts one listener per address loaded by Init (falling back
	// to Config.BindAddress if Init was never called or found no "bind"
	// blocks). An address that fails validation is logged and skipped;
	// Start fails outright only if no address passes validation. Each
	// listener binds and accepts on its own goroutine, so Start returns
	// without waiting for the binds: a listener that fails to bind is
	// logged there and the others carry on. Accepting continues until
	// ctx is canceled or Stop is called.
	Start(ctx context.Context) error

	// Reload re-reads r, replacing the LinkBlock table and the list of
	// listener addresses. Live sessions and already-bound listeners are
	// left untouched; only future handshakes and a subsequent Start see
	// the new configuration.
	Reload(r confsrc.Reader) error

	// Stop closes every listener and every live session concurrently,
	// then waits for all of it to finish or ctx to expire.
	Stop(ctx context.Context) error

	// Connect dials the outbound link named by pattern. An exact
	// LinkBlock name match is tried first; failing that, pattern is
	// matched as a case-insensitive glob ("*" and "?") against every
	// configured name, in sorted order, and the first match is dialed.
	// It returns ErrUnknownLink if nothing matches.
	Connect(ctx context.Context, pattern string) error

	// Tree exposes the underlying server tree for read access.
	Tree() treenode.Tree

	// SetLocalUsers records this server's own client/oper counts, the
	// only counts this core can ever populate; see LUsersSummary.
	SetLocalUsers(userCount, operCount uint32)

	Links() []LinkSummary
	Map() []MapEntry
	LUsers() LUsersSummary
	SQuit(name string) error
}

// New returns a Manager bound to cfg.BindAddress once Start is called,
// with no LinkBlocks configured; call Init before Start to load them.
func New(cfg Config, log logger.Logger) Manager {
	return newManager(cfg, log)
}
