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

package link_test

import (
	"bytes"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/nabbar/spantree/link"
	"github.com/nabbar/spantree/logger"
	"github.com/nabbar/spantree/treenode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConn records every write and is safe for concurrent use; it
// stands in for the net.Conn a real Session would own.
type fakeConn struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	closed bool
}

func (c *fakeConn) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.Write(p)
}

func (c *fakeConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConn) lines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := strings.Split(strings.TrimRight(c.buf.String(), "\r\n"), "\r\n")
	if len(out) == 1 && out[0] == "" {
		return nil
	}
	return out
}

func (c *fakeConn) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func quietLog() logger.Logger { return logger.NewTo(io.Discard) }

func blockLookup(blocks map[string]link.LinkBlock) link.BlockLookup {
	return func(name string) (link.LinkBlock, bool) {
		b, ok := blocks[name]
		return b, ok
	}
}

func TestSession_ListenerRejectsAnyData(t *testing.T) {
	conn := &fakeConn{}
	s := link.NewListener(conn, quietLog())

	s.OnData([]byte("PING\r\n"))

	lines := conn.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "ERROR :Internal error", lines[0])
	assert.True(t, conn.isClosed())
}

func TestSession_InboundHopViolationRejected(t *testing.T) {
	conn := &fakeConn{}
	tree := treenode.New("a.example", "A")
	lookup := blockLookup(map[string]link.LinkBlock{
		"b.example": {Name: "b.example", SendPass: "out", RecvPass: "in"},
	})

	s := link.NewInbound("10.0.0.2:7000", conn, tree, link.Identity{Name: "a.example", Description: "A", Version: "spantree-test"}, link.Config{}, lookup, quietLog(), nil)

	s.OnData([]byte("SERVER b.example in 2 :B\r\n"))

	lines := conn.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "ERROR :Server too far away for authentication", lines[len(lines)-1])
	assert.True(t, conn.isClosed())
	assert.Equal(t, link.StateClosed, s.State())
}

func TestSession_InboundWrongPasswordRejected(t *testing.T) {
	conn := &fakeConn{}
	tree := treenode.New("a.example", "A")
	lookup := blockLookup(map[string]link.LinkBlock{
		"b.example": {Name: "b.example", SendPass: "out", RecvPass: "in"},
	})

	s := link.NewInbound("10.0.0.2:7000", conn, tree, link.Identity{Name: "a.example", Description: "A", Version: "spantree-test"}, link.Config{}, lookup, quietLog(), nil)

	s.OnData([]byte("SERVER b.example WRONG 0 :B\r\n"))

	lines := conn.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "ERROR :Invalid credentials", lines[len(lines)-1])
	assert.True(t, conn.isClosed())
}

func TestSession_TwoNodeHappyPathHandshakeAndBurst(t *testing.T) {
	conn := &fakeConn{}
	tree := treenode.New("a.example", "A")
	lookup := blockLookup(map[string]link.LinkBlock{
		"b.example": {Name: "b.example", SendPass: "a-to-b", RecvPass: "b-to-a"},
	})

	var closed []string
	var mu sync.Mutex
	onClose := func(sess *link.Session) {
		mu.Lock()
		defer mu.Unlock()
		closed = append(closed, sess.PeerHost())
	}

	s := link.NewInbound("10.0.0.2:7000", conn, tree, link.Identity{Name: "a.example", Description: "A", Version: "spantree-test"}, link.Config{}, lookup, quietLog(), onClose)

	// Peer b offers first, as WaitAuth1 expects.
	s.OnData([]byte("SERVER b.example b-to-a 0 :B\r\n"))
	require.Equal(t, link.StateWaitAuth2, s.State())

	lines := conn.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "SERVER a.example a-to-b 0 :A", lines[0])

	// Peer completes with BURST/ENDBURST.
	s.OnData([]byte("BURST\r\n"))
	require.Equal(t, link.StateConnected, s.State())

	h, ok := s.NodeHandle()
	require.True(t, ok)

	n, ok := tree.Get(h)
	require.True(t, ok)
	assert.Equal(t, "b.example", n.Name)

	// Our own burst to the peer should have been written: BURST, ENDBURST, VERSION.
	lines = conn.lines()
	assert.Contains(t, lines, "BURST")
	assert.Contains(t, lines, "ENDBURST")
	assert.Contains(t, lines, "VERSION :spantree-test")

	s.OnClose()
	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, closed, "10.0.0.2:7000")

	_, ok = tree.Get(h)
	assert.False(t, ok, "close detaches the peer's subtree")
}

func TestSession_OutboundConnectingSendsOfferOnConnected(t *testing.T) {
	conn := &fakeConn{}
	tree := treenode.New("a.example", "A")
	lookup := blockLookup(map[string]link.LinkBlock{
		"b.example": {Name: "b.example", SendPass: "a-to-b", RecvPass: "b-to-a"},
	})

	s := link.NewOutbound("b.example", conn, tree, link.Identity{Name: "a.example", Description: "A", Version: "spantree-test"}, link.Config{}, lookup, quietLog(), nil)

	s.OnConnected()

	lines := conn.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "SERVER a.example a-to-b 0 :A", lines[0])
}

func TestSession_ThreeNodeChainRelaysIndirectServerAnnounce(t *testing.T) {
	conn := &fakeConn{}
	tree := treenode.New("b.example", "B")
	lookup := blockLookup(map[string]link.LinkBlock{
		"a.example": {Name: "a.example", SendPass: "b-to-a", RecvPass: "a-to-b"},
	})

	s := link.NewInbound("10.0.0.1:7000", conn, tree, link.Identity{Name: "b.example", Description: "B", Version: "spantree-test"}, link.Config{}, lookup, quietLog(), nil)

	s.OnData([]byte("SERVER a.example a-to-b 0 :A\r\n"))
	require.Equal(t, link.StateWaitAuth2, s.State())

	s.OnData([]byte("BURST\r\n"))
	require.Equal(t, link.StateConnected, s.State())

	// A now relays an announce for a third node c.example, hung off a.
	s.OnData([]byte(":a.example SERVER c.example * 1 :C\r\n"))

	ch, ok := tree.Find("c.example")
	require.True(t, ok)

	n, ok := tree.Get(ch)
	require.True(t, ok)
	ap, ok := tree.Get(n.Parent)
	require.True(t, ok)
	assert.Equal(t, "a.example", ap.Name)
}

func TestSession_DuplicateNameDuringBurstIsProtocolError(t *testing.T) {
	conn := &fakeConn{}
	tree := treenode.New("a.example", "A")
	_, err := tree.Add(tree.Root(), "dup.example", "existing", nil)
	require.NoError(t, err)

	lookup := blockLookup(map[string]link.LinkBlock{
		"dup.example": {Name: "dup.example", SendPass: "out", RecvPass: "in"},
	})

	s := link.NewInbound("10.0.0.3:7000", conn, tree, link.Identity{Name: "a.example", Description: "A", Version: "spantree-test"}, link.Config{}, lookup, quietLog(), nil)

	s.OnData([]byte("SERVER dup.example in 0 :Dup\r\n"))
	require.Equal(t, link.StateWaitAuth2, s.State())

	s.OnData([]byte("BURST\r\n"))

	lines := conn.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "ERROR :Duplicate server name", lines[len(lines)-1])
	assert.Equal(t, link.StateClosed, s.State())
}

func TestSession_TimeoutWhileConnectingClosesWithoutTreeMutation(t *testing.T) {
	conn := &fakeConn{}
	tree := treenode.New("a.example", "A")
	lookup := blockLookup(map[string]link.LinkBlock{})

	cfg := link.Config{HandshakeTimeout: 0}
	_ = cfg // unused: the session below gets the default budget, and the timeout is fired by hand

	s := link.NewOutbound("b.example", conn, tree, link.Identity{Name: "a.example", Description: "A", Version: "spantree-test"}, link.Config{}, lookup, quietLog(), nil)

	// Directly exercise the timeout callback rather than waiting out the
	// real default budget.
	s.OnTimeout()

	assert.Equal(t, link.StateClosed, s.State())
	assert.True(t, conn.isClosed())
	assert.Equal(t, treenode.Handle(0), func() treenode.Handle { h, _ := s.NodeHandle(); return h }())
	_ = time.Second
}

func TestSession_ListenerNeverArmsHandshakeTimer(t *testing.T) {
	conn := &fakeConn{}
	s := link.NewListener(conn, quietLog())

	s.OnTimeout()

	assert.Equal(t, link.StateListener, s.State())
	assert.False(t, conn.isClosed())
}
