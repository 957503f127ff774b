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

package link

import (
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nabbar/spantree/logger"
	"github.com/nabbar/spantree/treenode"
	"github.com/nabbar/spantree/wireline"
	"github.com/nabbar/spantree/wireline/message"
)

// Session drives one connection's handshake, burst and steady-state
// line dispatch. It is safe for concurrent use: OnData is expected to
// be called from the connection's own reader goroutine, while OnTimeout
// and OnClose may be called from a timer or from the owning manager.
type Session struct {
	mu sync.Mutex

	id    uuid.UUID
	role  Role
	state State

	peerHost           string
	inboundName        string
	inboundDescription string
	nodeHandle         treenode.Handle
	attached           bool

	conn   io.WriteCloser
	framer wireline.Framer

	tree     treenode.Tree
	identity Identity
	cfg      Config
	lookup   BlockLookup
	log      logger.Logger

	timer *time.Timer

	onClose func(*Session)
}

// NewListener returns a Session bound to a listening socket. It never
// processes data; OnData always fails it with a protocol error.
func NewListener(conn io.WriteCloser, log logger.Logger) *Session {
	return &Session{
		role:   RoleListener,
		state:  StateListener,
		conn:   conn,
		framer: wireline.New(),
		log:    log,
	}
}

// NewInbound returns a Session for a freshly accepted connection,
// starting in WaitAuth1. peerHost is the remote address, used for
// logging only until the handshake reveals the peer's name.
func NewInbound(peerHost string, conn io.WriteCloser, tree treenode.Tree, identity Identity, cfg Config, lookup BlockLookup, log logger.Logger, onClose func(*Session)) *Session {
	s := &Session{
		id:       uuid.New(),
		role:     RoleInbound,
		state:    StateWaitAuth1,
		peerHost: peerHost,
		conn:     conn,
		framer:   wireline.New(),
		tree:     tree,
		identity: identity,
		cfg:      cfg.withDefaults(),
		lookup:   lookup,
		log:      log,
		onClose:  onClose,
	}
	s.resetHandshakeTimerLocked()
	return s
}

// NewOutbound returns a Session for a connection this node dialed,
// starting in Connecting. linkName is the configured LinkBlock name
// being dialed, used to find the send-pass once the dial completes.
func NewOutbound(linkName string, conn io.WriteCloser, tree treenode.Tree, identity Identity, cfg Config, lookup BlockLookup, log logger.Logger, onClose func(*Session)) *Session {
	s := &Session{
		id:       uuid.New(),
		role:     RoleOutbound,
		state:    StateConnecting,
		peerHost: linkName,
		conn:     conn,
		framer:   wireline.New(),
		tree:     tree,
		identity: identity,
		cfg:      cfg.withDefaults(),
		lookup:   lookup,
		log:      log,
		onClose:  onClose,
	}
	s.resetHandshakeTimerLocked()
	return s
}

// ID uniquely identifies this session for logging and correlation
// across the listener, connecting and connected phases of its life.
func (s *Session) ID() uuid.UUID { return s.id }

func (s *Session) Role() Role { return s.role }

func (s *Session) PeerHost() string { return s.peerHost }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// NodeHandle returns the tree node this session attached, if any.
func (s *Session) NodeHandle() (treenode.Handle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nodeHandle, s.attached
}

// OnConnected fires once for an outbound session when its dial
// completes. It sends the initial SERVER offer using the send-pass of
// the LinkBlock named peerHost.
func (s *Session) OnConnected() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.role != RoleOutbound || s.state != StateConnecting {
		return
	}

	block, ok := s.lookup(s.peerHost)
	if !ok {
		if s.log != nil {
			s.log.Error("link: no link block for outbound peer", s.peerHost)
		}
		return
	}

	s.writeLineLocked(fmt.Sprintf("SERVER %s %s 0 :%s", s.identity.Name, block.SendPass, s.identity.Description))
}

// OnData feeds newly read bytes into the session's line framer and
// processes every complete line in arrival order.
func (s *Session) OnData(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateClosed {
		return
	}

	if s.role == RoleListener {
		s.sendErrorLocked("Internal error")
		return
	}

	s.framer.Feed(p)

	for {
		line, ok := s.framer.Next()
		if !ok {
			if s.framer.Buffered() > s.cfg.MaxLineLength {
				s.sendErrorLocked("Line too long")
			}
			return
		}

		if !s.processLineLocked(line) {
			return
		}
	}
}

// OnTimeout fires when the handshake timer expires without reaching
// Connected.
func (s *Session) OnTimeout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.role == RoleListener || s.state == StateConnected || s.state == StateClosed {
		return
	}

	if s.state == StateConnecting && s.log != nil {
		s.log.Warning("link: connection timed out", s.peerHost)
	}

	s.closeLocked()
}

// OnClose tears the session down: closes the socket and, if a node was
// attached, removes its subtree from the tree.
func (s *Session) OnClose() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *Session) closeLocked() {
	if s.state == StateClosed {
		return
	}

	s.state = StateClosed
	s.disarmHandshakeTimerLocked()
	_ = s.conn.Close()

	if s.attached {
		s.tree.Remove(s.nodeHandle)
	}

	if s.onClose != nil {
		s.onClose(s)
	}
}

func (s *Session) sendErrorLocked(reason string) {
	s.writeLineLocked("ERROR :" + reason)
	s.closeLocked()
}

func (s *Session) writeLineLocked(line string) {
	if _, err := s.conn.Write([]byte(line + "\r\n")); err != nil && s.log != nil {
		s.log.Error("link: write failed", line, err)
	}
}

func (s *Session) resetHandshakeTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}

	d := s.cfg.HandshakeTimeout.Time()
	if d <= 0 {
		return
	}

	s.timer = time.AfterFunc(d, s.OnTimeout)
}

func (s *Session) disarmHandshakeTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Session) processLineLocked(raw []byte) bool {
	msg, err := message.Parse(string(raw))
	if err != nil {
		s.sendErrorLocked("Malformed line")
		return false
	}

	switch s.state {
	case StateConnecting:
		return s.handleConnectingLocked(msg)
	case StateWaitAuth1:
		return s.handleWaitAuth1Locked(msg)
	case StateWaitAuth2:
		return s.handleWaitAuth2Locked(msg)
	case StateConnected:
		return s.handleConnectedLocked(msg)
	default:
		s.sendErrorLocked("Internal error")
		return false
	}
}

// serverOffer is the parsed form of a handshake "SERVER name pass hops :desc" line.
type serverOffer struct {
	name string
	pass string
	hops int
	desc string
}

func parseServerOffer(msg message.Message) (serverOffer, bool) {
	if msg.Command != "SERVER" || len(msg.Params) < 4 {
		return serverOffer{}, false
	}

	hops, err := strconv.Atoi(msg.Params[2])
	if err != nil {
		return serverOffer{}, false
	}

	return serverOffer{
		name: msg.Params[0],
		pass: msg.Params[1],
		hops: hops,
		desc: msg.Params[3],
	}, true
}

func (s *Session) handleConnectingLocked(msg message.Message) bool {
	switch msg.Command {
	case "SERVER":
		offer, ok := parseServerOffer(msg)
		if !ok {
			s.sendErrorLocked("Malformed SERVER line")
			return false
		}

		if offer.hops != 0 {
			s.sendErrorLocked("Server too far away for authentication")
			return false
		}

		block, found := s.lookup(offer.name)
		if !found || block.RecvPass != offer.pass {
			s.sendErrorLocked("Invalid credentials")
			return false
		}

		h, err := s.tree.Add(s.tree.Root(), offer.name, offer.desc, s.conn)
		if err != nil {
			s.sendErrorLocked("Duplicate server name")
			return false
		}

		s.nodeHandle = h
		s.attached = true
		s.state = StateConnected
		s.disarmHandshakeTimerLocked()
		s.burstLocked(h)
		return true

	case "ERROR":
		s.logPeerErrorLocked(msg)
		s.closeLocked()
		return false

	default:
		s.sendErrorLocked("Unexpected command")
		return false
	}
}

func (s *Session) handleWaitAuth1Locked(msg message.Message) bool {
	switch msg.Command {
	case "SERVER":
		offer, ok := parseServerOffer(msg)
		if !ok {
			s.sendErrorLocked("Malformed SERVER line")
			return false
		}

		if offer.hops != 0 {
			s.sendErrorLocked("Server too far away for authentication")
			return false
		}

		block, found := s.lookup(offer.name)
		if !found || block.RecvPass != offer.pass {
			s.sendErrorLocked("Invalid credentials")
			return false
		}

		s.inboundName = offer.name
		s.inboundDescription = offer.desc
		s.writeLineLocked(fmt.Sprintf("SERVER %s %s 0 :%s", s.identity.Name, block.SendPass, s.identity.Description))
		s.state = StateWaitAuth2
		s.resetHandshakeTimerLocked()
		return true

	case "ERROR":
		s.logPeerErrorLocked(msg)
		s.closeLocked()
		return false

	default:
		s.sendErrorLocked("Unexpected command")
		return false
	}
}

func (s *Session) handleWaitAuth2Locked(msg message.Message) bool {
	switch msg.Command {
	case "SERVER":
		// Stray repeat of the offer; the peer has already committed to
		// sending us BURST. Ignore.
		return true

	case "BURST":
		h, err := s.tree.Add(s.tree.Root(), s.inboundName, s.inboundDescription, s.conn)
		if err != nil {
			s.sendErrorLocked("Duplicate server name")
			return false
		}

		s.nodeHandle = h
		s.attached = true
		s.state = StateConnected
		s.disarmHandshakeTimerLocked()
		s.burstLocked(h)
		return true

	case "ERROR":
		s.logPeerErrorLocked(msg)
		s.closeLocked()
		return false

	default:
		s.sendErrorLocked("Unexpected command")
		return false
	}
}

func (s *Session) handleConnectedLocked(msg message.Message) bool {
	switch {
	case msg.Command == "ERROR":
		s.logPeerErrorLocked(msg)
		s.closeLocked()
		return false

	case msg.Command == "SERVER" && msg.Prefix != "":
		return s.handleRelayedServerLocked(msg)

	case msg.Command == "VERSION":
		if s.attached && len(msg.Params) > 0 {
			s.tree.SetVersion(s.nodeHandle, msg.Params[len(msg.Params)-1])
		}
		return true

	case msg.Command == "BURST" || msg.Command == "ENDBURST":
		return true

	default:
		if s.log != nil {
			s.log.Debug("link: steady-state line", msg.Command)
		}
		return true
	}
}

func (s *Session) handleRelayedServerLocked(msg message.Message) bool {
	if len(msg.Params) < 4 {
		s.sendErrorLocked("Malformed SERVER line")
		return false
	}

	name := msg.Params[0]
	desc := msg.Params[3]

	parent, ok := s.tree.Find(msg.Prefix)
	if !ok {
		s.sendErrorLocked("Unknown relay parent")
		return false
	}

	if _, err := s.tree.Add(parent, name, desc, nil); err != nil {
		s.sendErrorLocked("Duplicate server name")
		return false
	}

	return true
}

func (s *Session) logPeerErrorLocked(msg message.Message) {
	if s.log == nil {
		return
	}

	reason := ""
	if len(msg.Params) > 0 {
		reason = msg.Params[0]
	}

	s.log.Warning("link: peer sent ERROR", reason)
}
