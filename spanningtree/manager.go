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

package spanningtree

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nabbar/spantree/atomic"
	"github.com/nabbar/spantree/confsrc"
	"github.com/nabbar/spantree/errors"
	"github.com/nabbar/spantree/link"
	"github.com/nabbar/spantree/logger"
	"github.com/nabbar/spantree/socket"
	"github.com/nabbar/spantree/socket/client/tcp"
	"github.com/nabbar/spantree/socket/config"
	scksrv "github.com/nabbar/spantree/socket/server/tcp"
	"github.com/nabbar/spantree/treenode"
)

// manager keeps its mutable collaborators (the LinkBlock table, the
// live session set, the configured bind addresses, the bound
// listeners) in lock-free atomic containers rather than behind a
// mutex, since all of them are read far more often (every handshake,
// every routed line) than they are written (Reload, connect,
// disconnect).
type manager struct {
	cfg  Config
	log  logger.Logger
	tree treenode.Tree

	blocks   atomic.MapTyped[string, link.LinkBlock]
	sessions atomic.MapTyped[uuid.UUID, *link.Session]
	binds    atomic.Value[[]string]

	listeners atomic.MapTyped[string, socket.Server]
}

func newManager(cfg Config, log logger.Logger) *manager {
	return &manager{
		cfg:       cfg,
		log:       log,
		tree:      treenode.New(cfg.Identity.Name, cfg.Identity.Description),
		blocks:    atomic.NewMapTyped[string, link.LinkBlock](),
		sessions:  atomic.NewMapTyped[uuid.UUID, *link.Session](),
		binds:     atomic.NewValue[[]string](),
		listeners: atomic.NewMapTyped[string, socket.Server](),
	}
}

func (m *manager) Init(r confsrc.Reader) error {
	blocks, err := loadBlocks(r)
	if err != nil {
		return err
	}

	m.blocks.Range(func(k string, _ link.LinkBlock) bool {
		m.blocks.Delete(k)
		return true
	})

	for name, b := range blocks {
		m.blocks.Store(name, b)
	}

	m.binds.Store(loadBinds(r))

	return nil
}

func (m *manager) Reload(r confsrc.Reader) error {
	return m.Init(r)
}

func loadBlocks(r confsrc.Reader) (map[string]link.LinkBlock, error) {
	blocks := make(map[string]link.LinkBlock)

	for i := 0; i < r.Enumerate("link"); i++ {
		name := r.String("link", "name", i)
		if name == "" {
			return nil, errors.New(errors.CodeConfig, "spanningtree: link block missing name")
		}

		blocks[name] = link.LinkBlock{
			Name:     name,
			IPAddr:   r.String("link", "ipaddr", i),
			Port:     r.Uint16("link", "port", i),
			SendPass: r.String("link", "sendpass", i),
			RecvPass: r.String("link", "recvpass", i),
		}
	}

	return blocks, nil
}

// loadBinds reads every "bind" block into a listener address. A block
// may give a full "host:port" in address, or split host and port
// across the two fields; the latter is combined here.
func loadBinds(r confsrc.Reader) []string {
	binds := make([]string, 0, r.Enumerate("bind"))

	for i := 0; i < r.Enumerate("bind"); i++ {
		addr := r.String("bind", "address", i)
		if addr == "" {
			continue
		}

		if port := r.String("bind", "port", i); port != "" {
			addr = fmt.Sprintf("%s:%s", addr, port)
		}

		binds = append(binds, addr)
	}

	return binds
}

func (m *manager) lookup(name string) (link.LinkBlock, bool) {
	return m.blocks.Load(name)
}

// matchBlock resolves a CONNECT argument to a configured LinkBlock. An
// exact name match wins outright; otherwise pattern is matched as a
// case-insensitive glob (filepath.Match syntax: "*" and "?") against
// every configured name in sorted order, and the first match is used.
func (m *manager) matchBlock(pattern string) (string, link.LinkBlock, bool) {
	if b, ok := m.lookup(pattern); ok {
		return pattern, b, true
	}

	var names []string
	m.blocks.Range(func(k string, _ link.LinkBlock) bool {
		names = append(names, k)
		return true
	})
	sort.Strings(names)

	needle := strings.ToLower(pattern)
	for _, n := range names {
		if matched, err := filepath.Match(needle, strings.ToLower(n)); err == nil && matched {
			b, _ := m.lookup(n)
			return n, b, true
		}
	}

	return "", link.LinkBlock{}, false
}

func (m *manager) Start(ctx context.Context) error {
	addrs := m.binds.Load()
	if len(addrs) == 0 && m.cfg.BindAddress != "" {
		addrs = []string{m.cfg.BindAddress}
	}
	if len(addrs) == 0 {
		return errors.New(errors.CodeConfig, "spanningtree: no bind address configured")
	}

	var bound int
	for _, addr := range addrs {
		srv := scksrv.New(nil, m.handleAccepted, m.log)

		if err := srv.RegisterServer(addr); err != nil {
			if m.log != nil {
				m.log.Error("spanningtree: failed to bind listener", addr, err)
			}
			continue
		}

		m.listeners.Store(addr, srv)
		bound++

		go func(addr string, srv socket.Server) {
			if err := srv.Listen(ctx); err != nil && m.log != nil {
				m.log.Error("spanningtree: listener stopped", addr, err)
			}
		}(addr, srv)
	}

	if bound == 0 {
		return errors.New(errors.CodeTransport, "spanningtree: no listener could be bound")
	}

	return nil
}

func (m *manager) Stop(ctx context.Context) error {
	var servers []socket.Server
	m.listeners.Range(func(addr string, srv socket.Server) bool {
		servers = append(servers, srv)
		m.listeners.Delete(addr)
		return true
	})

	var sessions []*link.Session
	m.sessions.Range(func(_ uuid.UUID, s *link.Session) bool {
		sessions = append(sessions, s)
		return true
	})

	g, gctx := errgroup.WithContext(ctx)

	for _, srv := range servers {
		srv := srv
		g.Go(func() error {
			return srv.Shutdown(gctx)
		})
	}

	for _, s := range sessions {
		s := s
		g.Go(func() error {
			s.OnClose()
			return nil
		})
	}

	return g.Wait()
}

func (m *manager) handleAccepted(c socket.Context) {
	sess := link.NewInbound(c.RemoteAddr().String(), c, m.tree, m.cfg.Identity, m.cfg.sessionConfig(), m.lookup, m.log, m.untrackSession)
	m.trackSession(sess)
	m.readLoop(c, sess)
}

func (m *manager) Connect(ctx context.Context, pattern string) error {
	name, block, ok := m.matchBlock(pattern)
	if !ok {
		return ErrUnknownLink
	}

	cli := tcp.New(config.Client{Address: fmt.Sprintf("%s:%d", block.IPAddr, block.Port)})

	c, err := cli.Connect(ctx)
	if err != nil {
		return err
	}

	sess := link.NewOutbound(name, c, m.tree, m.cfg.Identity, m.cfg.sessionConfig(), m.lookup, m.log, m.untrackSession)
	m.trackSession(sess)
	sess.OnConnected()

	go m.readLoop(c, sess)

	return nil
}

func (m *manager) readLoop(c io.Reader, sess *link.Session) {
	buf := make([]byte, 4096)

	for {
		n, err := c.Read(buf)
		if n > 0 {
			sess.OnData(buf[:n])
		}

		if err != nil || sess.State() == link.StateClosed {
			sess.OnClose()
			return
		}
	}
}

func (m *manager) trackSession(s *link.Session) {
	m.sessions.Store(s.ID(), s)
}

func (m *manager) untrackSession(s *link.Session) {
	m.sessions.Delete(s.ID())
}

func (m *manager) Tree() treenode.Tree {
	return m.tree
}

// SetLocalUsers records this server's own client/oper counts on the
// root node. Remote nodes' counts are never updated by this core: the
// user and channel registry that would drive them over the burst is
// outside its scope, so LUsers sums whatever each node last reported
// of itself, which for every node but the local one stays zero.
func (m *manager) SetLocalUsers(userCount, operCount uint32) {
	m.tree.SetCounts(m.tree.Root(), userCount, operCount)
}
