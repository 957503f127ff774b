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

// Package tcp implements socket.Server over a plain or TLS-wrapped TCP
// listener: one bind address, one Handler invoked per accepted
// connection, each on its own goroutine.
package tcp

import (
	"context"
	"crypto/tls"
	"net"
	"sync"
	"sync/atomic"

	"github.com/nabbar/spantree/errors"
	"github.com/nabbar/spantree/logger"
	"github.com/nabbar/spantree/socket"
	"github.com/nabbar/spantree/socket/config"
)

// ErrInvalidAddress is returned by Listen when RegisterServer has not
// been called, or was called with an address that fails to parse.
var ErrInvalidAddress = errors.New(errors.CodeConfig, "server: invalid or missing bind address")

// ErrInvalidHandler is returned by Listen when the server was built
// without a Handler.
var ErrInvalidHandler = errors.New(errors.CodeConfig, "server: missing handler")

// ErrAlreadyRunning is returned by Listen called on a server already
// accepting connections.
var ErrAlreadyRunning = errors.New(errors.CodeConfig, "server: already running")

// UpdateConn, if set, is called once for each accepted net.Conn before
// the Handler runs, so a caller can tune socket options (TCP_NODELAY,
// keepalive) without subclassing the server.
type UpdateConn func(conn net.Conn)

type srv struct {
	mu sync.RWMutex

	update  UpdateConn
	handler socket.Handler
	log     logger.Logger

	cfg config.Server
	ln  net.Listener

	running atomic.Bool
	gone    atomic.Bool
	conns   atomic.Int64

	done chan struct{}
}

// New returns a Server with no bind address yet; call RegisterServer (or
// RegisterConfig for TLS and idle-timeout options) before Listen.
func New(update UpdateConn, handler socket.Handler, log logger.Logger) socket.Server {
	return &srv{
		update:  update,
		handler: handler,
		log:     log,
		done:    make(chan struct{}),
	}
}

// RegisterServer sets the bind address with no TLS and no idle timeout.
func (s *srv) RegisterServer(address string) error {
	return s.RegisterConfig(config.Server{Address: address})
}

// RegisterConfig sets the full bind configuration.
func (s *srv) RegisterConfig(cfg config.Server) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cfg = cfg
	return nil
}

func (s *srv) Listen(ctx context.Context) error {
	s.mu.RLock()
	cfg := s.cfg
	s.mu.RUnlock()

	if cfg.Address == "" {
		return ErrInvalidAddress
	}

	if s.handler == nil {
		return ErrInvalidHandler
	}

	if !s.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}

	defer func() {
		s.running.Store(false)
		s.gone.Store(true)
		close(s.done)
	}()

	ln, err := s.listen(cfg)
	if err != nil {
		return errors.New(errors.CodeTransport, "server: listen failed", err)
	}

	s.mu.Lock()
	s.ln = ln
	s.mu.Unlock()

	go func() {
		<-ctx.Done()
		_ = s.closeListener()
	}()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return nil
			default:
			}
			if s.gone.Load() {
				return nil
			}
			return errors.New(errors.CodeTransport, "server: accept failed", err)
		}

		if s.update != nil {
			s.update(conn)
		}

		s.conns.Add(1)
		go s.serve(ctx, conn)
	}
}

func (s *srv) listen(cfg config.Server) (net.Listener, error) {
	if cfg.TLS.Enabled {
		tc := cfg.TLS.Config
		if tc == nil {
			tc = &tls.Config{}
		}
		return tls.Listen("tcp", cfg.Address, tc)
	}
	return net.Listen("tcp", cfg.Address)
}

func (s *srv) serve(ctx context.Context, conn net.Conn) {
	defer s.conns.Add(-1)
	defer func() {
		if r := recover(); r != nil && s.log != nil {
			s.log.Error("server: handler panic", r)
		}
	}()

	s.handler(newConnContext(ctx, conn))
}

func (s *srv) closeListener() error {
	s.gone.Store(true)

	s.mu.RLock()
	ln := s.ln
	s.mu.RUnlock()

	if ln == nil {
		return nil
	}
	return ln.Close()
}

func (s *srv) Shutdown(ctx context.Context) error {
	if err := s.closeListener(); err != nil {
		return errors.New(errors.CodeTransport, "server: shutdown failed", err)
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *srv) IsRunning() bool {
	return s.running.Load()
}

func (s *srv) IsGone() bool {
	return s.gone.Load()
}

func (s *srv) OpenConnections() int64 {
	return s.conns.Load()
}

func (s *srv) Done() <-chan struct{} {
	return s.done
}
