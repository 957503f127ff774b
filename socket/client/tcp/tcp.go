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

// Package tcp implements socket.Client as a plain or TLS-wrapped TCP
// dialer, used to open the outbound half of a server-to-server link.
package tcp

import (
	"context"
	"crypto/tls"
	"net"

	"github.com/nabbar/spantree/errors"
	"github.com/nabbar/spantree/socket"
	"github.com/nabbar/spantree/socket/config"
)

type cli struct {
	cfg config.Client
}

// New returns a Client that dials cfg.Address on Connect.
func New(cfg config.Client) socket.Client {
	return &cli{cfg: cfg}
}

func (c *cli) Connect(ctx context.Context) (socket.Context, error) {
	if err := c.cfg.Validate(); err != nil {
		return nil, err
	}

	d := net.Dialer{}
	if t := c.cfg.DialTimeout.Time(); t > 0 {
		d.Timeout = t
	}

	var (
		conn net.Conn
		err  error
	)

	if c.cfg.TLS.Enabled {
		tc := c.cfg.TLS.Config
		if tc == nil {
			tc = &tls.Config{}
		}
		conn, err = (&tls.Dialer{NetDialer: &d, Config: tc}).DialContext(ctx, "tcp", c.cfg.Address)
	} else {
		conn, err = d.DialContext(ctx, "tcp", c.cfg.Address)
	}

	if err != nil {
		return nil, errors.New(errors.CodeTransport, "client: dial failed", err)
	}

	return newConnContext(ctx, conn), nil
}
