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

// Package config holds the bind/dial configuration consumed by
// socket/server/tcp and socket/client/tcp.
package config

import (
	"crypto/tls"
	"net"
	"strings"

	"github.com/nabbar/spantree/duration"
	"github.com/nabbar/spantree/errors"
)

// ErrInvalidAddress is returned when a Server or Client config carries an
// address that fails to parse as host:port.
var ErrInvalidAddress = errors.New(errors.CodeConfig, "invalid address")

// TLS carries the optional TLS wrapping for a listener or dialer. A nil
// Config with Enabled true means "use the Go default tls.Config".
type TLS struct {
	Enabled bool
	Config  *tls.Config
}

// Server is the bind configuration for a TCP listener.
type Server struct {
	Address string

	// ConIdleTimeout is carried with the bind configuration, but
	// socket/server/tcp does not read it: accepted connections have no
	// idle timeout.
	ConIdleTimeout duration.Duration

	TLS TLS
}

// Validate reports whether Address parses as host:port.
func (c Server) Validate() error {
	return validateAddress(c.Address)
}

// Client is the dial configuration for an outbound TCP connection.
type Client struct {
	Address string

	DialTimeout duration.Duration

	TLS TLS
}

// Validate reports whether Address parses as host:port.
func (c Client) Validate() error {
	return validateAddress(c.Address)
}

func validateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return ErrInvalidAddress
	}

	if _, _, err := net.SplitHostPort(address); err != nil {
		return errors.New(errors.CodeConfig, "invalid address", ErrInvalidAddress, err)
	}

	return nil
}
