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

package tcp_test

import (
	"context"
	"net"
	"testing"

	scktcp "github.com/nabbar/spantree/socket/client/tcp"
	"github.com/nabbar/spantree/socket/config"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestClientTCP(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "socket/client/tcp suite")
}

var _ = Describe("TCP client", func() {
	It("rejects an invalid address before dialing", func() {
		c := scktcp.New(config.Client{})
		_, err := c.Connect(context.Background())
		Expect(err).To(HaveOccurred())
	})

	It("connects to a listening peer and exchanges data", func() {
		ln, err := net.Listen("tcp", "127.0.0.1:0")
		Expect(err).ToNot(HaveOccurred())
		defer ln.Close()

		go func() {
			conn, aerr := ln.Accept()
			if aerr != nil {
				return
			}
			defer conn.Close()
			buf := make([]byte, 8)
			n, _ := conn.Read(buf)
			_, _ = conn.Write(buf[:n])
		}()

		c := scktcp.New(config.Client{Address: ln.Addr().String()})
		conn, err := c.Connect(context.Background())
		Expect(err).ToNot(HaveOccurred())
		defer conn.Close()

		_, err = conn.Write([]byte("hello"))
		Expect(err).ToNot(HaveOccurred())

		buf := make([]byte, 5)
		_, err = conn.Read(buf)
		Expect(err).ToNot(HaveOccurred())
		Expect(string(buf)).To(Equal("hello"))
		Expect(conn.Context()).ToNot(BeNil())
	})
})
