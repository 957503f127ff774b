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

package spanningtree_test

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/nabbar/spantree/confsrc"
	"github.com/nabbar/spantree/link"
	"github.com/nabbar/spantree/logger"
	"github.com/nabbar/spantree/spanningtree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLog() logger.Logger { return logger.NewTo(io.Discard) }

func testConfig(bind string) spanningtree.Config {
	return spanningtree.Config{
		BindAddress: bind,
		Identity:    link.Identity{Name: "a.example", Description: "A", Version: "spantree-test"},
	}
}

func TestManager_InitLoadsLinkBlocks(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	r := confsrc.NewStatic().Add("link", map[string]string{
		"name":     "b.example",
		"ipaddr":   "127.0.0.1",
		"port":     "7001",
		"sendpass": "a-to-b",
		"recvpass": "b-to-a",
	})

	require.NoError(t, m.Init(r))

	err := m.Connect(context.Background(), "nonexistent.example")
	assert.ErrorIs(t, err, spanningtree.ErrUnknownLink)
}

func TestManager_InitRejectsBlockWithNoName(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	r := confsrc.NewStatic().Add("link", map[string]string{"ipaddr": "127.0.0.1"})

	assert.Error(t, m.Init(r))
}

func TestManager_LinksMapLUsersOnFreshTree(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	assert.Empty(t, m.Links())

	mp := m.Map()
	require.Len(t, mp, 1)
	assert.Equal(t, "a.example", mp[0].Name)
	assert.Equal(t, 0, mp[0].Depth)

	lu := m.LUsers()
	assert.Equal(t, 1, lu.ServerCount)
	assert.Equal(t, 0, lu.LinkCount)
}

func TestManager_ConnectMatchesGlobPattern(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	r := confsrc.NewStatic().Add("link", map[string]string{
		"name":     "hub01.example.net",
		"ipaddr":   "127.0.0.1",
		"port":     "1",
		"sendpass": "a-to-b",
		"recvpass": "b-to-a",
	})
	require.NoError(t, m.Init(r))

	// Port 1 on loopback refuses immediately; the point here is only
	// that the pattern resolves to a LinkBlock instead of ErrUnknownLink.
	err := m.Connect(context.Background(), "HUB*")
	assert.NotErrorIs(t, err, spanningtree.ErrUnknownLink)
}

func TestManager_ConnectGlobWithNoMatchIsUnknownLink(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	r := confsrc.NewStatic().Add("link", map[string]string{
		"name": "hub01.example.net", "ipaddr": "127.0.0.1", "port": "1",
	})
	require.NoError(t, m.Init(r))

	err := m.Connect(context.Background(), "leaf*")
	assert.ErrorIs(t, err, spanningtree.ErrUnknownLink)
}

func TestManager_InitLoadsBindBlocksForMultiListenerStart(t *testing.T) {
	m := spanningtree.New(testConfig(""), quietLog())

	r := confsrc.NewStatic().
		Add("bind", map[string]string{"address": "127.0.0.1", "port": "0"}).
		Add("bind", map[string]string{"address": "127.0.0.1", "port": "0"})
	require.NoError(t, m.Init(r))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, m.Start(ctx))

	time.Sleep(20 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()
	assert.NoError(t, m.Stop(stopCtx))
}

func TestManager_StartFailsWhenNoBindConfigured(t *testing.T) {
	m := spanningtree.New(testConfig(""), quietLog())
	err := m.Start(context.Background())
	assert.Error(t, err)
}

func TestManager_SetLocalUsersFeedsLUsers(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	m.SetLocalUsers(42, 3)

	lu := m.LUsers()
	assert.Equal(t, uint32(42), lu.UserCount)
	assert.Equal(t, uint32(3), lu.OperCount)
}

func TestManager_SQuitUnknownServer(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())
	err := m.SQuit("nowhere.example")
	assert.ErrorIs(t, err, spanningtree.ErrUnknownLink)
}

func TestManager_SQuitNonDirectLinkRejected(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	b, err := m.Tree().Add(m.Tree().Root(), "b.example", "B", nil)
	require.NoError(t, err)
	_, err = m.Tree().Add(b, "c.example", "C", nil)
	require.NoError(t, err)

	err = m.SQuit("c.example")
	assert.ErrorIs(t, err, spanningtree.ErrNotDirectLink)
}

func TestManager_StartAndStopBindsAndTearsDownCleanly(t *testing.T) {
	m := spanningtree.New(testConfig("127.0.0.1:0"), quietLog())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, m.Start(ctx))

	// Give the accept loop a moment to actually bind before stopping.
	time.Sleep(20 * time.Millisecond)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second)
	defer stopCancel()

	assert.NoError(t, m.Stop(stopCtx))
}
