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

package treenode_test

import (
	"testing"

	"github.com/nabbar/spantree/treenode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_AddCreatesDirectChild(t *testing.T) {
	tr := treenode.New("root.example", "root")

	h, err := tr.Add(tr.Root(), "peer.example", "peer", "conn-1")
	require.NoError(t, err)

	n, ok := tr.Get(h)
	require.True(t, ok)
	assert.Equal(t, "peer.example", n.Name)
	assert.Equal(t, tr.Root(), n.Parent)
	assert.Equal(t, "conn-1", n.Socket)
}

func TestTree_AddRejectsDuplicateName(t *testing.T) {
	tr := treenode.New("root.example", "root")
	_, err := tr.Add(tr.Root(), "peer.example", "peer", nil)
	require.NoError(t, err)

	_, err = tr.Add(tr.Root(), "peer.example", "elsewhere", nil)
	assert.ErrorIs(t, err, treenode.ErrDuplicateName)
}

func TestTree_AddRejectsUnknownParent(t *testing.T) {
	tr := treenode.New("root.example", "root")
	_, err := tr.Add(treenode.Handle(9999), "peer.example", "peer", nil)
	assert.ErrorIs(t, err, treenode.ErrUnknownParent)
}

func TestTree_FindAndBestRouteTo(t *testing.T) {
	tr := treenode.New("a.example", "A")
	b, err := tr.Add(tr.Root(), "b.example", "B", "conn-b")
	require.NoError(t, err)
	c, err := tr.Add(b, "c.example", "C", nil)
	require.NoError(t, err)

	fh, ok := tr.Find("c.example")
	require.True(t, ok)
	assert.Equal(t, c, fh)

	route, ok := tr.BestRouteTo("c.example")
	require.True(t, ok)
	assert.Equal(t, b, route, "route to a grandchild is the direct child on its path")

	route, ok = tr.BestRouteTo("b.example")
	require.True(t, ok)
	assert.Equal(t, b, route)

	_, ok = tr.BestRouteTo("nowhere.example")
	assert.False(t, ok)
}

func TestTree_EnumerateChildrenPreservesInsertionOrder(t *testing.T) {
	tr := treenode.New("root.example", "root")
	h1, _ := tr.Add(tr.Root(), "one.example", "1", nil)
	h2, _ := tr.Add(tr.Root(), "two.example", "2", nil)
	h3, _ := tr.Add(tr.Root(), "three.example", "3", nil)

	assert.Equal(t, []treenode.Handle{h1, h2, h3}, tr.EnumerateChildren(tr.Root()))
}

func TestTree_RemoveDetachesSubtreeRecursively(t *testing.T) {
	tr := treenode.New("a.example", "A")
	b, _ := tr.Add(tr.Root(), "b.example", "B", nil)
	c, _ := tr.Add(b, "c.example", "C", nil)

	tr.Remove(b)

	_, ok := tr.Get(b)
	assert.False(t, ok)
	_, ok = tr.Get(c)
	assert.False(t, ok, "descendants of a removed node are also unreachable")

	assert.Empty(t, tr.EnumerateChildren(tr.Root()))
}

func TestTree_RemoveIsNoopOnRoot(t *testing.T) {
	tr := treenode.New("a.example", "A")
	tr.Remove(tr.Root())

	_, ok := tr.Get(tr.Root())
	assert.True(t, ok)
}

func TestTree_SetVersionAndCounts(t *testing.T) {
	tr := treenode.New("root.example", "root")
	h, _ := tr.Add(tr.Root(), "peer.example", "peer", nil)

	tr.SetVersion(h, "spantree-1.0")
	tr.SetCounts(h, 42, 3)

	n, ok := tr.Get(h)
	require.True(t, ok)
	assert.Equal(t, "spantree-1.0", n.Version)
	assert.Equal(t, uint32(42), n.UserCount)
	assert.Equal(t, uint32(3), n.OperCount)
}

func TestTree_ChildParentInvariant(t *testing.T) {
	tr := treenode.New("root.example", "root")
	b, _ := tr.Add(tr.Root(), "b.example", "B", nil)
	c, _ := tr.Add(b, "c.example", "C", nil)

	for _, h := range tr.EnumerateChildren(tr.Root()) {
		n, ok := tr.Get(h)
		require.True(t, ok)
		assert.Equal(t, tr.Root(), n.Parent)
	}

	n, ok := tr.Get(c)
	require.True(t, ok)
	assert.Equal(t, b, n.Parent)
}
