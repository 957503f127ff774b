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
	"io"

	"github.com/nabbar/spantree/treenode"
)

// Links returns one entry per direct child of the root.
func (m *manager) Links() []LinkSummary {
	root := m.tree.Root()

	out := make([]LinkSummary, 0)
	for _, h := range m.tree.EnumerateChildren(root) {
		n, ok := m.tree.Get(h)
		if !ok {
			continue
		}
		out = append(out, LinkSummary{Name: n.Name, Description: n.Description, HopCount: 1})
	}

	return out
}

// Map returns a depth-first listing of the whole tree, root first.
func (m *manager) Map() []MapEntry {
	out := make([]MapEntry, 0)
	m.walkMap(m.tree.Root(), 0, &out)
	return out
}

func (m *manager) walkMap(h treenode.Handle, depth int, out *[]MapEntry) {
	n, ok := m.tree.Get(h)
	if !ok {
		return
	}

	*out = append(*out, MapEntry{Name: n.Name, Depth: depth})

	for _, c := range n.Children {
		m.walkMap(c, depth+1, out)
	}
}

// LUsers returns the aggregate counters across every known server.
func (m *manager) LUsers() LUsersSummary {
	var sum LUsersSummary
	m.sumTree(m.tree.Root(), &sum)
	return sum
}

func (m *manager) sumTree(h treenode.Handle, sum *LUsersSummary) {
	n, ok := m.tree.Get(h)
	if !ok {
		return
	}

	sum.UserCount += n.UserCount
	sum.OperCount += n.OperCount
	sum.ServerCount++

	if h == m.tree.Root() {
		sum.LinkCount = len(n.Children)
	}

	for _, c := range n.Children {
		m.sumTree(c, sum)
	}
}

func (m *manager) SQuit(name string) error {
	root := m.tree.Root()

	h, ok := m.tree.Find(name)
	if !ok {
		return ErrUnknownLink
	}

	n, ok := m.tree.Get(h)
	if !ok {
		return ErrUnknownLink
	}

	if n.Parent != root {
		return ErrNotDirectLink
	}

	if closer, ok := n.Socket.(io.Closer); ok && closer != nil {
		_ = closer.Close()
	}

	m.tree.Remove(h)

	return nil
}
