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

package treenode

import "sync"

type node struct {
	name        string
	description string
	version     string
	userCount   uint32
	operCount   uint32
	parent      Handle
	children    []Handle
	socket      any
}

func (n *node) snapshot(h Handle) Node {
	children := make([]Handle, len(n.children))
	copy(children, n.children)

	return Node{
		Handle:      h,
		Name:        n.name,
		Description: n.description,
		Version:     n.version,
		UserCount:   n.userCount,
		OperCount:   n.operCount,
		Parent:      n.parent,
		Children:    children,
		Socket:      n.socket,
	}
}

type tree struct {
	m sync.RWMutex

	next  Handle
	root  Handle
	nodes map[Handle]*node
}

func newTree(name, description string) *tree {
	t := &tree{
		nodes: make(map[Handle]*node),
	}

	t.next = 1
	t.root = t.next
	t.nodes[t.root] = &node{name: name, description: description}
	t.next++

	return t
}

func (t *tree) Root() Handle {
	return t.root
}

func (t *tree) Add(parent Handle, name, description string, socket any) (Handle, error) {
	t.m.Lock()
	defer t.m.Unlock()

	if _, ok := t.nodes[parent]; !ok {
		return 0, ErrUnknownParent
	}

	for _, n := range t.nodes {
		if n.name == name {
			return 0, ErrDuplicateName
		}
	}

	h := t.next
	t.next++

	t.nodes[h] = &node{
		name:        name,
		description: description,
		parent:      parent,
		socket:      socket,
	}

	p := t.nodes[parent]
	p.children = append(p.children, h)

	return h, nil
}

func (t *tree) Remove(h Handle) {
	t.m.Lock()
	defer t.m.Unlock()

	if h == t.root {
		return
	}

	n, ok := t.nodes[h]
	if !ok {
		return
	}

	if p, ok := t.nodes[n.parent]; ok {
		for i, c := range p.children {
			if c == h {
				p.children = append(p.children[:i], p.children[i+1:]...)
				break
			}
		}
	}

	t.removeSubtree(h)
}

func (t *tree) removeSubtree(h Handle) {
	n, ok := t.nodes[h]
	if !ok {
		return
	}

	for _, c := range n.children {
		t.removeSubtree(c)
	}

	delete(t.nodes, h)
}

func (t *tree) Find(name string) (Handle, bool) {
	t.m.RLock()
	defer t.m.RUnlock()

	var found Handle
	var ok bool

	t.walk(t.root, func(h Handle, n *node) bool {
		if n.name == name {
			found, ok = h, true
			return false
		}
		return true
	})

	return found, ok
}

// walk performs a pre-order traversal starting at h, calling visit for
// each node. visit returning false stops the traversal.
func (t *tree) walk(h Handle, visit func(Handle, *node) bool) bool {
	n, ok := t.nodes[h]
	if !ok {
		return true
	}

	if !visit(h, n) {
		return false
	}

	for _, c := range n.children {
		if !t.walk(c, visit) {
			return false
		}
	}

	return true
}

func (t *tree) BestRouteTo(name string) (Handle, bool) {
	t.m.RLock()
	defer t.m.RUnlock()

	var h Handle
	var ok bool

	t.walk(t.root, func(candidate Handle, n *node) bool {
		if n.name == name {
			h, ok = candidate, true
			return false
		}
		return true
	})

	if !ok || h == t.root {
		return 0, false
	}

	for {
		n := t.nodes[h]
		if n.parent == t.root {
			return h, true
		}
		h = n.parent
	}
}

func (t *tree) EnumerateChildren(h Handle) []Handle {
	t.m.RLock()
	defer t.m.RUnlock()

	n, ok := t.nodes[h]
	if !ok {
		return nil
	}

	children := make([]Handle, len(n.children))
	copy(children, n.children)
	return children
}

func (t *tree) Get(h Handle) (Node, bool) {
	t.m.RLock()
	defer t.m.RUnlock()

	n, ok := t.nodes[h]
	if !ok {
		return Node{}, false
	}

	return n.snapshot(h), true
}

func (t *tree) SetVersion(h Handle, version string) {
	t.m.Lock()
	defer t.m.Unlock()

	if n, ok := t.nodes[h]; ok {
		n.version = version
	}
}

func (t *tree) SetCounts(h Handle, userCount, operCount uint32) {
	t.m.Lock()
	defer t.m.Unlock()

	if n, ok := t.nodes[h]; ok {
		n.userCount = userCount
		n.operCount = operCount
	}
}
