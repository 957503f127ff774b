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

// Package treenode models the replicated server topology as an arena of
// nodes addressed by Handle rather than by pointer: every parent/child
// reference is a Handle, so there is no reference cycle for a GC or a
// reviewer to untangle. Remove unlinks a node from its parent's child
// list and then deletes it and its subtree from the arena's backing map
// in one recursive walk.
package treenode

import "github.com/nabbar/spantree/errors"

// Handle addresses a Node in a Tree's arena. The zero Handle never
// addresses a real node.
type Handle uint64

// Node is a snapshot of one server's position and metadata in the tree.
// Values returned by a Tree are copies; mutating one has no effect on
// the tree.
type Node struct {
	Handle      Handle
	Name        string
	Description string
	Version     string
	UserCount   uint32
	OperCount   uint32
	Parent      Handle
	Children    []Handle

	// Socket holds the caller-supplied payload passed to Add, present
	// only for direct children of the root. It is opaque to this
	// package; link sessions use it to stash their own reference.
	Socket any
}

// ErrDuplicateName is returned by Add when name already exists in the tree.
var ErrDuplicateName = errors.New(errors.CodeDuplicateName, "treenode: duplicate server name")

// ErrUnknownParent is returned by Add when parent does not address a
// live node.
var ErrUnknownParent = errors.New(errors.CodeProtocol, "treenode: unknown parent handle")

// Tree is a mutable, concurrency-safe server topology rooted at a single
// local node created by New.
type Tree interface {
	// Root returns the handle of the local root node.
	Root() Handle

	// Add creates a new node named name under parent and returns its
	// handle. socket is stored verbatim on the node (nil for indirect
	// nodes learned via burst). Fails with ErrDuplicateName if name
	// already exists anywhere in the tree.
	Add(parent Handle, name, description string, socket any) (Handle, error)

	// Remove detaches h from its parent and deletes h and its entire
	// subtree. A no-op if h does not exist or is the root.
	Remove(h Handle)

	// Find returns the handle of the node named name, in pre-order
	// traversal from the root. ok is false if no such node exists.
	Find(name string) (Handle, bool)

	// BestRouteTo returns the direct child of the root on the path
	// toward the named server, or ok=false if the server is absent.
	BestRouteTo(name string) (Handle, bool)

	// EnumerateChildren returns h's children in insertion order.
	EnumerateChildren(h Handle) []Handle

	// Get returns a snapshot of the node addressed by h.
	Get(h Handle) (Node, bool)

	// SetVersion records a server's announced version string.
	SetVersion(h Handle, version string)

	// SetCounts records a server's user/oper counts.
	SetCounts(h Handle, userCount, operCount uint32)
}

// New returns a Tree whose root is a freshly created local node.
func New(name, description string) Tree {
	return newTree(name, description)
}
