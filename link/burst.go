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

package link

import (
	"fmt"

	"github.com/nabbar/spantree/treenode"
)

// burstLocked sends the full server tree to peer, depth-first, skipping
// the root itself and the peer's own node (the peer already knows
// about both). Each line announces one server relative to its parent's
// name, so the receiving end can graft it onto the matching branch of
// its own tree.
func (s *Session) burstLocked(peer treenode.Handle) {
	s.writeLineLocked("BURST")
	s.walkBurstLocked(s.tree.Root(), 0, peer)
	s.writeLineLocked("ENDBURST")
	s.writeLineLocked("VERSION :" + s.identity.Version)
}

func (s *Session) walkBurstLocked(h treenode.Handle, depth int, peer treenode.Handle) {
	n, ok := s.tree.Get(h)
	if !ok {
		return
	}

	if depth > 0 && h != peer {
		parent, ok := s.tree.Get(n.Parent)
		if ok {
			s.writeLineLocked(fmt.Sprintf(":%s SERVER %s * %d :%s", parent.Name, n.Name, depth, n.Description))
		}
	}

	for _, c := range n.Children {
		s.walkBurstLocked(c, depth+1, peer)
	}
}
