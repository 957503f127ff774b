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

// Package confsrc abstracts the configuration source the link core reads
// its listener and link blocks from, mirroring the original
// ConfigReader::Enumerate / ReadValue indexed-block API: every repeatable
// block ("bind", "link") is addressed by section name and a 0-based index
// inside it.
package confsrc

// Reader reads repeatable, indexed configuration blocks.
//
// A "section" is a top-level repeatable key ("bind" or "link"). Enumerate
// reports how many blocks exist under a section; String and Uint16 read a
// named field from the block at the given index. Reading a field that
// does not exist, or indexing past Enumerate's count, returns the zero
// value.
type Reader interface {
	// Enumerate returns the number of blocks under section.
	Enumerate(section string) int

	// String returns the string value of key in the index-th block of
	// section.
	String(section, key string, index int) string

	// Uint16 returns the uint16 value of key in the index-th block of
	// section.
	Uint16(section, key string, index int) uint16
}
