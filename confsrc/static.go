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

package confsrc

import "strconv"

// Static is an in-memory Reader, used by tests in place of a real
// configuration file.
type Static map[string][]map[string]string

// NewStatic returns an empty Static reader.
func NewStatic() Static {
	return make(Static)
}

// Add appends a block to section and returns the receiver for chaining.
func (s Static) Add(section string, block map[string]string) Static {
	s[section] = append(s[section], block)
	return s
}

func (s Static) Enumerate(section string) int {
	return len(s[section])
}

func (s Static) String(section, key string, index int) string {
	b := s[section]
	if index < 0 || index >= len(b) {
		return ""
	}

	return b[index][key]
}

func (s Static) Uint16(section, key string, index int) uint16 {
	v := s.String(section, key, index)
	if v == "" {
		return 0
	}

	n, err := strconv.ParseUint(v, 10, 16)
	if err != nil {
		return 0
	}

	return uint16(n)
}
