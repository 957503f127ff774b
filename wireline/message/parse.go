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

package message

import "strings"

func parse(line string) (Message, error) {
	var msg Message

	rest := strings.TrimLeft(line, " ")
	if rest == "" {
		return msg, nil
	}

	if rest[0] == ':' {
		sp := strings.IndexByte(rest, ' ')
		if sp < 0 {
			return Message{}, ErrMalformed
		}

		msg.Prefix = rest[1:sp]
		rest = strings.TrimLeft(rest[sp:], " ")
		if rest == "" {
			return Message{}, ErrMalformed
		}
	}

	if sp := strings.IndexByte(rest, ' '); sp < 0 {
		msg.Command = rest
		return msg, nil
	} else {
		msg.Command = rest[:sp]
		rest = strings.TrimLeft(rest[sp:], " ")
	}

	for rest != "" {
		if rest[0] == ':' {
			msg.Params = append(msg.Params, rest[1:])
			break
		}

		sp := strings.IndexByte(rest, ' ')
		if sp < 0 {
			msg.Params = append(msg.Params, rest)
			break
		}

		msg.Params = append(msg.Params, rest[:sp])
		rest = strings.TrimLeft(rest[sp:], " ")
	}

	return msg, nil
}
