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

import (
	"strconv"

	"github.com/spf13/viper"
)

// FuncViper returns the *viper.Viper instance to read from, resolved
// lazily so a Reader can be wired up before the configuration file is
// actually loaded.
type FuncViper func() *viper.Viper

// viperReader implements Reader over a *viper.Viper tree where each
// section is a slice of maps, e.g.:
//
//	bind:
//	  - address: "0.0.0.0"
//	    port: "7000"
//	link:
//	  - name: "hub01.example.net"
//	    sendpass: "secret"
type viperReader struct {
	fct FuncViper
}

// NewViper returns a Reader backed by the viper instance fct resolves.
func NewViper(fct FuncViper) Reader {
	return &viperReader{fct: fct}
}

func (o *viperReader) blocks(section string) []map[string]any {
	if o.fct == nil {
		return nil
	}

	v := o.fct()
	if v == nil {
		return nil
	}

	var raw []any
	switch t := v.Get(section).(type) {
	case []map[string]any:
		return t
	case []any:
		raw = t
	default:
		return nil
	}

	res := make([]map[string]any, 0, len(raw))
	for _, r := range raw {
		if m, k := r.(map[string]any); k {
			res = append(res, m)
		} else if m, k := r.(map[any]any); k {
			conv := make(map[string]any, len(m))
			for key, val := range m {
				if ks, k2 := key.(string); k2 {
					conv[ks] = val
				}
			}
			res = append(res, conv)
		}
	}

	return res
}

func (o *viperReader) Enumerate(section string) int {
	return len(o.blocks(section))
}

func (o *viperReader) String(section, key string, index int) string {
	b := o.blocks(section)
	if index < 0 || index >= len(b) {
		return ""
	}

	v, ok := b[index][key]
	if !ok {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	default:
		return ""
	}
}

func (o *viperReader) Uint16(section, key string, index int) uint16 {
	s := o.String(section, key, index)
	if s == "" {
		return 0
	}

	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0
	}

	return uint16(n)
}
