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

package confsrc_test

import (
	"testing"

	"github.com/nabbar/spantree/confsrc"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatic_EnumerateAndRead(t *testing.T) {
	r := confsrc.NewStatic().
		Add("link", map[string]string{"name": "hub01.example.net", "sendpass": "s3cr3t"}).
		Add("link", map[string]string{"name": "hub02.example.net", "sendpass": "other"})

	require.Equal(t, 2, r.Enumerate("link"))
	assert.Equal(t, "hub01.example.net", r.String("link", "name", 0))
	assert.Equal(t, "hub02.example.net", r.String("link", "name", 1))
	assert.Equal(t, "", r.String("link", "name", 2))
	assert.Equal(t, "", r.String("missing", "name", 0))
}

func TestStatic_Uint16(t *testing.T) {
	r := confsrc.NewStatic().Add("bind", map[string]string{"port": "7000"})

	assert.Equal(t, uint16(7000), r.Uint16("bind", "port", 0))
	assert.Equal(t, uint16(0), r.Uint16("bind", "port", 99))
	assert.Equal(t, uint16(0), r.Uint16("bind", "missing", 0))
}

func TestViper_ReadsSliceOfMapsSection(t *testing.T) {
	v := viper.New()
	v.Set("bind", []map[string]any{
		{"address": "0.0.0.0", "port": "7000"},
		{"address": "::", "port": "7001"},
	})

	r := confsrc.NewViper(func() *viper.Viper { return v })

	require.Equal(t, 2, r.Enumerate("bind"))
	assert.Equal(t, "0.0.0.0", r.String("bind", "address", 0))
	assert.Equal(t, uint16(7001), r.Uint16("bind", "port", 1))
}

func TestViper_NilFuncReturnsZeroValues(t *testing.T) {
	r := confsrc.NewViper(nil)

	assert.Equal(t, 0, r.Enumerate("bind"))
	assert.Equal(t, "", r.String("bind", "address", 0))
}
