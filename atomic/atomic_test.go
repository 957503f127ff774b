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

package atomic_test

import (
	"sync"
	"testing"

	"github.com/nabbar/spantree/atomic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCast_SuccessAndFailure(t *testing.T) {
	n, ok := atomic.Cast[int](42)
	require.True(t, ok)
	assert.Equal(t, 42, n)

	_, ok = atomic.Cast[string](42)
	assert.False(t, ok)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, atomic.IsEmpty[string](nil))
	assert.True(t, atomic.IsEmpty[string](42))
	assert.False(t, atomic.IsEmpty[string](""))
	assert.False(t, atomic.IsEmpty[int](0))
}

func TestMapAny_StoreLoadDelete(t *testing.T) {
	m := atomic.NewMapAny[string]()

	m.Store("hub01", 1)
	v, ok := m.Load("hub01")
	require.True(t, ok)
	assert.Equal(t, 1, v)

	m.Delete("hub01")
	_, ok = m.Load("hub01")
	assert.False(t, ok)
}

func TestMapAny_LoadOrStore(t *testing.T) {
	m := atomic.NewMapAny[string]()

	v, loaded := m.LoadOrStore("hub01", 1)
	assert.False(t, loaded)
	assert.Equal(t, 1, v)

	v, loaded = m.LoadOrStore("hub01", 2)
	assert.True(t, loaded)
	assert.Equal(t, 1, v)
}

func TestMapAny_RangeDropsWrongType(t *testing.T) {
	m := atomic.NewMapAny[string]()
	m.Store("hub01", 1)

	seen := 0
	m.Range(func(k string, v any) bool {
		seen++
		return true
	})

	assert.Equal(t, 1, seen)
}

func TestMapAny_ConcurrentAccess(t *testing.T) {
	m := atomic.NewMapAny[int]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m.Store(i, i*2)
		}(i)
	}
	wg.Wait()

	for i := 0; i < 50; i++ {
		v, ok := m.Load(i)
		require.True(t, ok)
		assert.Equal(t, i*2, v)
	}
}

func TestMapTyped_PreservesType(t *testing.T) {
	m := atomic.NewMapTyped[string, int]()

	m.Store("hub01", 7)
	v, ok := m.Load("hub01")
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, loaded := m.Swap("hub01", 9)
	assert.True(t, loaded)
	v, _ = m.Load("hub01")
	assert.Equal(t, 9, v)
}

func TestValue_DefaultLoadBeforeStore(t *testing.T) {
	v := atomic.NewValueDefault[int](-1, 0)

	assert.Equal(t, -1, v.Load())

	v.Store(5)
	assert.Equal(t, 5, v.Load())
}

func TestValue_StoreZeroUsesDefaultStore(t *testing.T) {
	v := atomic.NewValueDefault[int](0, 42)

	v.Store(0)
	assert.Equal(t, 42, v.Load())
}

func TestValue_CompareAndSwap(t *testing.T) {
	v := atomic.NewValue[string]()
	v.Store("hub01")

	swapped := v.CompareAndSwap("hub01", "hub02")
	assert.True(t, swapped)
	assert.Equal(t, "hub02", v.Load())

	swapped = v.CompareAndSwap("hub01", "hub03")
	assert.False(t, swapped)
	assert.Equal(t, "hub02", v.Load())
}
