// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocked_CacheStaysCoherent(t *testing.T) {
	t.Parallel()

	l, err := NewLocked(NewBytes[int](), 8)
	require.NoError(t, err)

	_, ok := l.Get(bs("k"))
	require.False(t, ok)

	// a cached miss must not survive the insert
	l.Insert(bs("k"), 1)
	v, ok := l.Get(bs("k"))
	require.True(t, ok)
	require.Equal(t, 1, v)

	l.Insert(bs("k"), 2)
	v, ok = l.Get(bs("k"))
	require.True(t, ok)
	require.Equal(t, 2, v)

	old, ok := l.Delete(bs("k"))
	require.True(t, ok)
	require.Equal(t, 2, old)
	require.False(t, l.Contains(bs("k")))

	l.Insert(bs("ka"), 3)
	l.Insert(bs("kb"), 4)
	require.True(t, l.Contains(bs("ka")))
	require.Equal(t, 2, l.DeletePrefix(bs("k")))
	require.False(t, l.Contains(bs("ka")))
	require.Zero(t, l.Len())
}

func TestLocked_RuneKeysDoNotCollide(t *testing.T) {
	t.Parallel()

	l, err := NewLocked(NewRunes[string](), 16)
	require.NoError(t, err)
	l.Insert([]rune{0x100}, "wide")
	l.Insert([]rune{0x1, 0x0}, "narrow")

	v, _ := l.Get([]rune{0x100})
	require.Equal(t, "wide", v)
	v, _ = l.Get([]rune{0x1, 0x0})
	require.Equal(t, "narrow", v)
}

func TestLocked_NoCache(t *testing.T) {
	t.Parallel()

	l, err := NewLocked(NewBytes[int](), 0)
	require.NoError(t, err)
	l.Insert(bs("a"), 1)
	require.True(t, l.Contains(bs("a")))
	require.True(t, l.HasPrefix(bs("")))

	snap := l.Snapshot()
	l.Insert(bs("b"), 2)
	require.Equal(t, 1, snap.Len())
	require.Equal(t, 2, l.Len())

	var keys []string
	l.View(func(tr *Trie[byte, int]) {
		for k := range tr.Keys() {
			keys = append(keys, string(k))
		}
	})
	require.Equal(t, []string{"a", "b"}, keys)
}

func TestLocked_Concurrent(t *testing.T) {
	t.Parallel()

	l, err := NewLocked(NewBytes[int](), 64)
	require.NoError(t, err)

	const writers, perWriter = 4, 200
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				key := bs(fmt.Sprintf("w%d/%03d", w, i))
				l.Insert(key, i)
				if i%2 == 1 {
					l.Delete(key)
				}
			}
		}(w)
	}
	for r := 0; r < 4; r++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				l.Get(bs(fmt.Sprintf("w0/%03d", i)))
				l.HasPrefix(bs("w1/"))
				l.Len()
			}
		}()
	}
	wg.Wait()

	require.Equal(t, writers*perWriter/2, l.Len())
	for w := 0; w < writers; w++ {
		for i := 0; i < perWriter; i++ {
			v, ok := l.Get(bs(fmt.Sprintf("w%d/%03d", w, i)))
			require.Equal(t, i%2 == 0, ok)
			if ok {
				require.Equal(t, i, v)
			}
		}
	}
	l.View(func(tr *Trie[byte, int]) {
		require.NoError(t, tr.Validate())
	})
}
