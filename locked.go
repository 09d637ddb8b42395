// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Locked serializes writers against readers of a Trie so it can be shared
// between goroutines. Readers run concurrently with each other. Exact
// lookups can be served from a bounded LRU cache, which every mutation
// purges.
type Locked[S Symbol, T any] struct {
	mu    sync.RWMutex
	tree  *Trie[S, T]
	cache *lru.Cache[string, cachedLookup[T]]
}

type cachedLookup[T any] struct {
	value T
	found bool
}

// NewLocked wraps tree, which must not be used directly afterwards. A
// cacheSize of zero or less disables the lookup cache.
func NewLocked[S Symbol, T any](tree *Trie[S, T], cacheSize int) (*Locked[S, T], error) {
	l := &Locked[S, T]{tree: tree}
	if cacheSize > 0 {
		cache, err := lru.New[string, cachedLookup[T]](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("trie: creating lookup cache: %w", err)
		}
		l.cache = cache
	}
	return l, nil
}

func (l *Locked[S, T]) purge() {
	if l.cache != nil {
		l.cache.Purge()
	}
}

// Insert stores value under key with exclusive access.
func (l *Locked[S, T]) Insert(key []S, value T) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.purge()
	return l.tree.Insert(key, value)
}

// Delete removes key with exclusive access.
func (l *Locked[S, T]) Delete(key []S) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.purge()
	return l.tree.Delete(key)
}

// DeletePrefix removes every key starting with prefix with exclusive
// access and returns how many were removed.
func (l *Locked[S, T]) DeletePrefix(prefix []S) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	defer l.purge()
	return l.tree.DeletePrefix(prefix)
}

// Get looks up key under the shared lock, consulting the cache first when
// one is configured.
func (l *Locked[S, T]) Get(key []S) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.cache == nil {
		return l.tree.Get(key)
	}
	ck := string(appendSymbols(nil, key))
	if hit, ok := l.cache.Get(ck); ok {
		return hit.value, hit.found
	}
	v, found := l.tree.Get(key)
	l.cache.Add(ck, cachedLookup[T]{value: v, found: found})
	return v, found
}

// Contains reports whether key is present.
func (l *Locked[S, T]) Contains(key []S) bool {
	_, ok := l.Get(key)
	return ok
}

// HasPrefix reports whether some key starts with prefix.
func (l *Locked[S, T]) HasPrefix(prefix []S) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.HasPrefix(prefix)
}

// Len returns the number of keys.
func (l *Locked[S, T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// View runs fn with shared access to the trie. fn may query and iterate
// it but must not mutate it or retain it after returning.
func (l *Locked[S, T]) View(fn func(*Trie[S, T])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	fn(l.tree)
}

// Snapshot returns an independent copy for traversals that outlive a
// single View.
func (l *Locked[S, T]) Snapshot() *Trie[S, T] {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Clone()
}
