// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"iter"
	"slices"
)

// Iterator walks keys in ascending symbol order, depth first. It holds no
// locks: the trie must not be mutated while an Iterator is in use.
type Iterator[S Symbol, T any] struct {
	root  node[S, T]
	stack []frame[S, T]
	key   []S
	edges []edge[S, T]
}

// frame is a pending node on the iteration stack. depth is the length of
// the key spelled by n and sym the last symbol of it, so popping a frame
// rewrites key[depth-1] and drops anything deeper.
type frame[S Symbol, T any] struct {
	n        node[S, T]
	sym      S
	depth    int
	expanded bool
}

// Iterator returns an Iterator over the whole trie.
func (t *Trie[S, T]) Iterator() *Iterator[S, T] {
	return &Iterator[S, T]{
		root:  t.root,
		stack: []frame[S, T]{{n: t.root}},
		key:   make([]S, 0, 16),
	}
}

func (i *Iterator[S, T]) push(n node[S, T], sym S, depth int) {
	i.stack = append(i.stack, frame[S, T]{n: n, sym: sym, depth: depth})
}

// setKey positions the key buffer on frame f.
func (i *Iterator[S, T]) setKey(f frame[S, T]) {
	if f.depth == 0 {
		i.key = i.key[:0]
		return
	}
	i.key = append(i.key[:f.depth-1], f.sym)
}

// SeekPrefix restricts the iterator to keys starting with prefix.
func (i *Iterator[S, T]) SeekPrefix(prefix []S) {
	i.stack = i.stack[:0]
	i.key = append(i.key[:0], prefix...)

	n := i.root
	for _, c := range prefix {
		n = n.findChild(c)
		if n == nil {
			return
		}
	}
	var last S
	if len(prefix) > 0 {
		last = prefix[len(prefix)-1]
	}
	i.push(n, last, len(prefix))
}

// SeekLowerBound positions the iterator so that Next returns the keys
// greater than or equal to key.
func (i *Iterator[S, T]) SeekLowerBound(key []S) {
	i.stack = i.stack[:0]
	i.key = i.key[:0]

	n := i.root
	for depth, c := range key {
		// Larger siblings go under the path so they come out after it.
		i.edges = n.appendChildren(i.edges[:0])
		for j := len(i.edges) - 1; j >= 0 && i.edges[j].sym > c; j-- {
			i.push(i.edges[j].child, i.edges[j].sym, depth+1)
		}
		n = n.findChild(c)
		if n == nil {
			return
		}
		i.key = append(i.key, c)
	}
	var last S
	if len(key) > 0 {
		last = key[len(key)-1]
	}
	i.push(n, last, len(key))
}

// Next returns the next key and its value. The key is a fresh slice owned
// by the caller. ok is false once the iterator is exhausted.
func (i *Iterator[S, T]) Next() ([]S, T, bool) {
	var zero T
	for len(i.stack) > 0 {
		f := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]
		i.setKey(f)

		i.edges = f.n.appendChildren(i.edges[:0])
		for j := len(i.edges) - 1; j >= 0; j-- {
			i.push(i.edges[j].child, i.edges[j].sym, f.depth+1)
		}
		if l := f.n.getNodeLeaf(); l != nil {
			return slices.Clone(i.key), l.value, true
		}
	}
	return nil, zero, false
}

// All returns a sequence of every key and value in ascending order.
func (t *Trie[S, T]) All() iter.Seq2[[]S, T] {
	return t.WithPrefix(nil)
}

// WithPrefix returns a sequence of the keys starting with prefix, with
// their values, in ascending order. Each range over the sequence starts a
// fresh traversal.
func (t *Trie[S, T]) WithPrefix(prefix []S) iter.Seq2[[]S, T] {
	prefix = slices.Clone(prefix)
	return func(yield func([]S, T) bool) {
		it := t.Iterator()
		it.SeekPrefix(prefix)
		for {
			k, v, ok := it.Next()
			if !ok || !yield(k, v) {
				return
			}
		}
	}
}

// Keys returns a sequence of every key in ascending order.
func (t *Trie[S, T]) Keys() iter.Seq[[]S] {
	return t.KeysWithPrefix(nil)
}

// KeysWithPrefix is WithPrefix without the values.
func (t *Trie[S, T]) KeysWithPrefix(prefix []S) iter.Seq[[]S] {
	seq := t.WithPrefix(prefix)
	return func(yield func([]S) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}
