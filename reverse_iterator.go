// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import "slices"

// ReverseIterator is used to iterate over a set of nodes
// in reverse in-order
type ReverseIterator[S Symbol, T any] struct {
	i *Iterator[S, T]
}

// ReverseIterator returns an iterator over the whole trie in descending
// order.
func (t *Trie[S, T]) ReverseIterator() *ReverseIterator[S, T] {
	return &ReverseIterator[S, T]{i: t.Iterator()}
}

// SeekPrefix is used to seek the iterator to a given prefix
func (ri *ReverseIterator[S, T]) SeekPrefix(prefix []S) {
	ri.i.SeekPrefix(prefix)
}

// SeekReverseLowerBound positions the iterator so that Previous returns
// the keys lower than or equal to key, largest first.
func (ri *ReverseIterator[S, T]) SeekReverseLowerBound(key []S) {
	i := ri.i
	i.stack = i.stack[:0]
	i.key = i.key[:0]

	n := i.root
	var sym S
	for depth, c := range key {
		// A proper prefix of key sorts before everything below it, so its
		// own value is queued first and comes out last.
		i.stack = append(i.stack, frame[S, T]{n: n, sym: sym, depth: depth, expanded: true})
		i.edges = n.appendChildren(i.edges[:0])
		for _, e := range i.edges {
			if e.sym >= c {
				break
			}
			i.push(e.child, e.sym, depth+1)
		}
		n = n.findChild(c)
		if n == nil {
			return
		}
		i.key = append(i.key, c)
		sym = c
	}
	// Anything deeper than key itself is larger than key.
	i.stack = append(i.stack, frame[S, T]{n: n, sym: sym, depth: len(key), expanded: true})
}

// Previous returns the previous key in reverse order
func (ri *ReverseIterator[S, T]) Previous() ([]S, T, bool) {
	var zero T
	i := ri.i
	for len(i.stack) > 0 {
		f := i.stack[len(i.stack)-1]
		i.stack = i.stack[:len(i.stack)-1]
		i.setKey(f)

		if f.expanded {
			if l := f.n.getNodeLeaf(); l != nil {
				return slices.Clone(i.key), l.value, true
			}
			continue
		}

		// Children are all greater than the node itself, so the node is
		// revisited after them.
		f.expanded = true
		i.stack = append(i.stack, f)
		i.edges = f.n.appendChildren(i.edges[:0])
		for _, e := range i.edges {
			i.push(e.child, e.sym, f.depth+1)
		}
	}
	return nil, zero, false
}
