// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import "slices"

// PathIterator is used to iterate over the keys found on the way from the
// root down to a specified path, i.e. every inserted key that is a prefix
// of the path, shortest first.
type PathIterator[S Symbol, T any] struct {
	path  []S
	depth int
	node  node[S, T]
}

// PathIterator returns an iterator over the keys that are prefixes of path.
func (t *Trie[S, T]) PathIterator(path []S) *PathIterator[S, T] {
	return &PathIterator[S, T]{
		path: slices.Clone(path),
		node: t.root,
	}
}

func (i *PathIterator[S, T]) Next() ([]S, T, bool) {
	var zero T
	for i.node != nil {
		n, depth := i.node, i.depth
		if depth < len(i.path) {
			i.node = n.findChild(i.path[depth])
			i.depth++
		} else {
			i.node = nil
		}
		if l := n.getNodeLeaf(); l != nil {
			return slices.Clone(i.path[:depth]), l.value, true
		}
	}
	return nil, zero, false
}
