// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

// rawIterator visits each of the nodes in the tree, even the ones that are
// not terminal. It keeps track of the depth of the current node, which is
// what introspection and invariant checks need.
type rawIterator[S Symbol, T any] struct {
	// node is the starting node in the tree for the iterator.
	node node[S, T]

	// stack keeps track of edges in the frontier.
	stack []rawStackEntry[S, T]

	// pos is the current position of the iterator.
	pos node[S, T]

	// depth is the key length at pos.
	depth int

	edges []edge[S, T]
}

// rawStackEntry is used to keep track of the depth as well as
// its associated edges in the frontier.
type rawStackEntry[S Symbol, T any] struct {
	depth int
	node  node[S, T]
}

// Front returns the current node that has been iterated to.
func (i *rawIterator[S, T]) Front() node[S, T] {
	return i.pos
}

// Depth returns the key length of the current node.
func (i *rawIterator[S, T]) Depth() int {
	return i.depth
}

// Edges returns the children of the current node as seen by the last call
// to Next, in ascending order. The slice is reused by the next call.
func (i *rawIterator[S, T]) Edges() []edge[S, T] {
	return i.edges
}

// Next advances the iterator to the next node.
func (i *rawIterator[S, T]) Next() {
	// Initialize our stack if needed.
	if i.stack == nil && i.node != nil {
		i.stack = []rawStackEntry[S, T]{
			{
				node: i.node,
			},
		}
	}

	for len(i.stack) > 0 {
		// Inspect the last element of the stack.
		n := len(i.stack)
		last := i.stack[n-1]
		elem := last.node

		i.stack = i.stack[:n-1]

		// Push the edges onto the frontier.
		i.edges = elem.appendChildren(i.edges[:0])
		for _, e := range i.edges {
			if e.child != nil {
				i.stack = append(i.stack, rawStackEntry[S, T]{last.depth + 1, e.child})
			}
		}

		i.pos = elem
		i.depth = last.depth
		return
	}

	i.pos = nil
	i.depth = 0
	i.edges = i.edges[:0]
}

// countTerminals returns the number of keys in the subtree rooted at n.
func countTerminals[S Symbol, T any](n node[S, T]) int {
	count := 0
	it := &rawIterator[S, T]{node: n}
	for it.Next(); it.Front() != nil; it.Next() {
		if it.Front().getNodeLeaf() != nil {
			count++
		}
	}
	return count
}
