// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import "slices"

// nodeSparse takes over from node16 in rune tries, where the alphabet is
// too wide for an indexed array. keys and children grow together and stay
// sorted by symbol.
type nodeSparse[S Symbol, T any] struct {
	leaf     *leaf[T]
	keys     []S
	children []node[S, T]
}

func (n *nodeSparse[S, T]) getNodeType() nodeType {
	return sparseType
}

func (n *nodeSparse[S, T]) getNumChildren() int {
	return len(n.keys)
}

func (n *nodeSparse[S, T]) getNodeLeaf() *leaf[T] {
	return n.leaf
}

func (n *nodeSparse[S, T]) setNodeLeaf(l *leaf[T]) {
	n.leaf = l
}

func (n *nodeSparse[S, T]) findChild(c S) node[S, T] {
	if idx, ok := indexOf(n.keys, c); ok {
		return n.children[idx]
	}
	return nil
}

func (n *nodeSparse[S, T]) setChild(c S, child node[S, T]) {
	if idx, ok := indexOf(n.keys, c); ok {
		n.children[idx] = child
	}
}

func (n *nodeSparse[S, T]) appendChildren(dst []edge[S, T]) []edge[S, T] {
	for i, c := range n.keys {
		dst = append(dst, edge[S, T]{c, n.children[i]})
	}
	return dst
}

func (n *nodeSparse[S, T]) firstChild() (S, node[S, T]) {
	if len(n.keys) == 0 {
		var zero S
		return zero, nil
	}
	return n.keys[0], n.children[0]
}

func (n *nodeSparse[S, T]) lastChild() (S, node[S, T]) {
	if len(n.keys) == 0 {
		var zero S
		return zero, nil
	}
	last := len(n.keys) - 1
	return n.keys[last], n.children[last]
}

func (n *nodeSparse[S, T]) clone() node[S, T] {
	return &nodeSparse[S, T]{
		leaf:     n.leaf.clone(),
		keys:     slices.Clone(n.keys),
		children: slices.Clone(n.children),
	}
}
