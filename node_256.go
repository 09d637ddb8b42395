// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

// node256 is only used by byte tries; children is indexed by symbol.
type node256[S Symbol, T any] struct {
	leaf        *leaf[T]
	numChildren uint16
	children    [256]node[S, T]
}

func (n *node256[S, T]) getNodeType() nodeType {
	return node256Type
}

func (n *node256[S, T]) getNumChildren() int {
	return int(n.numChildren)
}

func (n *node256[S, T]) getNodeLeaf() *leaf[T] {
	return n.leaf
}

func (n *node256[S, T]) setNodeLeaf(l *leaf[T]) {
	n.leaf = l
}

func (n *node256[S, T]) findChild(c S) node[S, T] {
	return n.children[byte(c)]
}

func (n *node256[S, T]) setChild(c S, child node[S, T]) {
	if n.children[byte(c)] != nil {
		n.children[byte(c)] = child
	}
}

func (n *node256[S, T]) appendChildren(dst []edge[S, T]) []edge[S, T] {
	for i, ch := range n.children {
		if ch != nil {
			dst = append(dst, edge[S, T]{S(i), ch})
		}
	}
	return dst
}

func (n *node256[S, T]) firstChild() (S, node[S, T]) {
	for i := 0; i < 256; i++ {
		if n.children[i] != nil {
			return S(i), n.children[i]
		}
	}
	var zero S
	return zero, nil
}

func (n *node256[S, T]) lastChild() (S, node[S, T]) {
	for i := 255; i >= 0; i-- {
		if n.children[i] != nil {
			return S(i), n.children[i]
		}
	}
	var zero S
	return zero, nil
}

func (n *node256[S, T]) clone() node[S, T] {
	nc := *n
	nc.leaf = n.leaf.clone()
	return &nc
}
