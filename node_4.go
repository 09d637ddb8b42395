// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

type node4[S Symbol, T any] struct {
	leaf        *leaf[T]
	numChildren uint8
	keys        [4]S
	children    [4]node[S, T]
}

func (n *node4[S, T]) getNodeType() nodeType {
	return node4Type
}

func (n *node4[S, T]) getNumChildren() int {
	return int(n.numChildren)
}

func (n *node4[S, T]) getNodeLeaf() *leaf[T] {
	return n.leaf
}

func (n *node4[S, T]) setNodeLeaf(l *leaf[T]) {
	n.leaf = l
}

func (n *node4[S, T]) findChild(c S) node[S, T] {
	if idx, ok := indexOf(n.keys[:n.numChildren], c); ok {
		return n.children[idx]
	}
	return nil
}

func (n *node4[S, T]) setChild(c S, child node[S, T]) {
	if idx, ok := indexOf(n.keys[:n.numChildren], c); ok {
		n.children[idx] = child
	}
}

func (n *node4[S, T]) appendChildren(dst []edge[S, T]) []edge[S, T] {
	for i := 0; i < int(n.numChildren); i++ {
		dst = append(dst, edge[S, T]{n.keys[i], n.children[i]})
	}
	return dst
}

func (n *node4[S, T]) firstChild() (S, node[S, T]) {
	if n.numChildren == 0 {
		var zero S
		return zero, nil
	}
	return n.keys[0], n.children[0]
}

func (n *node4[S, T]) lastChild() (S, node[S, T]) {
	if n.numChildren == 0 {
		var zero S
		return zero, nil
	}
	return n.keys[n.numChildren-1], n.children[n.numChildren-1]
}

func (n *node4[S, T]) clone() node[S, T] {
	nc := *n
	nc.leaf = n.leaf.clone()
	return &nc
}
