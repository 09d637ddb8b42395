// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

// node48 is only used by byte tries. keys maps a symbol to its slot in
// children plus one, zero meaning no child.
type node48[S Symbol, T any] struct {
	leaf        *leaf[T]
	numChildren uint8
	keys        [256]uint8
	children    [48]node[S, T]
}

func (n *node48[S, T]) getNodeType() nodeType {
	return node48Type
}

func (n *node48[S, T]) getNumChildren() int {
	return int(n.numChildren)
}

func (n *node48[S, T]) getNodeLeaf() *leaf[T] {
	return n.leaf
}

func (n *node48[S, T]) setNodeLeaf(l *leaf[T]) {
	n.leaf = l
}

func (n *node48[S, T]) findChild(c S) node[S, T] {
	if pos := n.keys[byte(c)]; pos != 0 {
		return n.children[pos-1]
	}
	return nil
}

func (n *node48[S, T]) setChild(c S, child node[S, T]) {
	if pos := n.keys[byte(c)]; pos != 0 {
		n.children[pos-1] = child
	}
}

func (n *node48[S, T]) appendChildren(dst []edge[S, T]) []edge[S, T] {
	for i, pos := range n.keys {
		if pos != 0 {
			dst = append(dst, edge[S, T]{S(i), n.children[pos-1]})
		}
	}
	return dst
}

func (n *node48[S, T]) firstChild() (S, node[S, T]) {
	for i := 0; i < 256; i++ {
		if pos := n.keys[i]; pos != 0 {
			return S(i), n.children[pos-1]
		}
	}
	var zero S
	return zero, nil
}

func (n *node48[S, T]) lastChild() (S, node[S, T]) {
	for i := 255; i >= 0; i-- {
		if pos := n.keys[i]; pos != 0 {
			return S(i), n.children[pos-1]
		}
	}
	var zero S
	return zero, nil
}

func (n *node48[S, T]) clone() node[S, T] {
	nc := *n
	nc.leaf = n.leaf.clone()
	return &nc
}
