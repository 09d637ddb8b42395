// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

// nodeLeaf is a terminal node without children. Since a childless node
// must be terminal, every such node below the root takes this form and
// carries nothing but its value.
type nodeLeaf[S Symbol, T any] struct {
	leaf leaf[T]
}

func (n *nodeLeaf[S, T]) getNodeType() nodeType {
	return leafType
}

func (n *nodeLeaf[S, T]) getNumChildren() int {
	return 0
}

func (n *nodeLeaf[S, T]) getNodeLeaf() *leaf[T] {
	return &n.leaf
}

// setNodeLeaf replaces the value. A nodeLeaf cannot become non-terminal,
// callers prune it instead, so nil is ignored.
func (n *nodeLeaf[S, T]) setNodeLeaf(l *leaf[T]) {
	if l != nil {
		n.leaf = *l
	}
}

func (n *nodeLeaf[S, T]) findChild(S) node[S, T] {
	return nil
}

func (n *nodeLeaf[S, T]) setChild(S, node[S, T]) {
	// no-op
}

func (n *nodeLeaf[S, T]) appendChildren(dst []edge[S, T]) []edge[S, T] {
	return dst
}

func (n *nodeLeaf[S, T]) firstChild() (S, node[S, T]) {
	var zero S
	return zero, nil
}

func (n *nodeLeaf[S, T]) lastChild() (S, node[S, T]) {
	var zero S
	return zero, nil
}

func (n *nodeLeaf[S, T]) clone() node[S, T] {
	nc := *n
	return &nc
}
