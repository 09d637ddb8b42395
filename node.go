// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

type nodeType int

const (
	leafType nodeType = iota
	node4Type
	node16Type
	node48Type
	node256Type
	sparseType
)

func (k nodeType) String() string {
	switch k {
	case leafType:
		return "leaf"
	case node4Type:
		return "node4"
	case node16Type:
		return "node16"
	case node48Type:
		return "node48"
	case node256Type:
		return "node256"
	case sparseType:
		return "sparse"
	}
	return "unknown"
}

// leaf holds the value of a terminal node. Inner nodes keep a nil leaf
// pointer until a key ends at them.
type leaf[T any] struct {
	value T
}

func (l *leaf[T]) clone() *leaf[T] {
	if l == nil {
		return nil
	}
	nl := *l
	return &nl
}

// edge is a child link together with the symbol labelling it.
type edge[S Symbol, T any] struct {
	sym   S
	child node[S, T]
}

// node is implemented by every child-map representation. Children are
// always reported in ascending symbol order.
type node[S Symbol, T any] interface {
	getNodeType() nodeType
	getNumChildren() int
	getNodeLeaf() *leaf[T]
	setNodeLeaf(*leaf[T])
	findChild(S) node[S, T]
	setChild(S, node[S, T])
	appendChildren([]edge[S, T]) []edge[S, T]
	firstChild() (S, node[S, T])
	lastChild() (S, node[S, T])
	clone() node[S, T]
}
