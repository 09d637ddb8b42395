// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"errors"
	"fmt"
)

// ErrCorrupt is wrapped by every error Validate returns.
var ErrCorrupt = errors.New("trie: structural invariant violated")

// Stats describes the shape of a trie: how many nodes use each child-map
// representation, which is what its memory footprint is made of.
type Stats struct {
	Nodes     int
	Terminals int
	MaxDepth  int

	Leaves  int
	Node4   int
	Node16  int
	Node48  int
	Node256 int
	Sparse  int
}

// Stats walks the whole trie and reports its shape.
func (t *Trie[S, T]) Stats() Stats {
	var st Stats
	it := &rawIterator[S, T]{node: t.root}
	for it.Next(); it.Front() != nil; it.Next() {
		n := it.Front()
		st.Nodes++
		st.MaxDepth = max(st.MaxDepth, it.Depth())
		if n.getNodeLeaf() != nil {
			st.Terminals++
		}
		switch n.getNodeType() {
		case leafType:
			st.Leaves++
		case node4Type:
			st.Node4++
		case node16Type:
			st.Node16++
		case node48Type:
			st.Node48++
		case node256Type:
			st.Node256++
		case sparseType:
			st.Sparse++
		}
	}
	return st
}

// Validate walks the whole trie and checks its structural invariants: every
// node has a single parent, no node below the root is both non-terminal
// and childless, child symbols are strictly ascending and the key count
// matches Len. The first violation found is returned wrapping ErrCorrupt.
func (t *Trie[S, T]) Validate() error {
	if t.root == nil {
		return fmt.Errorf("%w: missing root", ErrCorrupt)
	}
	if t.root.getNodeType() == leafType {
		return fmt.Errorf("%w: root is a leaf node", ErrCorrupt)
	}

	seen := make(map[node[S, T]]struct{})
	terminals := 0
	it := &rawIterator[S, T]{node: t.root}
	for it.Next(); it.Front() != nil; it.Next() {
		n, depth := it.Front(), it.Depth()
		if _, dup := seen[n]; dup {
			return fmt.Errorf("%w: node at depth %d reachable twice", ErrCorrupt, depth)
		}
		seen[n] = struct{}{}

		if n.getNodeLeaf() != nil {
			terminals++
		}
		if err := t.validateNode(n, it.Edges(), depth); err != nil {
			return err
		}
	}
	if terminals != t.size {
		return fmt.Errorf("%w: %d terminal nodes, size %d", ErrCorrupt, terminals, t.size)
	}
	return nil
}

func (t *Trie[S, T]) validateNode(n node[S, T], edges []edge[S, T], depth int) error {
	kind := n.getNodeType()
	if depth > 0 && n.getNodeLeaf() == nil && len(edges) == 0 {
		return fmt.Errorf("%w: dangling %s at depth %d", ErrCorrupt, kind, depth)
	}
	if len(edges) != n.getNumChildren() {
		return fmt.Errorf("%w: %s at depth %d records %d children, has %d",
			ErrCorrupt, kind, depth, n.getNumChildren(), len(edges))
	}
	if !t.alphabet.dense() && (kind == node48Type || kind == node256Type) {
		return fmt.Errorf("%w: %s in a %s trie", ErrCorrupt, kind, t.alphabet)
	}
	if t.alphabet.dense() && kind == sparseType {
		return fmt.Errorf("%w: %s in a %s trie", ErrCorrupt, kind, t.alphabet)
	}
	for j, e := range edges {
		if e.child == nil {
			return fmt.Errorf("%w: nil child under %s at depth %d", ErrCorrupt, kind, depth)
		}
		if j > 0 && edges[j-1].sym >= e.sym {
			return fmt.Errorf("%w: children of %s at depth %d out of order", ErrCorrupt, kind, depth)
		}
	}
	return nil
}
