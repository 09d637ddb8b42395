// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Shrink thresholds sit below the grow points so a node hovering around a
// boundary does not flip representation on every insert and delete.
const (
	shrink16     = 3
	shrink48     = 12
	shrink256    = 40
	shrinkSparse = 12
)

// lowerBound returns the first index in the sorted keys whose value is not
// less than c.
func lowerBound[K constraints.Ordered](keys []K, c K) int {
	lo, hi := 0, len(keys)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if keys[mid] < c {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

func indexOf[K constraints.Ordered](keys []K, c K) (int, bool) {
	idx := lowerBound(keys, c)
	return idx, idx < len(keys) && keys[idx] == c
}

// newChain builds the nodes for the unmatched tail of a key, bottom up,
// ending in a nodeLeaf that holds value.
func newChain[S Symbol, T any](rest []S, value T) node[S, T] {
	var tail node[S, T] = &nodeLeaf[S, T]{leaf: leaf[T]{value: value}}
	for i := len(rest) - 1; i >= 0; i-- {
		n4 := &node4[S, T]{numChildren: 1}
		n4.keys[0] = rest[i]
		n4.children[0] = tail
		tail = n4
	}
	return tail
}

// addChild links child under symbol c. n must not already have a child
// for c. The returned node takes the place of n in its parent, since a
// full node is replaced by the next larger representation.
func (t *Trie[S, T]) addChild(n node[S, T], c S, child node[S, T]) node[S, T] {
	switch n := n.(type) {
	case *nodeLeaf[S, T]:
		return t.addChild4(&node4[S, T]{leaf: &leaf[T]{value: n.leaf.value}}, c, child)
	case *node4[S, T]:
		return t.addChild4(n, c, child)
	case *node16[S, T]:
		return t.addChild16(n, c, child)
	case *node48[S, T]:
		return t.addChild48(n, c, child)
	case *node256[S, T]:
		return t.addChild256(n, c, child)
	case *nodeSparse[S, T]:
		return t.addChildSparse(n, c, child)
	default:
		panic("trie: unknown node type")
	}
}

func (t *Trie[S, T]) addChild4(n *node4[S, T], c S, child node[S, T]) node[S, T] {
	if n.numChildren < 4 {
		idx := lowerBound(n.keys[:n.numChildren], c)
		// Shift to make room
		copy(n.keys[idx+1:], n.keys[idx:n.numChildren])
		copy(n.children[idx+1:], n.children[idx:n.numChildren])
		n.keys[idx] = c
		n.children[idx] = child
		n.numChildren++
		return n
	}
	newNode := &node16[S, T]{leaf: n.leaf, numChildren: n.numChildren}
	copy(newNode.keys[:], n.keys[:])
	copy(newNode.children[:], n.children[:])
	return t.addChild16(newNode, c, child)
}

func (t *Trie[S, T]) addChild16(n *node16[S, T], c S, child node[S, T]) node[S, T] {
	if n.numChildren < 16 {
		idx := lowerBound(n.keys[:n.numChildren], c)
		copy(n.keys[idx+1:], n.keys[idx:n.numChildren])
		copy(n.children[idx+1:], n.children[idx:n.numChildren])
		n.keys[idx] = c
		n.children[idx] = child
		n.numChildren++
		return n
	}
	if !t.alphabet.dense() {
		newNode := &nodeSparse[S, T]{
			leaf:     n.leaf,
			keys:     make([]S, 16, 32),
			children: make([]node[S, T], 16, 32),
		}
		copy(newNode.keys, n.keys[:])
		copy(newNode.children, n.children[:])
		return t.addChildSparse(newNode, c, child)
	}
	newNode := &node48[S, T]{leaf: n.leaf, numChildren: n.numChildren}
	for i := 0; i < 16; i++ {
		newNode.keys[byte(n.keys[i])] = uint8(i + 1)
		newNode.children[i] = n.children[i]
	}
	return t.addChild48(newNode, c, child)
}

func (t *Trie[S, T]) addChild48(n *node48[S, T], c S, child node[S, T]) node[S, T] {
	if n.numChildren < 48 {
		pos := 0
		for n.children[pos] != nil {
			pos++
		}
		n.children[pos] = child
		n.keys[byte(c)] = uint8(pos + 1)
		n.numChildren++
		return n
	}
	newNode := &node256[S, T]{leaf: n.leaf, numChildren: uint16(n.numChildren)}
	for i := 0; i < 256; i++ {
		if pos := n.keys[i]; pos != 0 {
			newNode.children[i] = n.children[pos-1]
		}
	}
	return t.addChild256(newNode, c, child)
}

func (t *Trie[S, T]) addChild256(n *node256[S, T], c S, child node[S, T]) node[S, T] {
	n.children[byte(c)] = child
	n.numChildren++
	return n
}

func (t *Trie[S, T]) addChildSparse(n *nodeSparse[S, T], c S, child node[S, T]) node[S, T] {
	idx := lowerBound(n.keys, c)
	n.keys = slices.Insert(n.keys, idx, c)
	n.children = slices.Insert(n.children, idx, child)
	return n
}

// removeChild unlinks the child under symbol c. Like addChild, the
// returned node replaces n, which may have shrunk to a smaller
// representation.
func (t *Trie[S, T]) removeChild(n node[S, T], c S) node[S, T] {
	switch n := n.(type) {
	case *nodeLeaf[S, T]:
		return n
	case *node4[S, T]:
		return t.removeChild4(n, c)
	case *node16[S, T]:
		return t.removeChild16(n, c)
	case *node48[S, T]:
		return t.removeChild48(n, c)
	case *node256[S, T]:
		return t.removeChild256(n, c)
	case *nodeSparse[S, T]:
		return t.removeChildSparse(n, c)
	default:
		panic("trie: unknown node type")
	}
}

func (t *Trie[S, T]) removeChild4(n *node4[S, T], c S) node[S, T] {
	pos, ok := indexOf(n.keys[:n.numChildren], c)
	if !ok {
		return n
	}
	copy(n.keys[pos:], n.keys[pos+1:n.numChildren])
	copy(n.children[pos:], n.children[pos+1:n.numChildren])
	n.numChildren--
	var zero S
	n.keys[n.numChildren] = zero
	n.children[n.numChildren] = nil
	return n
}

func (t *Trie[S, T]) removeChild16(n *node16[S, T], c S) node[S, T] {
	pos, ok := indexOf(n.keys[:n.numChildren], c)
	if !ok {
		return n
	}
	copy(n.keys[pos:], n.keys[pos+1:n.numChildren])
	copy(n.children[pos:], n.children[pos+1:n.numChildren])
	n.numChildren--
	var zero S
	n.keys[n.numChildren] = zero
	n.children[n.numChildren] = nil

	if n.numChildren == shrink16 {
		newNode := &node4[S, T]{leaf: n.leaf, numChildren: n.numChildren}
		copy(newNode.keys[:], n.keys[:n.numChildren])
		copy(newNode.children[:], n.children[:n.numChildren])
		return newNode
	}
	return n
}

func (t *Trie[S, T]) removeChild48(n *node48[S, T], c S) node[S, T] {
	pos := n.keys[byte(c)]
	if pos == 0 {
		return n
	}
	n.keys[byte(c)] = 0
	n.children[pos-1] = nil
	n.numChildren--

	if n.numChildren == shrink48 {
		newNode := &node16[S, T]{leaf: n.leaf}
		for i := 0; i < 256; i++ {
			if pos := n.keys[i]; pos != 0 {
				newNode.keys[newNode.numChildren] = S(i)
				newNode.children[newNode.numChildren] = n.children[pos-1]
				newNode.numChildren++
			}
		}
		return newNode
	}
	return n
}

func (t *Trie[S, T]) removeChild256(n *node256[S, T], c S) node[S, T] {
	if n.children[byte(c)] == nil {
		return n
	}
	n.children[byte(c)] = nil
	n.numChildren--

	if n.numChildren == shrink256 {
		newNode := &node48[S, T]{leaf: n.leaf}
		for i := 0; i < 256; i++ {
			if n.children[i] != nil {
				newNode.children[newNode.numChildren] = n.children[i]
				newNode.keys[i] = newNode.numChildren + 1
				newNode.numChildren++
			}
		}
		return newNode
	}
	return n
}

func (t *Trie[S, T]) removeChildSparse(n *nodeSparse[S, T], c S) node[S, T] {
	pos, ok := indexOf(n.keys, c)
	if !ok {
		return n
	}
	n.keys = slices.Delete(n.keys, pos, pos+1)
	n.children = slices.Delete(n.children, pos, pos+1)

	if len(n.keys) == shrinkSparse {
		newNode := &node16[S, T]{leaf: n.leaf, numChildren: uint8(len(n.keys))}
		copy(newNode.keys[:], n.keys)
		copy(newNode.children[:], n.children)
		return newNode
	}
	return n
}
