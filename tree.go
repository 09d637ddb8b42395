// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package trie implements a compact prefix tree with exact-match, prefix
// and ordered iteration queries.
//
// A Trie is keyed by sequences of one Symbol type, bytes or runes, fixed by
// its type arguments. Child maps adapt to their fan-out: small sorted
// arrays for few children, an indexed array for dense byte alphabets and a
// sorted slice for wide rune alphabets, while a childless terminal node
// holds only its value.
//
// A Trie is not safe for concurrent use. Mutations require exclusive
// access and readers, including lazy iterators, must not overlap with a
// mutation; see Locked for a wrapper that enforces this.
package trie

import (
	"slices"
)

// Trie maps keys of symbols S to values of type T.
type Trie[S Symbol, T any] struct {
	root     node[S, T]
	size     int
	alphabet Alphabet
}

// pathEntry records one step of a walk: the node left and the symbol
// followed out of it.
type pathEntry[S Symbol, T any] struct {
	n node[S, T]
	c S
}

// New returns an empty trie whose alphabet is derived from S.
func New[S Symbol, T any]() *Trie[S, T] {
	return &Trie[S, T]{
		root:     &node4[S, T]{},
		alphabet: alphabetOf[S](),
	}
}

// NewBytes returns an empty byte keyed trie.
func NewBytes[T any]() *Trie[byte, T] {
	return New[byte, T]()
}

// NewRunes returns an empty trie keyed by Unicode code points.
func NewRunes[T any]() *Trie[rune, T] {
	return New[rune, T]()
}

// Alphabet reports the symbol kind of the trie.
func (t *Trie[S, T]) Alphabet() Alphabet {
	return t.alphabet
}

// Len is used to return the number of keys in the trie
func (t *Trie[S, T]) Len() int {
	return t.size
}

// Insert stores value under key, returning the previous value and true if
// key was already present.
func (t *Trie[S, T]) Insert(key []S, value T) (T, bool) {
	var zero T
	var parent node[S, T]
	var parentSym S

	n := t.root
	for depth, c := range key {
		child := n.findChild(c)
		if child == nil {
			grown := t.addChild(n, c, newChain(key[depth+1:], value))
			t.relink(parent, parentSym, n, grown)
			t.size++
			return zero, false
		}
		parent, parentSym = n, c
		n = child
	}

	if l := n.getNodeLeaf(); l != nil {
		old := l.value
		l.value = value
		return old, true
	}
	n.setNodeLeaf(&leaf[T]{value: value})
	t.size++
	return zero, false
}

// InsertString encodes key for the trie's alphabet and inserts it. Nothing
// is modified when key cannot be encoded.
func (t *Trie[S, T]) InsertString(key string, value T) (T, bool, error) {
	k, err := Encode[S](key)
	if err != nil {
		var zero T
		return zero, false, err
	}
	old, ok := t.Insert(k, value)
	return old, ok, nil
}

// relink puts n in place of old under parent, or as the root when parent
// is nil.
func (t *Trie[S, T]) relink(parent node[S, T], c S, old, n node[S, T]) {
	if old == n {
		return
	}
	if parent == nil {
		t.root = n
		return
	}
	parent.setChild(c, n)
}

// walk follows key from the root and returns the node it spells, or nil.
func (t *Trie[S, T]) walk(key []S) node[S, T] {
	n := t.root
	for _, c := range key {
		n = n.findChild(c)
		if n == nil {
			return nil
		}
	}
	return n
}

// Get is used to look up a specific key, returning
// the value and if it was found
func (t *Trie[S, T]) Get(key []S) (T, bool) {
	var zero T
	n := t.walk(key)
	if n == nil {
		return zero, false
	}
	if l := n.getNodeLeaf(); l != nil {
		return l.value, true
	}
	return zero, false
}

// GetString is Get for a host string. A string the alphabet cannot
// represent is never found.
func (t *Trie[S, T]) GetString(key string) (T, bool) {
	k, err := Encode[S](key)
	if err != nil {
		var zero T
		return zero, false
	}
	return t.Get(k)
}

// Contains reports whether key was inserted.
func (t *Trie[S, T]) Contains(key []S) bool {
	_, ok := t.Get(key)
	return ok
}

// ContainsString is Contains for a host string.
func (t *Trie[S, T]) ContainsString(key string) bool {
	_, ok := t.GetString(key)
	return ok
}

// HasPrefix reports whether some key starts with prefix, the key equal to
// prefix included.
func (t *Trie[S, T]) HasPrefix(prefix []S) bool {
	n := t.walk(prefix)
	if n == nil {
		return false
	}
	// Every node below the root leads to a terminal; the root alone may be
	// empty.
	return n != t.root || t.size > 0
}

// HasPrefixString is HasPrefix for a host string. A prefix the alphabet
// cannot encode matches nothing.
func (t *Trie[S, T]) HasPrefixString(prefix string) bool {
	k, err := Encode[S](prefix)
	if err != nil {
		return false
	}
	return t.HasPrefix(k)
}

// LongestPrefix returns the longest inserted key that is a prefix of key.
func (t *Trie[S, T]) LongestPrefix(key []S) ([]S, T, bool) {
	var zero T
	n := t.root
	last, lastLen := n.getNodeLeaf(), 0
	for i, c := range key {
		n = n.findChild(c)
		if n == nil {
			break
		}
		if l := n.getNodeLeaf(); l != nil {
			last, lastLen = l, i+1
		}
	}
	if last == nil {
		return nil, zero, false
	}
	return slices.Clone(key[:lastLen]), last.value, true
}

// Minimum returns the smallest key in symbol order.
func (t *Trie[S, T]) Minimum() ([]S, T, bool) {
	var zero T
	var key []S
	n := t.root
	for {
		if l := n.getNodeLeaf(); l != nil {
			return key, l.value, true
		}
		c, child := n.firstChild()
		if child == nil {
			return nil, zero, false
		}
		key = append(key, c)
		n = child
	}
}

// Maximum returns the largest key in symbol order.
func (t *Trie[S, T]) Maximum() ([]S, T, bool) {
	var zero T
	var key []S
	n := t.root
	for {
		c, child := n.lastChild()
		if child == nil {
			break
		}
		key = append(key, c)
		n = child
	}
	if l := n.getNodeLeaf(); l != nil {
		return key, l.value, true
	}
	return nil, zero, false
}

// Delete removes key, returning its value and true if it was present.
// Nodes left without a terminal below them are pruned on the way back up.
func (t *Trie[S, T]) Delete(key []S) (T, bool) {
	var zero T
	path := make([]pathEntry[S, T], 0, len(key))
	n := t.root
	for _, c := range key {
		path = append(path, pathEntry[S, T]{n: n, c: c})
		n = n.findChild(c)
		if n == nil {
			return zero, false
		}
	}

	l := n.getNodeLeaf()
	if l == nil {
		return zero, false
	}
	old := l.value
	t.size--

	if _, ok := n.(*nodeLeaf[S, T]); !ok {
		n.setNodeLeaf(nil)
		if n.getNumChildren() > 0 || len(path) == 0 {
			return old, true
		}
	}
	t.prune(path)
	return old, true
}

// DeleteString is Delete for a host string.
func (t *Trie[S, T]) DeleteString(key string) (T, bool) {
	k, err := Encode[S](key)
	if err != nil {
		var zero T
		return zero, false
	}
	return t.Delete(k)
}

// DeletePrefix removes every key starting with prefix and returns how many
// were removed.
func (t *Trie[S, T]) DeletePrefix(prefix []S) int {
	path := make([]pathEntry[S, T], 0, len(prefix))
	n := t.root
	for _, c := range prefix {
		path = append(path, pathEntry[S, T]{n: n, c: c})
		n = n.findChild(c)
		if n == nil {
			return 0
		}
	}

	removed := countTerminals(n)
	if removed == 0 {
		return 0
	}
	t.size -= removed
	if len(path) == 0 {
		t.root = &node4[S, T]{}
		return removed
	}
	t.prune(path)
	return removed
}

// prune unlinks the node at the end of path, which has no terminal left
// below it, then keeps removing ancestors that end up without a leaf or
// children. The root is never removed.
func (t *Trie[S, T]) prune(path []pathEntry[S, T]) {
	for i := len(path) - 1; i >= 0; i-- {
		parent := path[i].n
		shrunk := t.removeChild(parent, path[i].c)
		if i == 0 {
			t.root = shrunk
			return
		}
		grand := path[i-1]
		if shrunk.getNumChildren() > 0 {
			t.relink(grand.n, grand.c, parent, shrunk)
			return
		}
		if l := shrunk.getNodeLeaf(); l != nil {
			grand.n.setChild(grand.c, &nodeLeaf[S, T]{leaf: *l})
			return
		}
	}
}

// Clone returns an independent deep copy of the trie. Values are copied
// as is.
func (t *Trie[S, T]) Clone() *Trie[S, T] {
	nt := &Trie[S, T]{
		root:     t.root.clone(),
		size:     t.size,
		alphabet: t.alphabet,
	}
	stack := []node[S, T]{nt.root}
	var edges []edge[S, T]
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// n is already a copy whose children are still shared with t
		edges = n.appendChildren(edges[:0])
		for _, e := range edges {
			c := e.child.clone()
			n.setChild(e.sym, c)
			stack = append(stack, c)
		}
	}
	return nt
}
