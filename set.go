// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import "iter"

// Set is a membership-only trie.
type Set[S Symbol] struct {
	tree *Trie[S, struct{}]
}

// NewSet returns an empty set whose alphabet is derived from S.
func NewSet[S Symbol]() *Set[S] {
	return &Set[S]{tree: New[S, struct{}]()}
}

// NewByteSet returns an empty byte keyed set.
func NewByteSet() *Set[byte] {
	return NewSet[byte]()
}

// NewRuneSet returns an empty set keyed by Unicode code points.
func NewRuneSet() *Set[rune] {
	return NewSet[rune]()
}

// Add inserts key and reports whether it was not already present.
func (s *Set[S]) Add(key []S) bool {
	_, existed := s.tree.Insert(key, struct{}{})
	return !existed
}

// AddString encodes key for the set's alphabet and adds it.
func (s *Set[S]) AddString(key string) (bool, error) {
	_, existed, err := s.tree.InsertString(key, struct{}{})
	if err != nil {
		return false, err
	}
	return !existed, nil
}

// Contains reports whether key is in the set.
func (s *Set[S]) Contains(key []S) bool {
	return s.tree.Contains(key)
}

// ContainsString is Contains for a host string.
func (s *Set[S]) ContainsString(key string) bool {
	return s.tree.ContainsString(key)
}

// HasPrefix reports whether some member starts with prefix.
func (s *Set[S]) HasPrefix(prefix []S) bool {
	return s.tree.HasPrefix(prefix)
}

// Remove deletes key and reports whether it was present.
func (s *Set[S]) Remove(key []S) bool {
	_, ok := s.tree.Delete(key)
	return ok
}

// Len returns the number of members.
func (s *Set[S]) Len() int {
	return s.tree.Len()
}

// All returns a sequence of every member in ascending order.
func (s *Set[S]) All() iter.Seq[[]S] {
	return s.tree.Keys()
}

// WithPrefix returns a sequence of the members starting with prefix.
func (s *Set[S]) WithPrefix(prefix []S) iter.Seq[[]S] {
	return s.tree.KeysWithPrefix(prefix)
}

// Validate checks the structural invariants of the underlying trie.
func (s *Set[S]) Validate() error {
	return s.tree.Validate()
}
