// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"slices"
	"sort"
	"strings"
	"testing"
	"testing/quick"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

type readableString string

func drain[S Symbol, T any](next func() ([]S, T, bool)) []string {
	var out []string
	for {
		k, _, ok := next()
		if !ok {
			return out
		}
		s, err := Decode(k)
		if err != nil {
			panic(err)
		}
		out = append(out, s)
	}
}

func sortedUnique(set []string) []string {
	set = slices.Clone(set)
	sort.Strings(set)
	return slices.Compact(set)
}

func TestIterateOrderFuzz(t *testing.T) {
	t.Parallel()

	r := NewBytes[any]()
	var set []string

	// Each call adds a new random key and checks that a prefix scan over the
	// trie yields the same keys as filtering a plain sorted list.
	radixAddAndScan := func(newKey, prefix readableString) []string {
		r.Insert([]byte(newKey), nil)
		var result []string
		for k := range r.KeysWithPrefix([]byte(prefix)) {
			result = append(result, string(k))
		}
		return result
	}

	sliceAddSortAndFilter := func(newKey, prefix readableString) []string {
		set = sortedUnique(append(set, string(newKey)))
		var result []string
		for _, k := range set {
			if strings.HasPrefix(k, string(prefix)) {
				result = append(result, k)
			}
		}
		return result
	}

	if err := quick.CheckEqual(radixAddAndScan, sliceAddSortAndFilter, nil); err != nil {
		t.Error(err)
	}
}

func TestIterateLowerBoundFuzz(t *testing.T) {
	t.Parallel()

	r := NewBytes[any]()
	var set []string

	radixAddAndScan := func(newKey, searchKey readableString) []string {
		r.Insert([]byte(newKey), nil)
		it := r.Iterator()
		it.SeekLowerBound([]byte(searchKey))
		return drain(it.Next)
	}

	sliceAddSortAndFilter := func(newKey, searchKey readableString) []string {
		set = sortedUnique(append(set, string(newKey)))
		var result []string
		for _, k := range set {
			if k >= string(searchKey) {
				result = append(result, k)
			}
		}
		return result
	}

	if err := quick.CheckEqual(radixAddAndScan, sliceAddSortAndFilter, nil); err != nil {
		t.Error(err)
	}
}

func TestIterateReverseLowerBoundFuzz(t *testing.T) {
	t.Parallel()

	r := NewBytes[any]()
	var set []string

	radixAddAndScan := func(newKey, searchKey readableString) []string {
		r.Insert([]byte(newKey), nil)
		it := r.ReverseIterator()
		it.SeekReverseLowerBound([]byte(searchKey))
		return drain(it.Previous)
	}

	sliceAddSortAndFilter := func(newKey, searchKey readableString) []string {
		set = sortedUnique(append(set, string(newKey)))
		var result []string
		for i := len(set) - 1; i >= 0; i-- {
			if set[i] <= string(searchKey) {
				result = append(result, set[i])
			}
		}
		return result
	}

	if err := quick.CheckEqual(radixAddAndScan, sliceAddSortAndFilter, nil); err != nil {
		t.Error(err)
	}
}

func TestIterateLowerBound(t *testing.T) {
	t.Parallel()

	// these should be defined in order
	var fixedLenKeys = []string{
		"00000",
		"00001",
		"00004",
		"00010",
		"00020",
		"20020",
	}

	// these should be defined in order
	var mixedLenKeys = []string{
		"a1",
		"abc",
		"barbazboo",
		"f",
		"foo",
		"found",
		"zap",
		"zip",
	}

	type exp struct {
		keys   []string
		search string
		want   []string
	}
	cases := []exp{
		{fixedLenKeys, "00000", fixedLenKeys},
		{fixedLenKeys, "00003", []string{"00004", "00010", "00020", "20020"}},
		{fixedLenKeys, "00010", []string{"00010", "00020", "20020"}},
		{fixedLenKeys, "20000", []string{"20020"}},
		{fixedLenKeys, "20020", []string{"20020"}},
		{fixedLenKeys, "20022", nil},
		{mixedLenKeys, "A", mixedLenKeys},
		{mixedLenKeys, "a1", mixedLenKeys},
		{mixedLenKeys, "b", []string{"barbazboo", "f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "bar", []string{"barbazboo", "f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "barbazboo0", []string{"f", "foo", "found", "zap", "zip"}},
		{mixedLenKeys, "zippy", nil},
		{mixedLenKeys, "zi", []string{"zip"}},
		{[]string{"", "a", "b"}, "", []string{"", "a", "b"}},
	}

	for _, test := range cases {
		t.Run(test.search, func(t *testing.T) {
			r := NewBytes[any]()
			for _, k := range test.keys {
				r.Insert([]byte(k), nil)
			}
			it := r.Iterator()
			it.SeekLowerBound([]byte(test.search))
			if diff := cmp.Diff(test.want, drain(it.Next)); diff != "" {
				t.Fatalf("lower bound %q mismatch (-want +got):\n%s", test.search, diff)
			}
		})
	}
}

func TestIteratorPrefix(t *testing.T) {
	t.Parallel()

	r := NewBytes[int]()
	keys := []string{"", "a", "ab", "abc", "abd", "b", "ba", "c"}
	for i, k := range keys {
		r.Insert([]byte(k), i)
	}

	cases := map[string][]string{
		"":    keys,
		"a":   {"a", "ab", "abc", "abd"},
		"ab":  {"ab", "abc", "abd"},
		"abc": {"abc"},
		"abe": nil,
		"b":   {"b", "ba"},
		"d":   nil,
	}
	for prefix, want := range cases {
		it := r.Iterator()
		it.SeekPrefix([]byte(prefix))
		require.Equal(t, want, drain(it.Next), "prefix %q", prefix)
	}

	rit := r.ReverseIterator()
	rit.SeekPrefix([]byte("a"))
	require.Equal(t, []string{"abd", "abc", "ab", "a"}, drain(rit.Previous))

	rit = r.ReverseIterator()
	require.Equal(t, []string{"c", "ba", "b", "abd", "abc", "ab", "a", ""}, drain(rit.Previous))
}

func TestIteratorValues(t *testing.T) {
	t.Parallel()

	r := NewRunes[int]()
	words := []string{"über", "uber", "ünder", "zoo"}
	for i, w := range words {
		_, _, err := r.InsertString(w, i)
		require.NoError(t, err)
	}

	got := make(map[string]int)
	var order []string
	for k, v := range r.All() {
		s, err := Decode(k)
		require.NoError(t, err)
		got[s] = v
		order = append(order, s)
	}
	require.Equal(t, map[string]int{"über": 0, "uber": 1, "ünder": 2, "zoo": 3}, got)
	// 'z' (U+007A) sorts before 'ü' (U+00FC) by code point
	require.Equal(t, []string{"uber", "zoo", "über", "ünder"}, order)
}

func TestSequencesRestartable(t *testing.T) {
	t.Parallel()

	r := NewBytes[int]()
	for i, k := range []string{"x", "xy", "xyz", "y"} {
		r.Insert([]byte(k), i)
	}

	seq := r.KeysWithPrefix([]byte("x"))
	var first, second []string
	for k := range seq {
		first = append(first, string(k))
		// a nested traversal does not disturb the outer one
		for k2 := range seq {
			second = append(second, string(k2))
		}
	}
	require.Equal(t, []string{"x", "xy", "xyz"}, first)
	require.Len(t, second, 9)

	// stopping early
	var some []string
	for k := range r.Keys() {
		some = append(some, string(k))
		if len(some) == 2 {
			break
		}
	}
	require.Equal(t, []string{"x", "xy"}, some)
}

func TestYieldedKeysAreOwned(t *testing.T) {
	t.Parallel()

	r := NewBytes[int]()
	r.Insert([]byte("ab"), 1)
	r.Insert([]byte("ac"), 2)

	var keys [][]byte
	for k := range r.Keys() {
		keys = append(keys, k)
	}
	keys[0][0] = 'z'
	require.Equal(t, "ac", string(keys[1]))
	require.True(t, r.Contains([]byte("ab")))

	prefix := []byte("a")
	seq := r.KeysWithPrefix(prefix)
	prefix[0] = 'q'
	var n int
	for range seq {
		n++
	}
	require.Equal(t, 2, n)
}

func TestPathIterator(t *testing.T) {
	t.Parallel()

	r := NewBytes[int]()
	keys := []string{"", "foo", "foobar", "foobarbaz", "foozip", "bar"}
	for i, k := range keys {
		r.Insert([]byte(k), i)
	}

	type exp struct {
		path string
		want []string
	}
	cases := []exp{
		{"", []string{""}},
		{"f", []string{""}},
		{"foo", []string{"", "foo"}},
		{"foobarb", []string{"", "foo", "foobar"}},
		{"foobarbazzzz", []string{"", "foo", "foobar", "foobarbaz"}},
		{"foozip", []string{"", "foo", "foozip"}},
		{"barn", []string{"", "bar"}},
	}
	for _, test := range cases {
		it := r.PathIterator([]byte(test.path))
		require.Equal(t, test.want, drain(it.Next), "path %q", test.path)
	}

	r.Delete(nil)
	it := r.PathIterator([]byte("zzz"))
	require.Nil(t, drain(it.Next))
}

func TestIterateEmpty(t *testing.T) {
	t.Parallel()

	r := NewRunes[string]()
	require.Nil(t, drain(r.Iterator().Next))
	require.Nil(t, drain(r.ReverseIterator().Previous))
	for range r.All() {
		t.Fatal("empty trie yielded a key")
	}
}

func TestReverseIteratorEmptyKeyLast(t *testing.T) {
	t.Parallel()

	r := NewBytes[string]()
	r.Insert(nil, "root")
	r.Insert(bs("b"), "b")
	r.Insert(bs("abc"), "abc")

	it := r.ReverseIterator()
	var keys, values []string
	for {
		k, v, ok := it.Previous()
		if !ok {
			break
		}
		keys = append(keys, string(k))
		values = append(values, v)
	}
	require.Equal(t, []string{"b", "abc", ""}, keys)
	require.Equal(t, []string{"b", "abc", "root"}, values)

	rit := r.ReverseIterator()
	rit.SeekReverseLowerBound(bs("ab"))
	k, v, ok := rit.Previous()
	require.True(t, ok)
	require.Empty(t, k)
	require.Equal(t, "root", v)
}
