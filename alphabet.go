// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package trie

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
	"unsafe"
)

// ErrInvalidSymbol is returned when an input element cannot be represented
// in the alphabet of a trie, e.g. invalid UTF-8 given to a rune trie.
var ErrInvalidSymbol = errors.New("trie: symbol not representable in alphabet")

// Symbol is the atomic unit of a key. A trie is keyed either by bytes or by
// Unicode code points, never a mix of both.
type Symbol interface {
	~byte | ~rune
}

// Alphabet identifies the symbol kind a trie was built for.
type Alphabet uint8

const (
	Bytes Alphabet = iota + 1
	Runes
)

func (a Alphabet) String() string {
	switch a {
	case Bytes:
		return "bytes"
	case Runes:
		return "runes"
	default:
		return fmt.Sprintf("Alphabet(%d)", uint8(a))
	}
}

// dense reports whether symbols fit the 256 slot indexed nodes.
func (a Alphabet) dense() bool {
	return a == Bytes
}

func alphabetOf[S Symbol]() Alphabet {
	var zero S
	if unsafe.Sizeof(zero) == 1 {
		return Bytes
	}
	return Runes
}

// Encode converts a host string into a key for alphabet S. Byte keys take
// the raw bytes of s. Rune keys require valid UTF-8, otherwise nothing is
// returned and the error wraps ErrInvalidSymbol.
func Encode[S Symbol](s string) ([]S, error) {
	if alphabetOf[S]() == Bytes {
		key := make([]S, len(s))
		for i := 0; i < len(s); i++ {
			key[i] = S(s[i])
		}
		return key, nil
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("%w: invalid UTF-8 in %q", ErrInvalidSymbol, s)
	}
	key := make([]S, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		key = append(key, S(r))
	}
	return key, nil
}

// Decode is the inverse of Encode. It fails only for rune keys holding
// values that are not Unicode scalar values.
func Decode[S Symbol](key []S) (string, error) {
	if alphabetOf[S]() == Bytes {
		b := make([]byte, len(key))
		for i, c := range key {
			b[i] = byte(c)
		}
		return string(b), nil
	}
	var sb strings.Builder
	sb.Grow(len(key))
	for i, c := range key {
		r := rune(c)
		if !utf8.ValidRune(r) {
			return "", fmt.Errorf("%w: %U at offset %d", ErrInvalidSymbol, r, i)
		}
		sb.WriteRune(r)
	}
	return sb.String(), nil
}

// appendSymbols writes an unambiguous byte encoding of key to dst. Runes
// take a fixed four bytes each so distinct keys never collide.
func appendSymbols[S Symbol](dst []byte, key []S) []byte {
	if alphabetOf[S]() == Bytes {
		for _, c := range key {
			dst = append(dst, byte(c))
		}
		return dst
	}
	for _, c := range key {
		dst = binary.BigEndian.AppendUint32(dst, uint32(c))
	}
	return dst
}
