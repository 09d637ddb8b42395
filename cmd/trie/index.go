// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	trie "github.com/absolutelightning/go-compact-trie"
)

type match struct {
	word string
	line int
}

// wordIndex hides the symbol type of the trie behind string keys.
type wordIndex interface {
	add(word string, line int) (replaced bool, err error)
	complete(prefix string, limit int) ([]match, error)
	lookup(word string) (int, bool)
	stats() trie.Stats
	size() int
}

type trieIndex[S trie.Symbol] struct {
	tree *trie.Trie[S, int]
}

func newIndex(runes bool) wordIndex {
	if runes {
		return &trieIndex[rune]{tree: trie.NewRunes[int]()}
	}
	return &trieIndex[byte]{tree: trie.NewBytes[int]()}
}

func (x *trieIndex[S]) add(word string, line int) (bool, error) {
	_, replaced, err := x.tree.InsertString(word, line)
	return replaced, err
}

func (x *trieIndex[S]) complete(prefix string, limit int) ([]match, error) {
	key, err := trie.Encode[S](prefix)
	if err != nil {
		return nil, err
	}
	var out []match
	for k, line := range x.tree.WithPrefix(key) {
		word, err := trie.Decode(k)
		if err != nil {
			return nil, err
		}
		out = append(out, match{word: word, line: line})
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out, nil
}

func (x *trieIndex[S]) lookup(word string) (int, bool) {
	return x.tree.GetString(word)
}

func (x *trieIndex[S]) stats() trie.Stats {
	return x.tree.Stats()
}

func (x *trieIndex[S]) size() int {
	return x.tree.Len()
}

// load adds every non-empty line of r to idx, valued by its line number.
func load(idx wordIndex, r io.Reader, name string, logger *slog.Logger) error {
	scanner := bufio.NewScanner(r)
	lineNumber, added, duplicates := 0, 0, 0
	for scanner.Scan() {
		lineNumber++
		word := scanner.Text()
		if word == "" {
			continue
		}
		replaced, err := idx.add(word, lineNumber)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", name, lineNumber, err)
		}
		if replaced {
			duplicates++
			logger.Debug("duplicate word", "source", name, "line", lineNumber, "word", word)
			continue
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", name, err)
	}
	logger.Info("loaded word list", "source", name, "words", added, "duplicates", duplicates)
	return nil
}
