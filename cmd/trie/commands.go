// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

type options struct {
	words    []string
	runes    bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "trie",
		Short:        "Query word lists through a compact prefix trie",
		SilenceUsage: true,
	}
	flags := root.PersistentFlags()
	flags.StringArrayVarP(&opts.words, "words", "w", nil, "word list file, one key per line (repeatable, default stdin)")
	flags.BoolVar(&opts.runes, "runes", false, "key by Unicode code points instead of bytes")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		newCompleteCmd(opts),
		newLookupCmd(opts),
		newStatsCmd(opts),
	)
	return root
}

func newLogger(cmd *cobra.Command, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl})), nil
}

// buildIndex reads the configured word lists, or stdin when there are none.
func buildIndex(cmd *cobra.Command, opts *options) (wordIndex, error) {
	logger, err := newLogger(cmd, opts.logLevel)
	if err != nil {
		return nil, err
	}
	idx := newIndex(opts.runes)
	if len(opts.words) == 0 {
		if err := load(idx, cmd.InOrStdin(), "stdin", logger); err != nil {
			return nil, err
		}
	}
	for _, path := range opts.words {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		err = load(idx, f, path, logger)
		f.Close()
		if err != nil {
			return nil, err
		}
	}
	logger.Debug("index ready", "keys", idx.size(), "runes", opts.runes)
	return idx, nil
}

func newCompleteCmd(opts *options) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "complete PREFIX",
		Short: "List the words starting with PREFIX in order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := buildIndex(cmd, opts)
			if err != nil {
				return err
			}
			matches, err := idx.complete(args[0], limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range matches {
				fmt.Fprintf(out, "%s\t%d\n", m.word, m.line)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many words (0 for all)")
	return cmd
}

func newLookupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup KEY...",
		Short: "Report whether each KEY is in the word lists",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := buildIndex(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, key := range args {
				if line, ok := idx.lookup(key); ok {
					fmt.Fprintf(out, "%s\t%d\n", key, line)
				} else {
					fmt.Fprintf(out, "%s\tnot found\n", key)
				}
			}
			return nil
		},
	}
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the node layout of the loaded trie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := buildIndex(cmd, opts)
			if err != nil {
				return err
			}
			st := idx.stats()
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "keys\t%d\n", idx.size())
			fmt.Fprintf(w, "nodes\t%d\n", st.Nodes)
			fmt.Fprintf(w, "max depth\t%d\n", st.MaxDepth)
			fmt.Fprintf(w, "leaf\t%d\n", st.Leaves)
			fmt.Fprintf(w, "node4\t%d\n", st.Node4)
			fmt.Fprintf(w, "node16\t%d\n", st.Node16)
			fmt.Fprintf(w, "node48\t%d\n", st.Node48)
			fmt.Fprintf(w, "node256\t%d\n", st.Node256)
			fmt.Fprintf(w, "sparse\t%d\n", st.Sparse)
			return w.Flush()
		},
	}
}
