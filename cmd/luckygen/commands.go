package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ArowuTest/luckygen/internal/config"
	"github.com/ArowuTest/luckygen/internal/generator"
	"github.com/ArowuTest/luckygen/internal/history"
	"github.com/ArowuTest/luckygen/internal/logging"
	"github.com/ArowuTest/luckygen/internal/rng"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:          "luckygen",
		Short:        "Generate six-number games that pass the statistical filters",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newBatchCmd(opts), newFiltersCmd(opts))
	return root
}

func (o *rootOptions) logger(errOut io.Writer) *logrus.Logger {
	l := logging.New(o.logLevel)
	l.SetOutput(errOut)
	return l
}

type batchOptions struct {
	historyFile string
	games       int
	unique      bool
	seed        int64
	asJSON      bool
}

func newBatchCmd(root *rootOptions) *cobra.Command {
	opts := &batchOptions{}
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Generate a batch of games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := root.logger(cmd.ErrOrStderr())
			settings := config.LoadGeneratorSettings(log)

			if !cmd.Flags().Changed("games") {
				opts.games = settings.BatchSize
			}
			if !cmd.Flags().Changed("unique") {
				opts.unique = settings.UniqueAcrossBatch
			}

			var src rng.Source
			if cmd.Flags().Changed("seed") {
				src = rng.NewSeeded(opts.seed)
			} else {
				var err error
				if src, err = rng.NewDefault(); err != nil {
					return err
				}
			}
			gen, err := generator.New(settings, src, log)
			if err != nil {
				return err
			}

			snap := history.Empty(history.StatusDegraded, "no history file given")
			if opts.historyFile != "" {
				snap = history.Load(cmd.Context(), history.FileSource{Path: opts.historyFile}, log)
			}

			batch, err := gen.Batch(opts.games, opts.unique, snap.History())
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), batch, snap)
			}
			writeBatch(cmd.OutOrStdout(), batch, snap)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&opts.historyFile, "history", "", "JSON file of past draws, oldest first")
	f.IntVar(&opts.games, "games", generator.DefaultSettings().BatchSize, "games in the batch")
	f.BoolVar(&opts.unique, "unique", true, "never repeat a number across the batch")
	f.Int64Var(&opts.seed, "seed", 0, "seed for a reproducible run")
	f.BoolVar(&opts.asJSON, "json", false, "print the batch as JSON")
	return cmd
}

func newFiltersCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "filters",
		Short: "Print the generator and filter settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings := config.LoadGeneratorSettings(root.logger(cmd.ErrOrStderr()))
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(settings)
		},
	}
}

func formatBalls(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%02d", n)
	}
	return strings.Join(parts, " ")
}

func writeBatch(w io.Writer, batch generator.Batch, snap history.Snapshot) {
	if snap.Status != history.StatusLoaded {
		fmt.Fprintf(w, "history: %s (%s)\n", snap.Status, snap.Warning)
	} else {
		fmt.Fprintf(w, "history: %d draws, last %s\n", snap.Draws, formatBalls(snap.LastDraw))
		if snap.Warning != "" {
			fmt.Fprintf(w, "history: %s\n", snap.Warning)
		}
	}
	for i, g := range batch.Games {
		fmt.Fprintf(w, "game %d  %s  sum=%d evens=%d odds=%d primes=%d  [%s, %d attempts]\n",
			i+1, formatBalls(g.Numbers), g.Stats.Sum, g.Stats.Evens, g.Stats.Odds, g.Stats.Primes,
			g.Provenance, g.Attempts)
	}
	for _, warn := range batch.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn)
	}
}

func writeJSON(w io.Writer, batch generator.Batch, snap history.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Games    []generator.Result `json:"games"`
		Partial  bool               `json:"partial"`
		Warnings []string           `json:"warnings"`
		History  history.Status     `json:"history"`
	}{batch.Games, batch.Partial(), batch.Warnings, snap.Status})
}
