// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/permav/avoidance"
	"github.com/katalvlaran/permav/basis"
	"github.com/katalvlaran/permav/perm"
	"github.com/katalvlaran/permav/permset"
)

func parsePair(args []string) (patt, host *perm.Perm, err error) {
	if patt, err = perm.Parse(args[0]); err != nil {
		return nil, nil, fmt.Errorf("pattern %q: %w", args[0], err)
	}
	if host, err = perm.Parse(args[1]); err != nil {
		return nil, nil, fmt.Errorf("permutation %q: %w", args[1], err)
	}

	return patt, host, nil
}

func (a *app) containsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "contains PATTERN PERM",
		Short: "Report whether PERM contains PATTERN",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patt, host, err := parsePair(args)
			if err != nil {
				return err
			}
			n := patt.CountOccurrencesIn(host)
			fmt.Fprintf(cmd.OutOrStdout(), "%t (%d occurrences)\n", n > 0, n)

			return nil
		},
	}
}

func (a *app) occurrencesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "occurrences PATTERN PERM",
		Short: "List the index tuples where PATTERN occurs in PERM",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patt, host, err := parsePair(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for occ := range patt.OccurrencesIn(host) {
				fmt.Fprintln(out, formatInts(occ))
			}

			return nil
		},
	}
}

func (a *app) enumerateCmd() *cobra.Command {
	var maxLen int
	cmd := &cobra.Command{
		Use:   "enumerate BASIS...",
		Short: "Print member counts per length for each basis",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-length") {
				maxLen = a.cfg.MaxLength
			}
			if maxLen < 0 || maxLen > maxEnumerable {
				return fmt.Errorf("permav: --max-length %d not in [0,%d]", maxLen, maxEnumerable)
			}
			lines, err := a.enumerate(cmd.Context(), args, maxLen)
			if err != nil {
				return err
			}
			for _, line := range lines {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&maxLen, "max-length", "n", 0, "largest length to count (default from config)")

	return cmd
}

// enumerate counts every basis concurrently; output keeps argument order.
func (a *app) enumerate(ctx context.Context, texts []string, maxLen int) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	lines := make([]string, len(texts))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := basis.Parse(text)
			if err != nil {
				return fmt.Errorf("basis %q: %w", text, err)
			}
			set, err := permset.ForBasis(b)
			if err != nil {
				return err
			}
			start := time.Now()
			counts := set.Counts(maxLen)
			a.logger.Debug("enumerated",
				zap.Stringer("basis", b),
				zap.Stringer("kind", set.Kind()),
				zap.Int("max_length", maxLen),
				zap.Duration("elapsed", time.Since(start)))
			lines[i] = "Av" + b.String() + ": " + formatInts(counts)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (a *app) sampleCmd() *cobra.Command {
	var (
		length, count int
		seed          int64
		distinct      bool
	)
	cmd := &cobra.Command{
		Use:   "sample BASIS",
		Short: "Draw uniform random members of one length",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := basis.Parse(args[0])
			if err != nil {
				return fmt.Errorf("basis %q: %w", args[0], err)
			}
			class, err := avoidance.Of(b)
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Seed
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			opts := []avoidance.SampleOption{avoidance.WithSeed(seed)}
			if distinct {
				opts = append(opts, avoidance.WithDistinct())
			}
			picks, err := class.Sample(length, count, opts...)
			if err != nil {
				return err
			}
			a.logger.Debug("sampled", zap.Stringer("class", class), zap.Int64("seed", seed))
			for _, p := range picks {
				fmt.Fprintln(cmd.OutOrStdout(), p.Digits())
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&length, "length", "l", 5, "length of the drawn permutations")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of draws")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (default from config, 0 is time based)")
	cmd.Flags().BoolVar(&distinct, "distinct", false, "draw without replacement")

	return cmd
}

func (a *app) basisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "basis TEXT...",
		Short: "Print the canonical basis of the union of all arguments",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b := basis.Empty()
			for _, text := range args {
				next, err := basis.Parse(text)
				if err != nil {
					return fmt.Errorf("basis %q: %w", text, err)
				}
				if b, err = b.Union(next.Patterns()...); err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), b)

			return nil
		},
	}
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return strings.Join(parts, " ")
}
