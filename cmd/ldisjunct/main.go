// Package main is the entry point for ldisjunct, a CLI front-end over the
// disjunct-construction core: it loads a notation dictionary, reads
// sentences, builds disjuncts and a fast matcher for each, and prints a
// summary.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/linkgrammar-go/ldcore/internal/logging"
)

func main() {
	logging.SetDefault("text", slog.LevelInfo)
	if err := newRootCmd().Execute(); err != nil {
		logging.For("cli").Error("ldisjunct failed", "error", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "ldisjunct",
		Short: "Build link-grammar-style disjuncts and query the fast matcher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.dictPath, "dict", "", "path to a notation dictionary file (required)")
	flags.StringVar(&opts.lang, "lang", "en", "dictionary language label (threaded through for symmetry; this repo has one dictionary format)")
	flags.IntVar(&opts.costCutoff, "cost-cutoff", 1000, "maximum clause MaxCost a disjunct may keep")
	flags.BoolVar(&opts.batch, "batch", false, "read every sentence from stdin without interactive prompts")
	flags.BoolVar(&opts.ppOff, "ppoff", false, "turn off post-processing (accepted and ignored: out of scope)")
	flags.BoolVar(&opts.cOff, "coff", false, "turn off constituent printing (accepted and ignored: out of scope)")
	flags.BoolVar(&opts.aOff, "aoff", false, "turn off anaphora/ambient features (accepted and ignored: out of scope)")
	flags.IntVar(&opts.verbosity, "verbosity", 1, "diagnostic verbosity level")

	_ = cmd.MarkFlagRequired("dict")

	return cmd
}
