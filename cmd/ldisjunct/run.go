package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/linkgrammar-go/ldcore/internal/dictionary"
	"github.com/linkgrammar-go/ldcore/internal/logging"
	"github.com/linkgrammar-go/ldcore/pkg/ldisjunct"
)

type runOptions struct {
	dictPath   string
	lang       string
	costCutoff int
	batch      bool
	ppOff      bool
	cOff       bool
	aOff       bool
	verbosity  int
}

// run loads the dictionary named by opts.dictPath, then processes sentences
// from stdin one line at a time: a line starting with "!" is an in-band
// command (!verbosity=N, !cost=N), anything else is sentence text. Exit
// code 0 on clean shutdown (EOF), non-nil error (which main turns into exit
// code 1) on dictionary-load failure.
func run(ctx context.Context, opts *runOptions) error {
	if opts.verbosity > 1 {
		logging.SetDefault("text", slog.LevelDebug)
	}

	f, err := os.Open(opts.dictPath)
	if err != nil {
		return fmt.Errorf("ldisjunct: opening dictionary %q: %w", opts.dictPath, err)
	}
	defer f.Close()

	ss := ldisjunct.NewStringSet()
	dict, err := dictionary.Load(ss, f)
	if err != nil {
		return fmt.Errorf("ldisjunct: loading dictionary %q: %w", opts.dictPath, err)
	}
	cliLog := logging.For("cli")
	cliLog.Info("dictionary loaded", "path", opts.dictPath, "lang", opts.lang, "words", len(dict.Words()))

	if opts.ppOff || opts.cOff || opts.aOff {
		cliLog.Info("post-processing/constituent/anaphora flags accepted and ignored", "ppoff", opts.ppOff, "coff", opts.cOff, "aoff", opts.aOff)
	}

	return processLines(ctx, os.Stdin, os.Stdout, dict, opts)
}

func processLines(ctx context.Context, in io.Reader, out io.Writer, dict *dictionary.Dictionary, opts *runOptions) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "!") {
			applyCommand(out, opts, line)
			continue
		}
		processSentence(out, dict, opts, line)
	}
	return scanner.Err()
}

// applyCommand handles !verbosity=N and !cost=N, adjusting opts in place
// for every sentence processed after it. An unrecognized command is
// reported and skipped, a discard-and-re-prompt recovery rather than a
// fatal error.
func applyCommand(out io.Writer, opts *runOptions, line string) {
	body := strings.TrimPrefix(line, "!")
	key, value, ok := strings.Cut(body, "=")
	if !ok {
		fmt.Fprintf(out, "unrecognized command %q\n", line)
		return
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		fmt.Fprintf(out, "unrecognized command %q: %v\n", line, err)
		return
	}
	switch strings.TrimSpace(key) {
	case "verbosity":
		opts.verbosity = n
		level := slog.LevelInfo
		if n > 1 {
			level = slog.LevelDebug
		}
		logging.SetDefault("text", level)
	case "cost":
		opts.costCutoff = n
	default:
		fmt.Fprintf(out, "unrecognized command %q\n", line)
	}
}

// processSentence looks every word of line up in dict, builds disjuncts and
// the fast matcher, and prints a summary: word count, a per-word disjunct
// histogram, and (when verbosity > 0) one sample FormMatchList query: the
// first word after word 0 that has a disjunct with a left connector is
// queried on its own left table with that connector.
func processSentence(out io.Writer, dict *dictionary.Dictionary, opts *runOptions, line string) {
	words := strings.Fields(line)
	sentence := dict.BuildSentence(words)

	ldisjunct.BuildSentenceDisjuncts(sentence, opts.costCutoff)
	ldisjunct.InitFastMatcher(sentence)
	defer ldisjunct.FreeFastMatcher(sentence)

	fmt.Fprintf(out, "words: %d\n", len(sentence.Words))
	for i, w := range sentence.Words {
		fmt.Fprintf(out, "  %d %-12s disjuncts=%d left=%d right=%d\n",
			i, w.Surface, len(w.Disjuncts), w.LeftDisjunctCount(), w.RightDisjunctCount())
	}

	if opts.verbosity > 0 {
		printSampleQuery(out, sentence)
	}
}

func printSampleQuery(out io.Writer, sentence *ldisjunct.Sentence) {
	matcher := ldisjunct.MatcherFor(sentence)
	for w := 1; w < len(sentence.Words); w++ {
		left := sentence.Words[w]
		if left.LeftDisjunctCount() == 0 {
			continue
		}
		var lc *ldisjunct.Connector
		for _, d := range left.Disjuncts {
			if d.Left != nil {
				lc = d.Left
				break
			}
		}
		if lc == nil {
			continue
		}
		list := matcher.FormMatchList(w, lc, 0, nil, 0)
		n := 0
		for m := list; m != nil; m = m.Next {
			n++
		}
		matcher.PutMatchList(list)
		fmt.Fprintf(out, "sample query: word %d left-connector %q -> %d candidate disjuncts\n", w, lc.Str.String(), n)
		return
	}
}
