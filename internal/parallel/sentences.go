package parallel

import (
	"context"

	"github.com/linkgrammar-go/ldcore/pkg/ldisjunct"
)

// SentenceJob is one (Sentence, costCutoff) pair to build: the unit of
// independent parallelism across sentences. Building the disjuncts and
// fast matcher for one Sentence stays single-threaded; only distinct
// Sentences overlap across workers.
type SentenceJob struct {
	Sentence   *ldisjunct.Sentence
	CostCutoff int
}

// SentenceResult is what one SentenceJob produces: the same Sentence,
// mutated in place with its Words[*].Disjuncts and fast matcher built, or
// the panic value the core raised for it, recovered and turned into an
// error so one malformed sentence cannot bring down the whole batch.
type SentenceResult struct {
	Sentence *ldisjunct.Sentence
	Err      error
}

// BuildSentences runs BuildSentenceDisjuncts followed by InitFastMatcher for
// every job in jobs, using pool's workers, and returns one SentenceResult
// per job in submission order.
func BuildSentences(ctx context.Context, pool *BuildPool, jobs []SentenceJob) []SentenceResult {
	wrapped := make([]Job, len(jobs))
	for i, j := range jobs {
		j := j
		wrapped[i] = Job{Run: func() (any, error) {
			return buildOneSentence(j)
		}}
	}
	raw, _ := pool.Run(ctx, wrapped)
	results := make([]SentenceResult, len(raw))
	for i, r := range raw {
		sentence, _ := r.Value.(*ldisjunct.Sentence)
		results[i] = SentenceResult{Sentence: sentence, Err: r.Err}
	}
	return results
}

func buildOneSentence(j SentenceJob) (_ *ldisjunct.Sentence, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok {
				err = e
			} else {
				err = errRecovered{rec}
			}
		}
	}()
	ldisjunct.BuildSentenceDisjuncts(j.Sentence, j.CostCutoff)
	ldisjunct.InitFastMatcher(j.Sentence)
	return j.Sentence, nil
}

// errRecovered wraps a non-error panic value. Fatal assertions in the core
// always panic with an oops-coded error, but this guard covers any panic
// shape without assuming that invariant holds forever.
type errRecovered struct {
	value any
}

func (e errRecovered) Error() string {
	return "parallel: recovered panic building sentence"
}

func (e errRecovered) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}
