package ldisjunct

// Fatal error codes for conditions classified as assertion failures rather
// than recoverable errors: they indicate dictionary corruption or caller
// misuse, not bad sentence input. The core panics with an oops-coded error
// for these (see expression.go, clause.go, stringset.go) rather than
// returning an error value, matching the original's assert() calls.
// Callers that need to recover a sentence parse after one of these, the
// interactive front-end's discard-and-re-prompt behavior, should recover()
// at the sentence boundary, which is what internal/parallel's
// BuildSentences does for each sentence job.
const (
	// ErrCodeInvalidExpression marks an Expression node with an unrecognized
	// Kind reaching clause building or structural comparison.
	ErrCodeInvalidExpression = "INVALID_EXPRESSION"

	// ErrCodeNilStringSet marks an attempt to intern into a nil StringSet.
	ErrCodeNilStringSet = "NIL_STRINGSET"
)
