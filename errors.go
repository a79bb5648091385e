package afinn

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEntry reports a lexicon line without a word or a score.
	ErrMalformedEntry = errors.New("malformed lexicon entry")

	// ErrDivisionUndefined is returned by averages computed over zero items.
	ErrDivisionUndefined = errors.New("average over zero items is undefined")

	// ErrDefaultLoaded is returned when the default source is changed after
	// the shared lexicon has been built.
	ErrDefaultLoaded = errors.New("default lexicon already loaded")
)

// LexiconError describes a failure to load one lexicon entry.
type LexiconError struct {
	Source string // Name of the source, usually a file path
	Line   int    // 1-based line number, 0 when unknown
	Text   string // The offending line
	Err    error
}

func (e *LexiconError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("lexicon %s line %d %q: %v", e.Source, e.Line, e.Text, e.Err)
	}
	return fmt.Sprintf("lexicon %s: %v", e.Source, e.Err)
}

func (e *LexiconError) Unwrap() error {
	return e.Err
}
