package afinn

import (
	"sync"
	"sync/atomic"
)

var (
	defaultLexicon atomic.Pointer[Lexicon]
	defaultMu      sync.Mutex
	defaultSource  Source
)

// Default returns the process-wide lexicon, loading it on first use from the
// source set with SetDefaultSource, or from DefaultSource otherwise.
//
// Concurrent first calls load the source once and all receive the same
// lexicon. A failed load is not cached; the next call tries again.
func Default() (*Lexicon, error) {
	if lexicon := defaultLexicon.Load(); lexicon != nil {
		return lexicon, nil
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()

	if lexicon := defaultLexicon.Load(); lexicon != nil {
		return lexicon, nil
	}

	src := defaultSource
	if src == nil {
		src = DefaultSource()
	}
	lexicon, err := NewLexicon(src)
	if err != nil {
		return nil, err
	}
	defaultLexicon.Store(lexicon)
	return lexicon, nil
}

// SetDefaultSource chooses where Default loads from. It fails with
// ErrDefaultLoaded once Default has returned a lexicon.
func SetDefaultSource(src Source) error {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultLexicon.Load() != nil {
		return ErrDefaultLoaded
	}
	defaultSource = src
	return nil
}
