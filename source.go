package afinn

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// DefaultLexiconPath is where Default looks for the AFINN word list when
// AFINN_LEXICON is not set.
const DefaultLexiconPath = "db/AFINN-111.txt"

// A Source yields the entries a Lexicon is built from.
type Source interface {
	Entries() ([]LexiconEntry, error)
}

// MapSource serves entries from an in-memory map.
type MapSource map[string]int

// Entries returns the map as entries sorted by word.
func (m MapSource) Entries() ([]LexiconEntry, error) {
	entries := make([]LexiconEntry, 0, len(m))
	for word, polarity := range m {
		entries = append(entries, LexiconEntry{Word: word, Polarity: polarity})
	}
	sortEntries(entries)
	return entries, nil
}

type readerSource struct {
	r    io.Reader
	name string
}

// ReaderSource parses AFINN text from r: one "word<TAB>score" pair per line.
// Blank lines are ignored. name identifies the input in errors.
func ReaderSource(r io.Reader, name string) Source {
	return &readerSource{r: r, name: name}
}

func (rs *readerSource) Entries() ([]LexiconEntry, error) {
	return parseAFINN(rs.r, rs.name)
}

// FileSource reads AFINN text from a file.
type FileSource string

// Entries opens the file and parses every line.
func (fs FileSource) Entries() ([]LexiconEntry, error) {
	f, err := os.Open(string(fs))
	if err != nil {
		return nil, &LexiconError{Source: string(fs), Err: err}
	}
	defer f.Close()

	return parseAFINN(f, string(fs))
}

// DefaultSource returns the file named by AFINN_LEXICON, or
// DefaultLexiconPath when the variable is empty.
func DefaultSource() Source {
	if path := os.Getenv("AFINN_LEXICON"); path != "" {
		return FileSource(path)
	}
	return FileSource(DefaultLexiconPath)
}

func parseAFINN(r io.Reader, name string) ([]LexiconEntry, error) {
	var entries []LexiconEntry

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		word, score, found := strings.Cut(line, "\t")
		if !found || strings.TrimSpace(word) == "" {
			return nil, &LexiconError{Source: name, Line: lineNo, Text: line, Err: ErrMalformedEntry}
		}
		polarity, err := strconv.Atoi(strings.TrimSpace(score))
		if err != nil {
			return nil, &LexiconError{Source: name, Line: lineNo, Text: line, Err: fmt.Errorf("%w: %w", ErrMalformedEntry, err)}
		}

		entries = append(entries, LexiconEntry{Word: word, Polarity: polarity})
	}
	if err := scanner.Err(); err != nil {
		return nil, &LexiconError{Source: name, Line: lineNo, Err: err}
	}

	return entries, nil
}
