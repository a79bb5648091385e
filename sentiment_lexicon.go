package afinn

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"
)

// Lexicon maps normalized words to integer polarities.
//
// Words are only ever added: Inject never overwrites an existing key and
// nothing removes one. All methods are safe for concurrent use.
type Lexicon struct {
	words   map[string]int
	skipped int
	mutex   sync.RWMutex
}

// ExternalLexicon represents the JSON structure for files of extra words
type ExternalLexicon struct {
	Words []WordEntry `json:"words"`
}

// WordEntry represents a scored word in JSON format
type WordEntry struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

// NewLexicon builds a lexicon from every entry of src.
//
// A word without ASCII letters anywhere in the source fails the whole load,
// so a partially loaded lexicon is never returned. Words that
// normalize to more than one token are phrase entries; they are left out and
// counted by Skipped. When two words normalize to the same token the first
// one wins.
func NewLexicon(src Source) (*Lexicon, error) {
	entries, err := src.Entries()
	if err != nil {
		return nil, fmt.Errorf("failed to load lexicon: %w", err)
	}

	lexicon := &Lexicon{words: make(map[string]int, len(entries))}
	for i, entry := range entries {
		if !hasLetter(entry.Word) {
			return nil, fmt.Errorf("failed to load lexicon: entry %d: %w", i+1, ErrMalformedEntry)
		}
		word, ok := NormalizeWord(entry.Word)
		if !ok {
			lexicon.skipped++
			continue
		}
		if _, exists := lexicon.words[word]; !exists {
			lexicon.words[word] = entry.Polarity
		}
	}

	return lexicon, nil
}

// Lookup returns the polarity of a normalized word.
func (sl *Lexicon) Lookup(word string) (int, bool) {
	sl.mutex.RLock()
	defer sl.mutex.RUnlock()

	polarity, ok := sl.words[word]
	return polarity, ok
}

// Len returns the number of words in the lexicon.
func (sl *Lexicon) Len() int {
	sl.mutex.RLock()
	defer sl.mutex.RUnlock()
	return len(sl.words)
}

// Skipped returns how many source entries were phrases and left out.
func (sl *Lexicon) Skipped() int {
	sl.mutex.RLock()
	defer sl.mutex.RUnlock()
	return sl.skipped
}

// Inject adds words that are not in the lexicon yet and returns how many
// were added. Existing words keep their polarity. Keys are normalized like
// tokens; keys that do not reduce to a single token are ignored.
func (sl *Lexicon) Inject(words map[string]int) int {
	sl.mutex.Lock()
	defer sl.mutex.Unlock()

	// Sorted so that keys normalizing to the same token resolve the same
	// way on every call.
	keys := make([]string, 0, len(words))
	for key := range words {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	added := 0
	for _, key := range keys {
		word, ok := NormalizeWord(key)
		if !ok {
			continue
		}
		if _, exists := sl.words[word]; exists {
			continue
		}
		sl.words[word] = words[key]
		added++
	}
	return added
}

// Entries returns a snapshot of the lexicon sorted by word.
func (sl *Lexicon) Entries() []LexiconEntry {
	sl.mutex.RLock()
	entries := make([]LexiconEntry, 0, len(sl.words))
	for word, polarity := range sl.words {
		entries = append(entries, LexiconEntry{Word: word, Polarity: polarity})
	}
	sl.mutex.RUnlock()

	sortEntries(entries)
	return entries
}

// LoadExternalLexicon reads a JSON file of extra words and injects them.
func (sl *Lexicon) LoadExternalLexicon(filepath string) (int, error) {
	f, err := os.Open(filepath)
	if err != nil {
		return 0, fmt.Errorf("error reading lexicon file: %w", err)
	}
	defer f.Close()

	words, err := ReadInjectJSON(f)
	if err != nil {
		return 0, err
	}
	return sl.Inject(words), nil
}

// ReadInjectJSON decodes an ExternalLexicon into a map suitable for Inject.
// Repeated words keep their first score.
func ReadInjectJSON(r io.Reader) (map[string]int, error) {
	var external ExternalLexicon
	if err := json.NewDecoder(r).Decode(&external); err != nil {
		return nil, fmt.Errorf("error parsing lexicon JSON: %w", err)
	}

	words := make(map[string]int, len(external.Words))
	for _, entry := range external.Words {
		if _, exists := words[entry.Word]; !exists {
			words[entry.Word] = entry.Score
		}
	}
	return words, nil
}

func sortEntries(entries []LexiconEntry) {
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Word < entries[j].Word
	})
}

func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i] | 0x20
		if c >= 'a' && c <= 'z' {
			return true
		}
	}
	return false
}
