package gonepali

/**
 * gonepali - A Roman to Devanagari transliteration library for Nepali
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"
	"unicode"

	"github.com/derekparker/trie"
	"golang.org/x/text/unicode/norm"
)

//go:embed schemes/ne-exceptions.tsv
var builtinExceptions []byte

// Entry is one exception dictionary entry
type Entry struct {
	Roman      string    `yaml:"roman"`
	Devanagari string    `yaml:"devanagari"`
	Class      WordClass `yaml:"class,omitempty"`
}

// Dictionary maps lower-cased Roman words to fixed Devanagari forms.
// It is read-only once built and safe for concurrent use.
type Dictionary struct {
	words  map[string]Entry
	prefix *trie.Trie
}

var (
	defaultDictionary     *Dictionary
	defaultDictionaryErr  error
	defaultDictionaryOnce sync.Once
)

// DefaultDictionary returns the built-in exception dictionary.
// It is parsed once per process.
func DefaultDictionary() (*Dictionary, error) {
	defaultDictionaryOnce.Do(func() {
		entries, err := ReadEntriesTSV(bytes.NewReader(builtinExceptions))
		if err != nil {
			defaultDictionaryErr = fmt.Errorf("built-in dictionary: %w", err)
			return
		}
		defaultDictionary, defaultDictionaryErr = NewDictionary(entries)
	})
	return defaultDictionary, defaultDictionaryErr
}

// NewDictionary builds a dictionary from entries. A later entry for
// the same Roman word replaces an earlier one.
func NewDictionary(entries []Entry) (*Dictionary, error) {
	dict := &Dictionary{
		words:  make(map[string]Entry, len(entries)),
		prefix: trie.New(),
	}

	for _, entry := range entries {
		normalized, err := NormalizeEntry(entry)
		if err != nil {
			return nil, err
		}
		dict.add(normalized)
	}

	tracer().Debugf("dictionary built with %d words", len(dict.words))

	return dict, nil
}

func (dict *Dictionary) add(entry Entry) {
	if _, exists := dict.words[entry.Roman]; !exists {
		dict.prefix.Add(entry.Roman, nil)
	}
	dict.words[entry.Roman] = entry
}

// Overlay returns a new dictionary holding the words of dict with
// entries added on top. dict itself is not changed.
func (dict *Dictionary) Overlay(entries []Entry) (*Dictionary, error) {
	merged := make([]Entry, 0, dict.Len()+len(entries))
	merged = append(merged, dict.Entries()...)
	merged = append(merged, entries...)
	return NewDictionary(merged)
}

// NormalizeEntry checks an entry and returns it with the Roman form
// lower-cased and the Devanagari form in NFC
func NormalizeEntry(entry Entry) (Entry, error) {
	roman, err := normalizeRoman(entry.Roman)
	if err != nil {
		return Entry{}, err
	}

	devanagari := norm.NFC.String(strings.TrimSpace(entry.Devanagari))
	if devanagari == "" {
		return Entry{}, fmt.Errorf("no devanagari form for %q: %w", entry.Roman, ErrInvalidEntry)
	}
	for _, r := range devanagari {
		if !isAllowedValueRune(r) {
			return Entry{}, fmt.Errorf("devanagari form %q of %q has %q: %w", devanagari, entry.Roman, r, ErrInvalidEntry)
		}
	}

	return Entry{roman, devanagari, entry.Class}, nil
}

func normalizeRoman(word string) (string, error) {
	roman := strings.ToLower(strings.TrimSpace(word))
	if roman == "" {
		return "", ErrEmptyWord
	}
	for _, r := range roman {
		if !isWordRune(r) {
			return "", fmt.Errorf("roman form %q has %q: %w", word, r, ErrInvalidEntry)
		}
	}
	return roman, nil
}

// Devanagari block, digits, ASCII letters for acronyms and punctuation
func isAllowedValueRune(r rune) bool {
	switch {
	case r >= 0x0900 && r <= 0x097F:
		return true
	case r == '\u200c' || r == '\u200d':
		return true
	case r < unicode.MaxASCII:
		return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsPunct(r)
	}
	return false
}

// LookupExact finds the fixed form of a whole word, ignoring case
func (dict *Dictionary) LookupExact(word string) (string, bool) {
	if dict == nil {
		return "", false
	}
	entry, ok := dict.words[strings.ToLower(word)]
	return entry.Devanagari, ok
}

// Class of a word, ClassNone if it's not in the dictionary
func (dict *Dictionary) Class(word string) WordClass {
	if dict == nil {
		return ClassNone
	}
	return dict.words[strings.ToLower(word)].Class
}

// Lookup returns the whole entry of a word
func (dict *Dictionary) Lookup(word string) (Entry, bool) {
	if dict == nil {
		return Entry{}, false
	}
	entry, ok := dict.words[strings.ToLower(word)]
	return entry, ok
}

// Len is the number of words
func (dict *Dictionary) Len() int {
	if dict == nil {
		return 0
	}
	return len(dict.words)
}

// Entries returns every entry sorted by Roman form
func (dict *Dictionary) Entries() []Entry {
	if dict == nil {
		return nil
	}

	entries := make([]Entry, 0, len(dict.words))
	for _, entry := range dict.words {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Roman < entries[j].Roman
	})
	return entries
}

// Complete returns up to limit entries whose Roman form starts with
// prefix, shortest first. limit <= 0 means no limit.
func (dict *Dictionary) Complete(prefix string, limit int) []Entry {
	if dict == nil {
		return nil
	}

	prefix = strings.ToLower(prefix)
	if prefix == "" {
		return nil
	}

	keys := dict.prefix.PrefixSearch(prefix)
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) < len(keys[j])
		}
		return keys[i] < keys[j]
	})

	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	results := make([]Entry, 0, len(keys))
	for _, key := range keys {
		results = append(results, dict.words[key])
	}
	return results
}
