package gonepali

/**
 * gonepali - A Roman to Devanagari transliteration library for Nepali
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"fmt"
	"os"
	"path"
	"strings"
)

/* Devanagari signs */
const (
	HALANT       = "\u094D" // ्
	CHANDRABINDU = "\u0901" // ँ
	DANDA        = "\u0964" // ।
)

/* Type of symbols in the pattern tables */
const (
	GONEPALI_SYMBOL_CONSONANT = 1
	GONEPALI_SYMBOL_VOWEL     = 2
)

/* Type of tokens produced by Tokenize */
const (
	TokenWord      = 1 // Letters, digits, marks and apostrophes
	TokenSeparator = 2 // Any single other character
	TokenSpace     = 3 // Whitespace run, kept verbatim
)

// AttachMode governs sandhi at a stem/suffix boundary
type AttachMode int

const (
	// AttachDirect concatenates stem and suffix as they are
	AttachDirect AttachMode = iota
	// AttachConsonantInitial clusters a bare final consonant of the stem
	// with the suffix by inserting a halant
	AttachConsonantInitial
	// AttachVowelInitial turns the suffix's leading independent vowel
	// into a matra when the stem ends in a bare consonant
	AttachVowelInitial
)

func (mode AttachMode) String() string {
	switch mode {
	case AttachConsonantInitial:
		return "consonant-initial"
	case AttachVowelInitial:
		return "vowel-initial"
	default:
		return "direct"
	}
}

// WordClass is a small grammatical annotation carried by dictionary
// and suffix entries. A word can belong to more than one class.
type WordClass uint16

const (
	ClassPronoun WordClass = 1 << iota
	ClassConjunction
	ClassCopula
	ClassPostposition
	ClassVerbEnding
	ClassInterrogative
	ClassParticle
	ClassInflection

	ClassNone WordClass = 0
)

var wordClassNames = []struct {
	class WordClass
	name  string
}{
	{ClassPronoun, "pronoun"},
	{ClassConjunction, "conjunction"},
	{ClassCopula, "copula"},
	{ClassPostposition, "postposition"},
	{ClassVerbEnding, "verb-ending"},
	{ClassInterrogative, "interrogative"},
	{ClassParticle, "particle"},
	{ClassInflection, "inflection"},
}

// Has reports whether any of the given classes is set
func (c WordClass) Has(classes WordClass) bool {
	return c&classes != 0
}

func (c WordClass) String() string {
	var names []string
	for _, item := range wordClassNames {
		if c.Has(item.class) {
			names = append(names, item.name)
		}
	}
	return strings.Join(names, ",")
}

// ParseWordClass parses a comma separated class list like "copula,verb-ending".
// An empty string is ClassNone.
func ParseWordClass(s string) (WordClass, error) {
	var class WordClass

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" || part == "-" {
			continue
		}

		found := false
		for _, item := range wordClassNames {
			if item.name == part {
				class |= item.class
				found = true
				break
			}
		}
		if !found {
			return ClassNone, fmt.Errorf("unknown word class %q: %w", part, ErrInvalidEntry)
		}
	}

	return class, nil
}

// Words after which the next word never joins, and after which "ma" is the pronoun
const neverJoinClasses = ClassConjunction | ClassCopula | ClassInterrogative

// Words that can be typed as a separate word but attach to the previous one
const joinableClasses = ClassPostposition | ClassVerbEnding

// GONEPALI_DICT_DIR lookup directories for the user dictionary, by priority
var GONEPALI_DICT_DIR = [2]string{
	"dicts",
	"/usr/local/share/gonepali"}

func findUserDictionaryPath() string {
	if env := os.Getenv("GONEPALI_DICT"); env != "" {
		return env
	}

	home := os.Getenv("XDG_DATA_HOME")
	if home == "" {
		home = os.Getenv("HOME")
		return path.Join(home, ".local", "share", "gonepali", "ne.dict")
	}
	return path.Join(home, "gonepali", "ne.dict")
}

// FindDictionaryPath returns the first existing dictionary from
// GONEPALI_DICT_DIR, or the per-user location when none exists
func FindDictionaryPath() string {
	for _, loc := range GONEPALI_DICT_DIR {
		temp := path.Join(loc, "ne.dict")
		if fileExists(temp) {
			return temp
		}
	}
	return findUserDictionaryPath()
}
