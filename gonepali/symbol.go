package gonepali

/**
 * gonepali - A Roman to Devanagari transliteration library for Nepali
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbol is one row of a pattern table
type Symbol struct {
	Type    int
	Pattern string
	Value1  string // Base glyph of a consonant, independent form of a vowel
	Value2  string // Matra of a vowel. Empty for the inherent vowel
}

// Consonants, longest pattern first so that a greedy scan picks the longest match.
// Double letters are explicit geminate conjuncts.
var consonantTable = []Symbol{
	{GONEPALI_SYMBOL_CONSONANT, "nchh", "न्छ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "cchh", "च्छ", ""},

	{GONEPALI_SYMBOL_CONSONANT, "chh", "छ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "ksh", "क्ष", ""},
	{GONEPALI_SYMBOL_CONSONANT, "gny", "ज्ञ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "jny", "ज्ञ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "shr", "श्र", ""},
	{GONEPALI_SYMBOL_CONSONANT, "shw", "श्व", ""},

	{GONEPALI_SYMBOL_CONSONANT, "kh", "ख", ""},
	{GONEPALI_SYMBOL_CONSONANT, "gh", "घ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "ch", "च", ""},
	{GONEPALI_SYMBOL_CONSONANT, "jh", "झ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "th", "थ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "dh", "ध", ""},
	{GONEPALI_SYMBOL_CONSONANT, "ph", "फ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "bh", "भ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "sh", "श", ""},
	{GONEPALI_SYMBOL_CONSONANT, "ng", "ङ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "ny", "ञ", ""},

	{GONEPALI_SYMBOL_CONSONANT, "kk", "क्क", ""},
	{GONEPALI_SYMBOL_CONSONANT, "gg", "ग्ग", ""},
	{GONEPALI_SYMBOL_CONSONANT, "cc", "च्च", ""},
	{GONEPALI_SYMBOL_CONSONANT, "jj", "ज्ज", ""},
	{GONEPALI_SYMBOL_CONSONANT, "tt", "त्त", ""},
	{GONEPALI_SYMBOL_CONSONANT, "dd", "द्द", ""},
	{GONEPALI_SYMBOL_CONSONANT, "nn", "न्न", ""},
	{GONEPALI_SYMBOL_CONSONANT, "pp", "प्प", ""},
	{GONEPALI_SYMBOL_CONSONANT, "bb", "ब्ब", ""},
	{GONEPALI_SYMBOL_CONSONANT, "mm", "म्म", ""},
	{GONEPALI_SYMBOL_CONSONANT, "yy", "य्य", ""},
	{GONEPALI_SYMBOL_CONSONANT, "rr", "र्र", ""},
	{GONEPALI_SYMBOL_CONSONANT, "ll", "ल्ल", ""},
	{GONEPALI_SYMBOL_CONSONANT, "ss", "स्स", ""},

	{GONEPALI_SYMBOL_CONSONANT, "k", "क", ""},
	{GONEPALI_SYMBOL_CONSONANT, "g", "ग", ""},
	{GONEPALI_SYMBOL_CONSONANT, "c", "च", ""},
	{GONEPALI_SYMBOL_CONSONANT, "j", "ज", ""},
	{GONEPALI_SYMBOL_CONSONANT, "t", "त", ""},
	{GONEPALI_SYMBOL_CONSONANT, "d", "द", ""},
	{GONEPALI_SYMBOL_CONSONANT, "n", "न", ""},
	{GONEPALI_SYMBOL_CONSONANT, "p", "प", ""},
	{GONEPALI_SYMBOL_CONSONANT, "b", "ब", ""},
	{GONEPALI_SYMBOL_CONSONANT, "m", "म", ""},
	{GONEPALI_SYMBOL_CONSONANT, "y", "य", ""},
	{GONEPALI_SYMBOL_CONSONANT, "r", "र", ""},
	{GONEPALI_SYMBOL_CONSONANT, "l", "ल", ""},
	{GONEPALI_SYMBOL_CONSONANT, "w", "व", ""},
	{GONEPALI_SYMBOL_CONSONANT, "v", "व", ""},
	{GONEPALI_SYMBOL_CONSONANT, "s", "स", ""},
	{GONEPALI_SYMBOL_CONSONANT, "h", "ह", ""},
	{GONEPALI_SYMBOL_CONSONANT, "q", "क", ""},
	{GONEPALI_SYMBOL_CONSONANT, "x", "छ", ""},
	{GONEPALI_SYMBOL_CONSONANT, "z", "ज", ""},
	{GONEPALI_SYMBOL_CONSONANT, "f", "फ", ""},
}

// Vowels: pattern, independent form, matra
var vowelTable = []Symbol{
	{GONEPALI_SYMBOL_VOWEL, "aai", "आइ", "ाइ"},
	{GONEPALI_SYMBOL_VOWEL, "aau", "आउ", "ाउ"},
	{GONEPALI_SYMBOL_VOWEL, "aae", "आए", "ाए"},
	{GONEPALI_SYMBOL_VOWEL, "aao", "आओ", "ाओ"},

	{GONEPALI_SYMBOL_VOWEL, "aa", "आ", "ा"},
	{GONEPALI_SYMBOL_VOWEL, "ai", "ऐ", "ै"},
	{GONEPALI_SYMBOL_VOWEL, "au", "औ", "ौ"},
	{GONEPALI_SYMBOL_VOWEL, "ou", "औ", "ौ"},
	{GONEPALI_SYMBOL_VOWEL, "ee", "ई", "ी"},
	{GONEPALI_SYMBOL_VOWEL, "ii", "ई", "ी"},
	{GONEPALI_SYMBOL_VOWEL, "oo", "ऊ", "ू"},
	{GONEPALI_SYMBOL_VOWEL, "uu", "ऊ", "ू"},
	{GONEPALI_SYMBOL_VOWEL, "ri", "ऋ", "ृ"}, // Sanskrit loanwords, only reachable after a consonant

	{GONEPALI_SYMBOL_VOWEL, "a", "अ", ""},
	{GONEPALI_SYMBOL_VOWEL, "i", "इ", "ि"},
	{GONEPALI_SYMBOL_VOWEL, "u", "उ", "ु"},
	{GONEPALI_SYMBOL_VOWEL, "e", "ए", "े"},
	{GONEPALI_SYMBOL_VOWEL, "o", "ओ", "ो"},
}

var punctuationMap = map[rune]string{
	'.': DANDA,
	',': ",",
	'?': "?",
	'!': "!",
	';': ";",
	':': ":",
	'-': "-",
	'(': "(",
	')': ")",
	'[': "[",
	']': "]",
	'"': "\"",
	'\'': "'",
	'…': "...",
}

// Independent vowel to its matra, for vowel-initial suffixes
var independentToMatra = map[string]string{}

func init() {
	for _, table := range [][]Symbol{consonantTable, vowelTable} {
		if err := validateTable(table); err != nil {
			panic(err)
		}
	}

	for _, symbol := range vowelTable {
		if symbol.Value2 == "" {
			continue
		}
		// First rune only, multi-glyph vowels like ाइ start with a single-glyph vowel
		indep, _ := getFirstCharacter(symbol.Value1)
		matra, _ := getFirstCharacter(symbol.Value2)
		if _, ok := independentToMatra[indep]; !ok {
			independentToMatra[indep] = matra
		}
	}
}

// validateTable checks that no pattern is shadowed by an earlier prefix of it
func validateTable(table []Symbol) error {
	for i, shorter := range table {
		for j := i + 1; j < len(table); j++ {
			longer := table[j]
			if len(longer.Pattern) > len(shorter.Pattern) && strings.HasPrefix(longer.Pattern, shorter.Pattern) {
				return fmt.Errorf("pattern %q at %d shadows %q at %d", shorter.Pattern, i, longer.Pattern, j)
			}
		}
	}
	return nil
}

func matchTable(table []Symbol, input []rune, pos int) (Symbol, int, bool) {
	if pos < 0 || pos >= len(input) {
		return Symbol{}, 0, false
	}

	for _, symbol := range table {
		length := len(symbol.Pattern)
		if pos+length > len(input) {
			continue
		}

		matched := true
		for k := 0; k < length; k++ {
			if unicode.ToLower(input[pos+k]) != rune(symbol.Pattern[k]) {
				matched = false
				break
			}
		}
		if matched {
			return symbol, length, true
		}
	}

	return Symbol{}, 0, false
}

// matchConsonant finds the longest consonant pattern starting at pos
func matchConsonant(input []rune, pos int) (Symbol, int, bool) {
	return matchTable(consonantTable, input, pos)
}

// matchVowel finds the longest vowel pattern starting at pos
func matchVowel(input []rune, pos int) (Symbol, int, bool) {
	return matchTable(vowelTable, input, pos)
}

// MatchConsonant is matchConsonant on a string. Returns the pattern,
// the base glyph and the matched length in runes, or ok false
func MatchConsonant(text string, pos int) (pattern string, base string, length int, ok bool) {
	symbol, length, ok := matchConsonant([]rune(text), pos)
	return symbol.Pattern, symbol.Value1, length, ok
}

// MatchVowel is matchVowel on a string
func MatchVowel(text string, pos int) (pattern string, independent string, matra string, length int, ok bool) {
	symbol, length, ok := matchVowel([]rune(text), pos)
	return symbol.Pattern, symbol.Value1, symbol.Value2, length, ok
}

// Devanagari digit for an ASCII digit
func getDigit(r rune) (string, bool) {
	if r < '0' || r > '9' {
		return "", false
	}
	return string('०' + (r - '0')), true
}

func mapPunctuation(r rune) string {
	if value, ok := punctuationMap[r]; ok {
		return value
	}
	return string(r)
}

// mapSeparator maps a separator token. Anything that isn't one known
// character, such as a byte that isn't UTF-8, is written as it came.
func mapSeparator(text string) string {
	r, size := utf8.DecodeRuneInString(text)
	if size != len(text) || r == utf8.RuneError {
		return text
	}
	return mapPunctuation(r)
}

func isVowelLetter(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}

func isConsonantLetter(r rune) bool {
	r = unicode.ToLower(r)
	return r >= 'a' && r <= 'z' && !isVowelLetter(r)
}

// Bare consonant glyph: a Devanagari consonant carrying only its inherent vowel
func isDevanagariConsonant(r rune) bool {
	return (r >= '\u0915' && r <= '\u0939') || (r >= '\u0958' && r <= '\u095F')
}
