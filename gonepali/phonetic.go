package gonepali

/**
 * gonepali - A Roman to Devanagari transliteration library for Nepali
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"strings"
	"unicode"
)

// Final "n" after these vowels is the nasalized ending (yahaan -> यहाँ, gaaun -> गाउँ)
var nasalFinalVowels = []string{"aa", "aau"}

// Endings whose final "i" stays short even in content words (laagi -> लागि, pachhi -> पछि)
var shortFinalIEndings = []string{"agi", "chi", "hhi"}

// RenderPhonetic converts one Roman word into Devanagari with the pattern
// tables alone. It is total: digits become Devanagari digits and anything
// the tables don't know is copied as is.
func RenderPhonetic(word string) string {
	input := []rune(word)

	var result strings.Builder
	result.Grow(len(word) * 3)

	pos := 0
	for pos < len(input) {
		char := input[pos]

		if consonant, length, ok := matchConsonant(input, pos); ok {
			if consonant.Pattern == "n" && shouldNasalize(input, pos) {
				result.WriteString(CHANDRABINDU)
				pos++
				continue
			}

			result.WriteString(consonant.Value1)
			next := pos + length

			if vowel, vowelLength, ok := matchVowel(input, next); ok {
				result.WriteString(vowelSign(input, next, vowel, vowelLength))
				pos = next + vowelLength
				continue
			}

			if _, _, ok := matchConsonant(input, next); ok {
				result.WriteString(HALANT)
			}
			// A word-final consonant keeps its inherent vowel, no halant

			pos = next
			continue
		}

		if vowel, length, ok := matchVowel(input, pos); ok {
			result.WriteString(vowel.Value1)
			pos += length
			continue
		}

		if digit, ok := getDigit(char); ok {
			result.WriteString(digit)
		} else {
			result.WriteRune(char)
		}
		pos++
	}

	tracer().Debugf("phonetic %q => %q", word, result.String())

	return result.String()
}

// vowelSign is the matra to write after a consonant for the vowel at pos
func vowelSign(input []rune, pos int, vowel Symbol, length int) string {
	switch vowel.Pattern {
	case "a":
		// Inherent vowel
		return ""
	case "i":
		if pos+length < len(input) {
			return vowel.Value2
		}
		// Final short i: content words take the long form,
		// two letter particles (ki, ni, ti) keep the short one
		if len(input) <= 2 {
			return "ि"
		}
		return "ी"
	}
	return vowel.Value2
}

// shouldNasalize decides if the single "n" at pos is a chandrabindu on
// the preceding vowel rather than the consonant न.
// This is approximate: it only guarantees the common endings.
func shouldNasalize(input []rune, pos int) bool {
	if pos == 0 || pos >= len(input) || unicode.ToLower(input[pos]) != 'n' {
		return false
	}

	if !isVowelLetter(input[pos-1]) {
		return false
	}

	if pos == len(input)-1 {
		before := strings.ToLower(string(input[:pos]))
		for _, ending := range nasalFinalVowels {
			if strings.HasSuffix(before, ending) {
				return true
			}
		}
		return false
	}

	next := unicode.ToLower(input[pos+1])
	// n before these forms a cluster (ng, ny, nn) or a conjunct
	if strings.ContainsRune("ngykh", next) {
		return false
	}

	return isConsonantLetter(next)
}

// correctFinalVowel fixes the long final ी the phonetic default gives
// to words that are written with a short ि
func correctFinalVowel(word string, rendered string) string {
	lower := strings.ToLower(word)
	last, size := getLastCharacter(rendered)
	if last != "ी" {
		return rendered
	}

	for _, ending := range shortFinalIEndings {
		if strings.HasSuffix(lower, ending) {
			return rendered[:len(rendered)-size] + "ि"
		}
	}
	return rendered
}
