package gonepali

import (
	"os"
	"unicode/utf8"
)

func getFirstCharacter(input string) (string, int) {
	r, size := utf8.DecodeRuneInString(input)
	if r == utf8.RuneError && (size == 0 || size == 1) {
		size = 0
	}
	return input[0:size], size
}

func getLastCharacter(input string) (string, int) {
	r, size := utf8.DecodeLastRuneInString(input)
	if r == utf8.RuneError && (size == 0 || size == 1) {
		size = 0
	}
	return input[len(input)-size:], size
}

// endsWithBareConsonant is true when the last glyph is a consonant with
// no matra, halant or nasalization sign after it
func endsWithBareConsonant(input string) bool {
	r, _ := utf8.DecodeLastRuneInString(input)
	return isDevanagariConsonant(r)
}

func removeLastHalant(input string) string {
	char, size := getLastCharacter(input)
	if char == HALANT {
		return input[0 : len(input)-size]
	}
	return input
}

func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
