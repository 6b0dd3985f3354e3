package gonepali

import (
	"unicode"
	"unicode/utf8"
)

// Token is one span of the input text
type Token struct {
	Kind int
	Text string
}

func (t Token) String() string {
	switch t.Kind {
	case TokenWord:
		return "word(" + t.Text + ")"
	case TokenSpace:
		return "space(" + t.Text + ")"
	default:
		return "sep(" + t.Text + ")"
	}
}

func isWordRune(r rune) bool {
	// Marks are included so that matras and halants keep
	// an already-Devanagari word in one piece
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) || r == '\'' || r == '’'
}

// Tokenize splits text into words, whitespace runs and single separator characters.
// It never fails and the concatenation of all token texts is the input,
// byte for byte, even when the input isn't valid UTF-8.
func Tokenize(text string) []Token {
	var (
		tokens []Token
		start  int
		kind   int
	)

	flush := func(end int) {
		if end > start {
			tokens = append(tokens, Token{kind, text[start:end]})
		}
		start = end
	}

	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])

		switch {
		case unicode.IsSpace(r):
			if kind != TokenSpace {
				flush(pos)
				kind = TokenSpace
			}
		case isWordRune(r):
			if kind != TokenWord {
				flush(pos)
				kind = TokenWord
			}
		default:
			flush(pos)
			kind = TokenSeparator
			flush(pos + size)
		}

		pos += size
	}
	flush(len(text))

	return tokens
}
