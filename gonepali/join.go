package gonepali

import "strings"

// Words whose rendering depends on the word before them.
// They are never looked up in the dictionary and never cached.
const (
	contextualMa  = "ma"
	contextualHun = "hun"
)

// renderUnit is one piece of output: a run of fused words, a
// whitespace run or a separator
type renderUnit struct {
	kind  int
	text  string
	words []string
}

// unitState is what the join rules need to know about the unit
// built so far
type unitState struct {
	last     string    // Last Roman word consumed, lower case
	roman    string    // All Roman words consumed, concatenated, lower case
	class    WordClass // Class of the last word consumed
	pronoun  bool      // The unit is the pronoun "ma"
	dictWord bool      // The rendering is a whole dictionary word
}

// resolveJoins walks the tokens once, rendering every word and fusing
// a word with the ones after it when they are separated by exactly
// one space and the join rules allow it
func (e *Engine) resolveJoins(tokens []Token) []renderUnit {
	units := make([]renderUnit, 0, len(tokens))

	var ctx joinContext
	ctx.reset()

	for i := 0; i < len(tokens); {
		token := tokens[i]

		switch token.Kind {
		case TokenSpace:
			units = append(units, renderUnit{kind: TokenSpace, text: token.Text})
			i++

		case TokenSeparator:
			units = append(units, renderUnit{kind: TokenSeparator, text: mapSeparator(token.Text)})
			ctx.reset()
			i++

		default:
			text, state := e.renderContextual(token.Text, &ctx)
			words := []string{token.Text}

			j := i + 1
			for j+1 < len(tokens) && isJoinGap(tokens[j]) && tokens[j+1].Kind == TokenWord {
				next := tokens[j+1].Text
				fused, nextState, ok := e.tryJoin(text, state, next)
				if !ok {
					break
				}

				tracer().Debugf("join %q + %q => %q", state.roman, next, fused)

				text, state = fused, nextState
				words = append(words, next)
				j += 2
			}

			units = append(units, renderUnit{kind: TokenWord, text: text, words: words})
			ctx.advance(state)
			i = j
		}
	}

	return units
}

// Only a single plain space can be joined across
func isJoinGap(token Token) bool {
	return token.Kind == TokenSpace && token.Text == " "
}

// joinContext is what the contextual words look back at
type joinContext struct {
	sentenceStart bool
	prev          *unitState
	subjectMa     bool // The pronoun "ma" appeared earlier in the sentence
}

// reset at the start of the text and after every separator
func (ctx *joinContext) reset() {
	ctx.sentenceStart = true
	ctx.prev = nil
	ctx.subjectMa = false
}

// pronounPosition is where "ma" is the pronoun: the start of a sentence,
// or after a word that nothing joins onto
func (ctx *joinContext) pronounPosition() bool {
	return ctx.sentenceStart || ctx.prev == nil || ctx.prev.class.Has(neverJoinClasses)
}

func (ctx *joinContext) advance(state unitState) {
	ctx.sentenceStart = false
	ctx.prev = &state
	if state.pronoun {
		ctx.subjectMa = true
	}
}

// renderContextual renders the first word of a unit
func (e *Engine) renderContextual(word string, ctx *joinContext) (string, unitState) {
	lower := strings.ToLower(word)
	state := unitState{last: lower, roman: lower}

	switch lower {
	case contextualMa:
		if ctx.pronounPosition() {
			state.class = ClassPronoun
			state.pronoun = true
			return "म", state
		}
		state.class = ClassPostposition
		return "मा", state

	case contextualHun:
		// "am" with the pronoun as subject or where the pronoun could
		// stand, else "are"
		state.class = ClassCopula
		if ctx.pronounPosition() || ctx.subjectMa {
			return "हुँ", state
		}
		return "हुन्", state
	}

	entry, ok := e.dict.Lookup(lower)
	if ok {
		state.class = entry.Class
		state.dictWord = true
		return entry.Devanagari, state
	}

	text, class := e.renderWord(word)
	state.class = class
	return text, state
}

// tryJoin decides if next fuses onto the unit rendered as text
func (e *Engine) tryJoin(text string, state unitState, next string) (string, unitState, bool) {
	nextLower := strings.ToLower(next)

	joined := unitState{
		last:  nextLower,
		roman: state.roman + nextLower,
	}

	// A known compound wins over everything else
	if entry, ok := e.dict.Lookup(joined.roman); ok {
		joined.class = entry.Class
		joined.dictWord = true
		return entry.Devanagari, joined, true
	}

	// The pronoun only fuses into a known compound (malai, maile).
	// Conjunctions, copulas and question words stand alone,
	// and after them "ma" is the pronoun.
	if state.pronoun || state.class.Has(neverJoinClasses) {
		return "", state, false
	}

	if nextLower == contextualMa {
		joined.class = ClassPostposition
		return text + "मा", joined, true
	}

	entry, ok := e.dict.Lookup(nextLower)
	if !ok || !entry.Class.Has(joinableClasses) {
		return "", state, false
	}
	joined.class = entry.Class

	if entry.Class.Has(ClassVerbEnding) {
		// Verb endings only close an open verb stem, never a known word
		suffix, ok := lookupSuffix(nextLower)
		if !ok || state.dictWord {
			return "", state, false
		}
		// A typed space ends the word, so a nasal ending stays nasal
		if !endsWithBareConsonant(text) {
			return "", state, false
		}
		return fuseSuffix(state.last, text, suffix), joined, true
	}

	return text + entry.Devanagari, joined, true
}
