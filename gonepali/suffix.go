package gonepali

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// SuffixEntry is a morpheme that attaches to the end of a stem
type SuffixEntry struct {
	Roman      string
	Devanagari string
	Mode       AttachMode
	Class      WordClass
}

// Shortest stem a suffix may be split from, in runes
const minStemLength = 2

var suffixTable = []SuffixEntry{
	// Postpositions and the plural marker. Written straight after the
	// stem, no sandhi: घरको, not घर्को
	{"harulai", "हरूलाई", AttachDirect, ClassPostposition},
	{"haruko", "हरूको", AttachDirect, ClassPostposition},
	{"haruma", "हरूमा", AttachDirect, ClassPostposition},
	{"harule", "हरूले", AttachDirect, ClassPostposition},
	{"haru", "हरू", AttachDirect, ClassPostposition},
	{"sangai", "सँगै", AttachDirect, ClassPostposition},
	{"sanga", "सँग", AttachDirect, ClassPostposition},
	{"bhanda", "भन्दा", AttachDirect, ClassPostposition},
	{"dekhi", "देखि", AttachDirect, ClassPostposition},
	{"bata", "बाट", AttachDirect, ClassPostposition},
	{"lai", "लाई", AttachDirect, ClassPostposition},
	{"le", "ले", AttachDirect, ClassPostposition},
	{"ko", "को", AttachDirect, ClassPostposition},
	{"ka", "का", AttachDirect, ClassPostposition},
	{"ma", "मा", AttachDirect, ClassPostposition},

	// Verb endings cluster with a bare final consonant: गर + छ = गर्छ.
	// They end a clause, so a word carrying one is a copula too.
	{"chhainan", "छैनन्", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"chhaina", "छैन", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"chhan", "छन्", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"chhau", "छौ", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"chhin", "छिन्", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"chhu", "छु", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"chha", "छ", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"thiyo", "थियो", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"thiye", "थिए", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"thyo", "थ्यो", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"thye", "थे", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"thin", "थिन्", AttachConsonantInitial, ClassCopula | ClassVerbEnding},
	{"thii", "थी", AttachConsonantInitial, ClassCopula | ClassVerbEnding},

	// Participles. The leading vowel becomes a matra: गर + एको = गरेको
	{"eko", "एको", AttachVowelInitial, ClassInflection},
	{"eki", "एकी", AttachVowelInitial, ClassInflection},
	{"eka", "एका", AttachVowelInitial, ClassInflection},
	{"era", "एर", AttachVowelInitial, ClassInflection},
}

var suffixByRoman = map[string]SuffixEntry{}

func init() {
	// Longest first, the scan takes the first suffix that fits
	sort.SliceStable(suffixTable, func(i, j int) bool {
		return len(suffixTable[i].Roman) > len(suffixTable[j].Roman)
	})

	for _, suffix := range suffixTable {
		suffixByRoman[suffix.Roman] = suffix
	}
}

// Suffixes returns the suffix table, longest Roman form first
func Suffixes() []SuffixEntry {
	out := make([]SuffixEntry, len(suffixTable))
	copy(out, suffixTable)
	return out
}

func lookupSuffix(roman string) (SuffixEntry, bool) {
	suffix, ok := suffixByRoman[strings.ToLower(roman)]
	return suffix, ok
}

// resolveWithSuffix splits a word the dictionary doesn't know into stem
// and a known suffix. The stem comes from the dictionary when it is
// there, else from the phonetic rules. The class is the suffix's.
func (e *Engine) resolveWithSuffix(word string) (string, WordClass, bool) {
	lower := strings.ToLower(word)

	for _, suffix := range suffixTable {
		if !strings.HasSuffix(lower, suffix.Roman) {
			continue
		}

		stem := lower[:len(lower)-len(suffix.Roman)]
		if utf8.RuneCountInString(stem) < minStemLength {
			continue
		}

		stemText, ok := e.dict.LookupExact(stem)
		if !ok {
			stemText = correctFinalVowel(stem, RenderPhonetic(stem))
		}

		result := fuseSuffix(stem, stemText, suffix)

		tracer().Debugf("suffix %q => %q + %q (%s) => %q", word, stem, suffix.Roman, suffix.Mode, result)

		return result, suffix.Class, true
	}

	return "", ClassNone, false
}

// fuseSuffix attaches a suffix to an already rendered stem.
// stemRoman is the Roman text of the stem's last word.
func fuseSuffix(stemRoman string, stemText string, suffix SuffixEntry) string {
	switch suffix.Mode {
	case AttachConsonantInitial:
		stemText = denasalizeStem(stemRoman, stemText)
		if endsWithBareConsonant(stemText) {
			return stemText + HALANT + suffix.Devanagari
		}
		return stemText + suffix.Devanagari

	case AttachVowelInitial:
		// A stem written with a final halant takes the matra on that consonant
		stemText = removeLastHalant(stemText)
		if endsWithBareConsonant(stemText) {
			first, size := getFirstCharacter(suffix.Devanagari)
			if matra, ok := independentToMatra[first]; ok {
				return stemText + matra + suffix.Devanagari[size:]
			}
		}
		return stemText + suffix.Devanagari
	}

	return stemText + suffix.Devanagari
}

// A stem-final "n" is only nasal at the end of a word. Before a
// consonant-initial ending it is the consonant again: jaan + chha = जान्छ
func denasalizeStem(stemRoman string, stemText string) string {
	if !strings.HasSuffix(strings.ToLower(stemRoman), "n") {
		return stemText
	}
	last, size := getLastCharacter(stemText)
	if last != CHANDRABINDU {
		return stemText
	}
	return stemText[:len(stemText)-size] + "न"
}
