/*
Package gonepali converts Romanized Nepali into Devanagari.

There is no statistical model. Words are looked up in a curated exception
dictionary, split into stem and suffix (postpositions, verb endings) when
they aren't found, and otherwise spelled out by greedy longest-match over
fixed consonant and vowel pattern tables. Postpositions typed as separate
words ("ghar ma") are fused with the previous word ("घरमा"), and the
ambiguous "ma" is told apart as the pronoun म or the postposition मा by
looking at what comes before it.

	engine, err := gonepali.New()
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(engine.Transliterate("Ram ghar ma")) // राम घरमा

An Engine is safe for concurrent use. Its word cache only ever holds
renderings that don't depend on the surrounding words.

A user dictionary can be kept in a SQLite file (see DictStore) and layered
over the built-in one when the engine is made:

	store, err := gonepali.OpenDictStore(path, logger)
	...
	engine, err := gonepali.New(gonepali.WithEntrySource(store))

----------------------------------------------------------------------

gonepali - A Roman to Devanagari transliteration library for Nepali
Licensed under AGPL-3.0-only. See LICENSE.txt
*/
package gonepali

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'gonepali'
func tracer() tracing.Trace {
	return tracing.Select("gonepali")
}
