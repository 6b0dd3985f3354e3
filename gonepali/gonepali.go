package gonepali

/**
 * gonepali - A Roman to Devanagari transliteration library for Nepali
 * Licensed under AGPL-3.0-only. See LICENSE.txt
 */

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

// EntrySource supplies extra dictionary entries when an engine is made.
// DictStore is one.
type EntrySource interface {
	Entries(ctx context.Context) ([]Entry, error)
}

// Engine transliterates text. It is safe for concurrent use.
type Engine struct {
	dict    *Dictionary
	cache   *wordCache
	log     *zap.Logger
	workers int
}

type engineConfig struct {
	dict        *Dictionary
	sources     []EntrySource
	cache       bool
	log         *zap.Logger
	workers     int
	loadTimeout time.Duration
}

// Option configures an Engine
type Option func(*engineConfig)

// WithDictionary replaces the built-in exception dictionary
func WithDictionary(dict *Dictionary) Option {
	return func(c *engineConfig) {
		c.dict = dict
	}
}

// WithEntrySource layers the entries of src over the dictionary.
// Later sources win over earlier ones.
func WithEntrySource(src EntrySource) Option {
	return func(c *engineConfig) {
		c.sources = append(c.sources, src)
	}
}

// WithCache turns the word cache on or off. It is on by default.
func WithCache(enabled bool) Option {
	return func(c *engineConfig) {
		c.cache = enabled
	}
}

// WithLogger sets the operational logger. The default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(c *engineConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithWorkers sets how many texts TransliterateBatch works on at once.
// n <= 0 means one per CPU.
func WithWorkers(n int) Option {
	return func(c *engineConfig) {
		c.workers = n
	}
}

// New makes an engine. Without options it uses the built-in dictionary
// and a word cache.
func New(opts ...Option) (*Engine, error) {
	cfg := engineConfig{
		cache:       true,
		log:         zap.NewNop(),
		loadTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	dict := cfg.dict
	if dict == nil {
		var err error
		dict, err = DefaultDictionary()
		if err != nil {
			return nil, err
		}
	}

	if len(cfg.sources) > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.loadTimeout)
		defer cancel()

		var extra []Entry
		for _, src := range cfg.sources {
			entries, err := src.Entries(ctx)
			if err != nil {
				return nil, fmt.Errorf("load entries: %w", err)
			}
			extra = append(extra, entries...)
		}

		var err error
		dict, err = dict.Overlay(extra)
		if err != nil {
			return nil, fmt.Errorf("load entries: %w", err)
		}
		cfg.log.Debug("user entries loaded", zap.Int("entries", len(extra)))
	}

	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	engine := &Engine{
		dict:    dict,
		log:     cfg.log,
		workers: workers,
	}
	if cfg.cache {
		engine.cache = newWordCache()
	}

	cfg.log.Debug("engine ready",
		zap.Int("words", dict.Len()),
		zap.Bool("cache", cfg.cache),
		zap.Int("workers", workers))

	return engine, nil
}

// Dictionary the engine looks words up in
func (e *Engine) Dictionary() *Dictionary {
	return e.dict
}

// Transliterate converts Romanized Nepali text into Devanagari.
// Whitespace is kept as it is, separators go through the punctuation
// map, and text that is already Devanagari passes through unchanged.
func (e *Engine) Transliterate(text string) string {
	if text == "" {
		return ""
	}

	units := e.resolveJoins(Tokenize(text))

	var result strings.Builder
	result.Grow(len(text) * 3)
	for _, unit := range units {
		result.WriteString(unit.text)
	}

	return result.String()
}

// TransliterateWord converts one word without looking at any context.
// "ma" comes out as the postposition and "hun" as हुन्.
func (e *Engine) TransliterateWord(word string) string {
	lower := strings.ToLower(word)
	switch lower {
	case contextualMa:
		return "मा"
	case contextualHun:
		return "हुन्"
	}
	text, _ := e.renderWord(word)
	return text
}

// renderWord renders a word that doesn't depend on its neighbours:
// dictionary, then stem and suffix, then the phonetic rules.
// The class is the dictionary word's, or the suffix's for a split word.
func (e *Engine) renderWord(word string) (string, WordClass) {
	if e.cache != nil {
		if cached, ok := e.cache.get(word); ok {
			return cached.text, cached.class
		}
	}

	var rendered cachedWord
	if entry, ok := e.dict.Lookup(word); ok {
		rendered = cachedWord{entry.Devanagari, entry.Class}
	} else if text, class, ok := e.resolveWithSuffix(word); ok {
		rendered = cachedWord{text, class}
	} else {
		rendered.text = correctFinalVowel(word, RenderPhonetic(word))
	}

	if e.cache != nil {
		e.cache.put(word, rendered)
	}

	return rendered.text, rendered.class
}

// CacheLen is the number of words in the cache
func (e *Engine) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.len()
}
