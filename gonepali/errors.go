package gonepali

import "errors"

var (
	// ErrInvalidEntry is returned for dictionary entries that are malformed
	// or carry characters outside Devanagari, digits and punctuation
	ErrInvalidEntry = errors.New("invalid dictionary entry")

	// ErrEmptyWord is returned when a Roman form is empty
	ErrEmptyWord = errors.New("empty word")

	// ErrNotFound is returned when a word is not in the dictionary store
	ErrNotFound = errors.New("word not found")
)
