package gonepali

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEntriesTSV(t *testing.T) {
	input := "# comment\n\nghar\tघर\nko\tको\tpostposition\r\nchha\tछ\tcopula, verb-ending\n"

	entries, err := ReadEntriesTSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, Entry{"ghar", "घर", ClassNone}, entries[0])
	assert.Equal(t, Entry{"ko", "को", ClassPostposition}, entries[1])
	assert.Equal(t, Entry{"chha", "छ", ClassCopula | ClassVerbEnding}, entries[2])
}

func TestReadEntriesTSVErrors(t *testing.T) {
	_, err := ReadEntriesTSV(strings.NewReader("ghar\n"))
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "line 1")

	_, err = ReadEntriesTSV(strings.NewReader("ghar\tघर\n\nko\tको\tadverb\n"))
	assert.ErrorIs(t, err, ErrInvalidEntry)
	assert.Contains(t, err.Error(), "line 3")
}

func TestWriteEntriesTSV(t *testing.T) {
	entries := []Entry{
		{"ghar", "घर", ClassNone},
		{"chha", "छ", ClassCopula | ClassVerbEnding},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntriesTSV(&buf, entries))
	assert.Equal(t, "ghar\tघर\nchha\tछ\tcopula,verb-ending\n", buf.String())

	back, err := ReadEntriesTSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, back)
}

func TestEntriesYAML(t *testing.T) {
	input := `entries:
  - roman: ghar
    devanagari: घर
  - roman: ko
    devanagari: को
    class: postposition
`
	entries, err := ReadEntriesYAML(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{"ghar", "घर", ClassNone},
		{"ko", "को", ClassPostposition},
	}, entries)

	var buf bytes.Buffer
	require.NoError(t, WriteEntriesYAML(&buf, entries))
	assert.Contains(t, buf.String(), "class: postposition")
	assert.NotContains(t, buf.String(), "class: \"\"")

	back, err := ReadEntriesYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, entries, back)
}

func TestReadEntriesYAMLErrors(t *testing.T) {
	entries, err := ReadEntriesYAML(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Empty(t, entries)

	_, err = ReadEntriesYAML(strings.NewReader("entries:\n  - roman: ko\n    class: noun\n"))
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestParseWordClass(t *testing.T) {
	class, err := ParseWordClass("")
	require.NoError(t, err)
	assert.Equal(t, ClassNone, class)

	class, err = ParseWordClass("Pronoun,particle")
	require.NoError(t, err)
	assert.True(t, class.Has(ClassPronoun))
	assert.True(t, class.Has(ClassParticle))
	assert.False(t, class.Has(ClassCopula))
	assert.Equal(t, "pronoun,particle", class.String())

	_, err = ParseWordClass("noun")
	assert.ErrorIs(t, err, ErrInvalidEntry)
}
