package gonepali

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()
	engine, err := New(opts...)
	require.NoError(t, err)
	return engine
}

func TestSuffixTableLongestFirst(t *testing.T) {
	suffixes := Suffixes()
	for i := 1; i < len(suffixes); i++ {
		assert.GreaterOrEqual(t, len(suffixes[i-1].Roman), len(suffixes[i].Roman))
	}
}

func TestSuffixTableCoversVerbEndings(t *testing.T) {
	dict, err := DefaultDictionary()
	require.NoError(t, err)

	// A verb ending typed as its own word joins through the suffix table
	for _, entry := range dict.Entries() {
		if !entry.Class.Has(ClassVerbEnding) {
			continue
		}
		suffix, ok := lookupSuffix(entry.Roman)
		if assert.True(t, ok, entry.Roman) {
			assert.Equal(t, entry.Devanagari, suffix.Devanagari, entry.Roman)
		}
	}
}

func TestResolveWithSuffix(t *testing.T) {
	engine := newTestEngine(t)

	cases := map[string]string{
		"gharma":      "घरमा",
		"gharko":      "घरको",
		"Nepalma":     "नेपालमा",
		"gharharuma":  "घरहरूमा",
		"tapaile":     "तपाईंले",
		"kitaablai":   "किताबलाई",
		"garchha":     "गर्छ",
		"garchhu":     "गर्छु",
		"jaanchha":    "जान्छ",
		"gareko":      "गरेको",
		"bhagawaneko": "भगवानेको",
	}

	for input, expected := range cases {
		got, _, ok := engine.resolveWithSuffix(input)
		assert.True(t, ok, input)
		assert.Equal(t, expected, got, input)
	}
}

func TestResolveWithSuffixClass(t *testing.T) {
	engine := newTestEngine(t)

	_, class, ok := engine.resolveWithSuffix("garchhan")
	assert.True(t, ok)
	assert.True(t, class.Has(ClassCopula|ClassVerbEnding))

	_, class, ok = engine.resolveWithSuffix("gharko")
	assert.True(t, ok)
	assert.Equal(t, ClassPostposition, class)

	_, class, ok = engine.resolveWithSuffix("gareko")
	assert.True(t, ok)
	assert.Equal(t, ClassInflection, class)
}

func TestResolveWithSuffixNeedsStem(t *testing.T) {
	engine := newTestEngine(t)

	// "ko" and "le" would leave a one letter stem
	for _, word := range []string{"ko", "ale", "ghar", "namaste"} {
		_, _, ok := engine.resolveWithSuffix(word)
		assert.False(t, ok, word)
	}
}

func TestFuseSuffix(t *testing.T) {
	chha, _ := lookupSuffix("chha")
	eko, _ := lookupSuffix("eko")
	ko, _ := lookupSuffix("ko")

	// Direct never adds a halant
	assert.Equal(t, "घरको", fuseSuffix("ghar", "घर", ko))

	// Consonant-initial clusters a bare consonant only
	assert.Equal(t, "गर्छ", fuseSuffix("gar", "गर", chha))
	assert.Equal(t, "जानेछ", fuseSuffix("jaane", "जाने", chha))
	assert.Equal(t, "भगवान्छ", fuseSuffix("bhagawan", "भगवान्", chha))

	// Vowel-initial turns the vowel into a matra after a bare consonant
	assert.Equal(t, "गरेको", fuseSuffix("gar", "गर", eko))
	assert.Equal(t, "खाएको", fuseSuffix("khaa", "खा", eko))
}

func TestDenasalizeStem(t *testing.T) {
	assert.Equal(t, "जान", denasalizeStem("jaan", "जाँ"))
	assert.Equal(t, "गाउँ", denasalizeStem("gaau", "गाउँ"))
	assert.Equal(t, "घर", denasalizeStem("ghar", "घर"))
}
