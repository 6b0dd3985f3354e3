package gonepali

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPhonetic(t *testing.T) {
	cases := map[string]string{
		"ghar":    "घर",
		"kitaab":  "किताब",
		"namaste": "नमस्ते",
		"garne":   "गर्ने",
		"jaane":   "जाने",
		"aamaa":   "आमा",
		"eko":     "एको",
		"nadi":    "नदी",
		"ki":      "कि",
		"KITAAB":  "किताब",
		"123":     "१२३",
		"":        "",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, RenderPhonetic(input), input)
	}
}

func TestRenderPhoneticNasalization(t *testing.T) {
	// Final n after the long vowel
	assert.Equal(t, "यहाँ", RenderPhonetic("yahaan"))
	assert.Equal(t, "गाउँ", RenderPhonetic("gaaun"))

	// Other final n stay consonants
	assert.Equal(t, "दिन", RenderPhonetic("din"))

	// Medial n before a consonant
	assert.Equal(t, "बाँस", RenderPhonetic("baans"))

	// n before g, y, k, h and another n is not nasal
	assert.Equal(t, "अन्कल", RenderPhonetic("ankal"))
}

func TestRenderPhoneticNoFinalHalant(t *testing.T) {
	assert.Equal(t, "रम", RenderPhonetic("ram"))
	assert.Equal(t, "राम", RenderPhonetic("raam"))
	assert.Equal(t, "गर्छ", RenderPhonetic("garchha"))
}

func TestRenderPhoneticGyCluster(t *testing.T) {
	// g before y is a plain cluster, ज्ञ is spelled gny or comes from the dictionary
	assert.Equal(t, "लाग्यो", RenderPhonetic("laagyo"))
	assert.Equal(t, "भाग्यो", RenderPhonetic("bhaagyo"))
	assert.Equal(t, "लाग्ये", RenderPhonetic("laagye"))
	assert.Equal(t, "ज्ञानी", RenderPhonetic("gnyaani"))
}

func TestRenderPhoneticPassesUnknownRunes(t *testing.T) {
	assert.Equal(t, "घर", RenderPhonetic("घर"))
	assert.Equal(t, "न'", RenderPhonetic("na'"))
}

func TestCorrectFinalVowel(t *testing.T) {
	assert.Equal(t, "लागि", correctFinalVowel("laagi", RenderPhonetic("laagi")))
	assert.Equal(t, "पछि", correctFinalVowel("pachhi", RenderPhonetic("pachhi")))
	assert.Equal(t, "नदी", correctFinalVowel("nadi", RenderPhonetic("nadi")))
	assert.Equal(t, "घर", correctFinalVowel("ghar", "घर"))
}
