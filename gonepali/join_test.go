package gonepali

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinPostpositions(t *testing.T) {
	engine := newTestEngine(t)

	cases := map[string]string{
		"Ram ghar ma":      "राम घरमा",
		"ghar ko":          "घरको",
		"ghar haru ma":     "घरहरूमा",
		"uni haru lai":     "उनीहरूलाई",
		"tapai le":         "तपाईंले",
		"kitaab bata":      "किताबबाट",
		"sabai bhanda":     "सबैभन्दा",
		"Nepal ko sarkaar": "नेपालको सरकार",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, engine.Transliterate(input), input)
	}
}

func TestJoinMaPronoun(t *testing.T) {
	engine := newTestEngine(t)

	cases := map[string]string{
		"Ma ghar jaane chhu": "म घर जाने छु",
		"ma":                 "म",
		"timi ra ma":         "तिमी र म",
		"ke ma":              "के म",
		"ho, ma":             "हो, म",
		"ghar. Ma":           "घर। म",
		"tara ma ghar ma":    "तर म घरमा",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, engine.Transliterate(input), input)
	}
}

func TestJoinMaAfterVerbWithSuffix(t *testing.T) {
	engine := newTestEngine(t)

	// The verb ending comes from the suffix table, not the dictionary
	cases := map[string]string{
		"u garchha ma garchhu":             "ऊ गर्छ म गर्छु",
		"u ghar jaanchha ma pani jaanchhu": "ऊ घर जान्छ म पनि जान्छु",
		"garchhan ma":                      "गर्छन् म",
		"garchhan ma ghar ma":              "गर्छन् म घरमा",
	}

	for input, expected := range cases {
		assert.Equal(t, expected, engine.Transliterate(input), input)
	}
}

func TestJoinMaAfterCachedVerb(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, "गर्छन्", engine.Transliterate("garchhan"))
	assert.Equal(t, "गर्छन् म", engine.Transliterate("garchhan ma"))
}

func TestJoinPronounCompounds(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, "मलाई भोक लाग्यो", engine.Transliterate("Ma lai bhok laagyo"))
	assert.Equal(t, "मैले", engine.Transliterate("maile"))
	assert.Equal(t, "तर मलाई", engine.Transliterate("tara ma lai"))

	// Only a known compound, the pronoun takes no other postposition
	assert.Equal(t, "म को", engine.Transliterate("ma ko"))
	assert.Equal(t, "म घर", engine.Transliterate("ma ghar"))
}

func TestJoinNeverAfterConjunctionsAndCopulas(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, "र को", engine.Transliterate("ra ko"))
	assert.Equal(t, "हो लाई", engine.Transliterate("ho lai"))
	assert.Equal(t, "कि ले", engine.Transliterate("ki le"))
}

func TestJoinOnlyAcrossOneSpace(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, "घर  को", engine.Transliterate("ghar  ko"))
	assert.Equal(t, "घर\tको", engine.Transliterate("ghar\tko"))
	assert.Equal(t, "घर, को", engine.Transliterate("ghar, ko"))
}

func TestJoinVerbEndings(t *testing.T) {
	engine := newTestEngine(t)

	// Spaced and joined forms agree
	assert.Equal(t, "गर्छ", engine.Transliterate("gar chha"))
	assert.Equal(t, "गर्छ", engine.Transliterate("garchha"))

	// Never onto a known word or an open vowel
	assert.Equal(t, "घर छ", engine.Transliterate("ghar chha"))
	assert.Equal(t, "जाने छु", engine.Transliterate("jaane chhu"))
	assert.Equal(t, "यहाँ छु", engine.Transliterate("yahaan chhu"))
}

func TestJoinHun(t *testing.T) {
	engine := newTestEngine(t)

	assert.Equal(t, "म हुँ", engine.Transliterate("ma hun"))
	assert.Equal(t, "हुँ", engine.Transliterate("hun"))
	assert.Equal(t, "उनी हुन्", engine.Transliterate("uni hun"))
	assert.Equal(t, "म नेपाली हुँ", engine.Transliterate("ma nepali hun"))
	assert.Equal(t, "म यहाँ छु। उनी नेपाली हुन्", engine.Transliterate("ma yahaan chhu. uni nepali hun"))

	// Where the pronoun could stand, hun is "am"
	assert.Equal(t, "र हुँ", engine.Transliterate("ra hun"))
	assert.Equal(t, "के हुँ", engine.Transliterate("ke hun"))
	assert.Equal(t, "हो, हुँ", engine.Transliterate("ho, hun"))
}

func TestJoinCompoundFromDictionary(t *testing.T) {
	dict, err := NewDictionary([]Entry{
		{Roman: "kathmandu", Devanagari: "काठमाडौं"},
		{Roman: "nayaabaato", Devanagari: "नयाँबाटो"},
	})
	if !assert.NoError(t, err) {
		return
	}
	engine := newTestEngine(t, WithDictionary(dict))

	assert.Equal(t, "नयाँबाटो", engine.Transliterate("nayaa baato"))
	assert.Equal(t, "नयाँबाटो  मा", engine.Transliterate("Nayaa Baato  ma"))
}

func TestResolveJoinsUnits(t *testing.T) {
	engine := newTestEngine(t)

	units := engine.resolveJoins(Tokenize("Ram ghar ma."))
	if assert.Len(t, units, 4) {
		assert.Equal(t, []string{"Ram"}, units[0].words)
		assert.Equal(t, TokenSpace, units[1].kind)
		assert.Equal(t, []string{"ghar", "ma"}, units[2].words)
		assert.Equal(t, "घरमा", units[2].text)
		assert.Equal(t, TokenSeparator, units[3].kind)
		assert.Equal(t, DANDA, units[3].text)
	}
}
