package gonepali

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransliterateBatch(t *testing.T) {
	engine := newTestEngine(t, WithWorkers(4))

	texts := []string{
		"Ram ghar ma",
		"Ma ghar jaane chhu",
		"",
		"123",
		"namaste",
		"gar chha",
		"timi ra ma",
	}

	results, err := engine.TransliterateBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, len(texts))

	for i, text := range texts {
		assert.Equal(t, engine.Transliterate(text), results[i], text)
	}
	assert.Equal(t, "राम घरमा", results[0])
	assert.Equal(t, "म घर जाने छु", results[1])
}

func TestTransliterateBatchEmpty(t *testing.T) {
	engine := newTestEngine(t)

	results, err := engine.TransliterateBatch(context.Background(), nil)
	assert.NoError(t, err)
	assert.Empty(t, results)
}

func TestTransliterateBatchCancelled(t *testing.T) {
	engine := newTestEngine(t, WithWorkers(2))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	texts := make([]string, 100)
	for i := range texts {
		texts[i] = "ghar"
	}

	results, err := engine.TransliterateBatch(ctx, texts)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, results, len(texts))
}
