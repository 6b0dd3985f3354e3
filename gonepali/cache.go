package gonepali

import (
	"sync"
	"sync/atomic"
)

// cachedWord is a context free rendering and the class it resolved to
type cachedWord struct {
	text  string
	class WordClass
}

// wordCache holds context free renderings keyed by the exact word text
type wordCache struct {
	words sync.Map
	size  atomic.Int64
}

func newWordCache() *wordCache {
	return &wordCache{}
}

func (c *wordCache) get(word string) (cachedWord, bool) {
	value, ok := c.words.Load(word)
	if !ok {
		return cachedWord{}, false
	}
	return value.(cachedWord), true
}

func (c *wordCache) put(word string, rendered cachedWord) {
	if _, loaded := c.words.LoadOrStore(word, rendered); !loaded {
		c.size.Add(1)
	}
}

func (c *wordCache) len() int {
	return int(c.size.Load())
}
