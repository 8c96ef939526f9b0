package analyze

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a bounded, concurrency-safe string cache with normalized keys
// (lowercased, trimmed). Entries live for the process lifetime or until
// evicted by the LRU policy; there is no TTL. An empty value is a valid
// cached outcome ("looked up, nothing found").
type Cache struct {
	l *lru.Cache[string, string]
}

const defaultCacheSize = 512

func NewCache(size int) *Cache {
	if size < 1 {
		size = defaultCacheSize
	}
	l, _ := lru.New[string, string](size)
	return &Cache{l: l}
}

func (c *Cache) Get(key string) (string, bool) {
	return c.l.Get(cacheKey(key))
}

func (c *Cache) Put(key, value string) {
	c.l.Add(cacheKey(key), value)
}

func (c *Cache) Len() int { return c.l.Len() }

func cacheKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Caches groups the two stores shared across requests, owned by the process
// and injected into the resolver.
type Caches struct {
	Logos  *Cache
	Counts *Cache
}

func NewCaches(logoSize, countSize int) *Caches {
	return &Caches{
		Logos:  NewCache(logoSize),
		Counts: NewCache(countSize),
	}
}
