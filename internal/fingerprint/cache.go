package fingerprint

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes tokens by key. Entries never expire.
//
// Concurrent callers for the same uncached key share one computation.
// Different keys never wait on each other. A failed computation is not
// stored, so the next caller retries it.
type Cache struct {
	entries sync.Map // string -> Token
	group   singleflight.Group
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// GetOrCompute returns the token stored for key, calling compute to fill it
// on a miss.
func (c *Cache) GetOrCompute(key string, compute func() (Token, error)) (Token, error) {
	if v, ok := c.entries.Load(key); ok {
		return v.(Token), nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		if v, ok := c.entries.Load(key); ok {
			return v, nil
		}
		tok, err := compute()
		if err != nil {
			return nil, err
		}
		actual, _ := c.entries.LoadOrStore(key, tok)
		return actual, nil
	})
	if err != nil {
		return "", err
	}
	return v.(Token), nil
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
