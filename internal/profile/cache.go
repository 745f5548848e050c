package profile

import "sync"

// Cache memoizes assembled profiles by canonical person key. Profiles
// are assembled at most once per key per session and never evicted;
// the cache exists to avoid recomputation, not for correctness.
// Thread-safe for concurrent WASM callbacks.
type Cache struct {
	mu        sync.Mutex
	assembler *Assembler
	profiles  map[string]*PersonProfile
}

// NewCache creates an empty cache over the given assembler.
func NewCache(a *Assembler) *Cache {
	return &Cache{
		assembler: a,
		profiles:  make(map[string]*PersonProfile),
	}
}

// GetOrAssemble returns the cached profile for the key, assembling and
// storing it on first request. Repeat calls return the identical
// pointer; callers must treat the profile as read-only.
func (c *Cache) GetOrAssemble(k Key) (*PersonProfile, error) {
	if k.empty() {
		return nil, ErrNoKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ck := k.CacheKey()
	if p, ok := c.profiles[ck]; ok {
		return p, nil
	}

	p, err := c.assembler.Assemble(k)
	if err != nil {
		return nil, err
	}
	c.profiles[ck] = p
	return p, nil
}

// Len reports how many profiles have been assembled this session.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.profiles)
}
