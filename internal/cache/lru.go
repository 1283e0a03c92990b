// Package cache provides caching utilities for the MCP server.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/usestring/typebridge-mcp/internal/validate"
)

// ValidatorCache provides thread-safe LRU caching of compiled validators
// keyed by their annotation text. Compilation dominates repeated validation
// of the same annotation, so the editor's hot loop hits the cache.
type ValidatorCache struct {
	cache *lru.Cache[string, *validate.Validator]
}

// NewValidatorCache creates an LRU cache holding at most maxItems validators.
func NewValidatorCache(maxItems int) (*ValidatorCache, error) {
	c, err := lru.New[string, *validate.Validator](maxItems)
	if err != nil {
		return nil, err
	}
	return &ValidatorCache{cache: c}, nil
}

// Get returns the compiled validator for an annotation, if cached.
func (c *ValidatorCache) Get(typeStr string) (*validate.Validator, bool) {
	return c.cache.Get(typeStr)
}

// Put stores a compiled validator under its annotation text.
func (c *ValidatorCache) Put(typeStr string, v *validate.Validator) {
	c.cache.Add(typeStr, v)
}

// Len returns the current number of cached validators.
func (c *ValidatorCache) Len() int {
	return c.cache.Len()
}
