package resolver

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/seitarof/jswift-types/internal/javatype"
)

type cachedResolver struct {
	next  javatype.ClassNameResolver
	cache *lru.Cache
}

// NewCached memoizes successful resolutions of next in an LRU of the given
// size. Failures are not cached. The result is safe for concurrent use when
// next is.
func NewCached(next javatype.ClassNameResolver, size int) (javatype.ClassNameResolver, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("class name cache: %w", err)
	}
	return &cachedResolver{next: next, cache: cache}, nil
}

func (r *cachedResolver) ResolveClassName(className string) (string, error) {
	if v, ok := r.cache.Get(className); ok {
		return v.(string), nil
	}
	name, err := r.next.ResolveClassName(className)
	if err != nil {
		return "", err
	}
	r.cache.Add(className, name)
	return name, nil
}
