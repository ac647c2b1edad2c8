//go:build atomic_cachelinesize_64

package opt

// CacheLineSize_ is forced to 64 bytes by the atomic_cachelinesize_64 build tag.
const CacheLineSize_ = 64
