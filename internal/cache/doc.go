// Package cache provides a small generic LRU cache.
//
// It holds decoded background frames so that a host flipping between a
// handful of backgrounds does not decode the same asset twice:
//
//	frames := cache.New[string, *Frame](4)
//	frames.Add("beach.webp", f)
//	f, ok := frames.Get("beach.webp")
//
// # Thread Safety
//
// LRU is safe for concurrent use. It must not be copied after creation
// (it contains a mutex).
package cache
