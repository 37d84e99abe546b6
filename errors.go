package carvecache

import "errors"

var (
	// ErrCapacityExceeded is the panic value of an Add past the bound
	// established by the preceding Grow. The violation means the caller
	// sized the cycle wrong; recovering by growing here would silently
	// give up the zero-allocation guarantee, so the cache fails fast
	// instead.
	ErrCapacityExceeded = errors.New("carvecache: add past grow bound")

	// ErrNegativeExtent is the panic value of a Grow call with a
	// negative per-axis extent.
	ErrNegativeExtent = errors.New("carvecache: negative grow extent")
)
