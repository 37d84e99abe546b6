// Package carvecache provides a zero-allocation replay cache for
// voxel sphere enumerations.
//
// Carving a tunnel sphere into terrain takes several independent
// passes (liquid check, carve, decorate), and each pass needs the
// same set of lattice points. Recomputing the ellipsoid predicate per
// pass is wasted work; caching the points naively allocates per
// sphere. Cache does neither: it enumerates once into a flat buffer
// of bit-packed coordinates and replays it per pass, and once it has
// been grown to the largest working set of a session, every further
// cycle is allocation-free.
//
// # Quick Start
//
//	c := carvecache.New()
//
//	// One cycle per sphere: reset, grow to the bounding box,
//	// populate, then replay as often as needed.
//	c.Reset()
//	c.Grow(b.MaxX-b.MinX, b.MaxY-b.MinY, b.MaxZ-b.MinZ)
//	s.ForEach(b, c.Add)
//
//	c.ForEach(func(x, y, z int) { ch.Write(x, y, z, chunk.TagLiquidCheck) })
//	c.ForEach(func(x, y, z int) { ch.Write(x, y, z, chunk.TagCarve) })
//	c.ForEach(func(x, y, z int) { ch.Write(x, y, z, chunk.TagDecorate) })
//
// # Contract
//
// The cache is single-writer and lock-free. Grow must be called with
// an upper bound on the points the cycle will add; an Add past that
// bound panics with ErrCapacityExceeded rather than growing silently,
// since silent growth would defeat the zero-allocation guarantee.
package carvecache
