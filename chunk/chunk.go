// Package chunk provides the simulated terrain chunk that carve
// passes write into.
//
// A Chunk is a single contiguous block of cells indexed by the packed
// coordinate scheme of package coord. It does NOT copy on read and is
// not safe for concurrent writers; the benchmark harness gives every
// session its own chunk.
package chunk

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/voxelforge/carvecache/coord"
)

// Cells is the number of cells in a chunk (16 x 16 columns, 256 high).
const Cells = coord.Width * coord.Height * coord.Depth

// Tags added by the three carve passes. Each pass adds its own tag to
// every cell of the carved volume, so a cell's final value records
// exactly which passes visited it and how often.
const (
	TagLiquidCheck int32 = 1
	TagCarve       int32 = 2
	TagDecorate    int32 = 3
)

// Chunk is a flat, mutable voxel volume.
type Chunk struct {
	cells []int32
}

// New creates an empty chunk.
func New() *Chunk {
	return &Chunk{cells: make([]int32, Cells)}
}

// Write adds tag to the cell at (x, y, z). Coordinates must be inside
// the coord packing domain.
func (c *Chunk) Write(x, y, z int, tag int32) {
	c.cells[coord.Index(x, y, z)] += tag
}

// At returns the accumulated tag value of the cell at (x, y, z).
func (c *Chunk) At(x, y, z int) int32 {
	return c.cells[coord.Index(x, y, z)]
}

// Reset zeroes every cell. Capacity is retained.
func (c *Chunk) Reset() {
	clear(c.cells)
}

// Snapshot returns a copy of the cell contents.
func (c *Chunk) Snapshot() []int32 {
	out := make([]int32, len(c.cells))
	copy(out, c.cells)
	return out
}

// Touched returns the set of cell indices with a nonzero tag sum. The
// bitmap is built on demand so that Write stays allocation-free.
func (c *Chunk) Touched() *roaring.Bitmap {
	bm := roaring.New()
	for i, v := range c.cells {
		if v != 0 {
			bm.Add(uint32(i))
		}
	}
	return bm
}
