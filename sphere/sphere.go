// Package sphere enumerates the lattice points of a carve sphere.
//
// The carved volume is an ellipsoid with a flattened underside: the
// membership test normalizes each axis distance by the radius, keeps
// columns whose horizontal distance is inside the unit circle, and
// within a column keeps cells inside the unit sphere whose normalized
// vertical distance stays above -0.7. The flattening leaves the floor
// of a carved tunnel walkable.
package sphere

import (
	"github.com/voxelforge/carvecache"
	"github.com/voxelforge/carvecache/coord"
)

// floorCutoff is the normalized vertical distance below which cells
// are kept solid.
const floorCutoff = -0.7

// Sphere is a carve sphere: an integer center and radius.
type Sphere struct {
	X, Y, Z int
	Radius  int
}

// Bounds is the enumeration box of a sphere, clamped to the chunk
// domain. MaxX and MaxZ are exclusive; the vertical range is
// (MinY, MaxY].
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
	MinZ, MaxZ int
}

// Extents returns the per-axis sizes of the box, the upper bound on
// points a cycle over it can produce.
func (b Bounds) Extents() (x, y, z int) {
	return b.MaxX - b.MinX, b.MaxY - b.MinY, b.MaxZ - b.MinZ
}

// Bounds returns the sphere's enumeration box: center ± (radius + 1)
// per axis, clamped to x/z in [0,16] and y in [1,248].
func (s Sphere) Bounds() Bounds {
	return Bounds{
		MinX: coord.ClampXZ(s.X - s.Radius - 1),
		MaxX: coord.ClampXZ(s.X + s.Radius + 1),
		MinY: coord.ClampY(s.Y - s.Radius - 1),
		MaxY: coord.ClampY(s.Y + s.Radius + 1),
		MinZ: coord.ClampXZ(s.Z - s.Radius - 1),
		MaxZ: coord.ClampXZ(s.Z + s.Radius + 1),
	}
}

// ForEach invokes fn for every lattice point of the carved volume
// inside b. Columns are visited x-major, z next, and cells within a
// column top-down; the order is deterministic. The vertical distance
// is measured at yi-1 while the emitted cell is yi, which biases the
// volume one cell upward and keeps the carved floor intact.
func (s Sphere) ForEach(b Bounds, fn func(x, y, z int)) {
	r := float64(s.Radius)
	cx := float64(s.X)
	cy := float64(s.Y)
	cz := float64(s.Z)

	for xi := b.MinX; xi < b.MaxX; xi++ {
		dx := (float64(xi) + 0.5 - cx) / r
		dx2 := dx * dx
		for zi := b.MinZ; zi < b.MaxZ; zi++ {
			dz := (float64(zi) + 0.5 - cz) / r
			dz2 := dz * dz
			if dx2+dz2 >= 1.0 {
				continue
			}
			for yi := b.MaxY; yi > b.MinY; yi-- {
				dy := (float64(yi-1) + 0.5 - cy) / r
				dy2 := dy * dy
				if dy > floorCutoff && dx2+dy2+dz2 < 1.0 {
					fn(xi, yi, zi)
				}
			}
		}
	}
}

// Fill runs one population cycle: it resets c, grows it to the box
// extents, and adds every point of the carved volume. After Fill the
// cache can be replayed any number of times.
func (s Sphere) Fill(c *carvecache.Cache, b Bounds) {
	c.Reset()
	c.Grow(b.Extents())
	s.ForEach(b, c.Add)
}
